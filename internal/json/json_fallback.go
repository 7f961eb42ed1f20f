//go:build !((linux || darwin || windows) && (amd64 || arm64))

// Package json encodes values with sonic where it is supported and with
// encoding/json everywhere else.
package json

import stdjson "encoding/json"

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return stdjson.Marshal(v)
}

// Unmarshal decodes a JSON payload into v.
func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}
