//go:build (linux || darwin || windows) && (amd64 || arm64)

// Package json encodes values with sonic where it is supported and with
// encoding/json everywhere else.
package json

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into v using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
