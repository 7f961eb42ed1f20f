package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Expand appends template to dst and returns the result; during the append,
// it replaces $n, ${n}, $name and ${name} with the corresponding submatch of
// src described by match. A reference to an out of range or unmatched group,
// or to a name the Regexp does not have, expands to nothing. $$ inserts a
// literal $; a $ that does not start a reference is copied as is.
func (r *Regexp) Expand(dst []byte, template, src string, match []int) []byte {
	for len(template) > 0 {
		before, after, ok := strings.Cut(template, "$")
		if !ok {
			break
		}
		dst = append(dst, before...)
		template = after

		if template != "" && template[0] == '$' {
			dst = append(dst, '$')
			template = template[1:]
			continue
		}

		name, num, rest, ok := extract(template)
		if !ok {
			dst = append(dst, '$')
			continue
		}
		template = rest

		if num < 0 {
			num = r.SubexpIndex(name)
		}
		if num >= 0 && 2*num+1 < len(match) && match[2*num] >= 0 {
			dst = append(dst, src[match[2*num]:match[2*num+1]]...)
		}
	}

	return append(dst, template...)
}

// extract parses a name or number, optionally in braces, from the start of
// str. num is -1 when the reference is not a valid group number.
func extract(str string) (name string, num int, rest string, ok bool) {
	if str == "" {
		return
	}

	brace := false
	if str[0] == '{' {
		brace = true
		str = str[1:]
	}

	i := 0
	for i < len(str) {
		r, size := utf8.DecodeRuneInString(str[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		i += size
	}
	if i == 0 {
		return
	}

	name = str[:i]
	if brace {
		if i >= len(str) || str[i] != '}' {
			return
		}
		i++
	}

	num = 0
	for j := 0; j < len(name); j++ {
		if name[j] < '0' || name[j] > '9' || num >= 1e8 {
			num = -1
			break
		}
		num = num*10 + int(name[j]) - '0'
	}
	if name[0] == '0' && len(name) > 1 {
		num = -1
	}

	return name, num, str[i:], true
}
