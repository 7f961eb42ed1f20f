package netregex

import (
	"strconv"
	"strings"
)

// rewritePlaceholders converts a .NET replacement template into host
// template syntax:
//
//	$N       -> ${N}   group N, leading zeros dropped
//	${N}     -> ${N}
//	${name}  -> ${name}
//	$$       -> $$     literal $
//	$&       -> ${0}   whole match
//
// $N takes the longest run of digits that still names a group of re, so with
// one group "$10" is group 1 followed by "0". A reference to a group re does
// not have is literal text, as is any other $.
func (re *Regex) rewritePlaceholders(template string) string {
	if !strings.Contains(template, "$") {
		return template
	}

	groups := re.host.NumSubexp()

	var b strings.Builder
	b.Grow(len(template) + 8)

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}

		var next byte
		if i+1 < len(template) {
			next = template[i+1]
		}

		switch {
		case next == '$':
			b.WriteString("$$")
			i++
		case isDigit(next):
			num, j := int(next-'0'), i+2
			for j < len(template) && isDigit(template[j]) {
				n := num*10 + int(template[j]-'0')
				if n > groups {
					break
				}
				num, j = n, j+1
			}
			if num > groups {
				b.WriteString("$$")
				continue
			}
			b.WriteString("${" + strconv.Itoa(num) + "}")
			i = j - 1
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end <= 0 {
				b.WriteString("$$")
				continue
			}
			slot, ok := re.groupSlot(template[i+2 : i+2+end])
			if !ok {
				b.WriteString("$$")
				continue
			}
			b.WriteString("${" + slot + "}")
			i += end + 2
		case next == '&':
			b.WriteString("${0}")
			i++
		default:
			b.WriteString("$$")
		}
	}

	return b.String()
}

// groupSlot resolves the body of a ${...} reference to the host reference
// for the same group.
func (re *Regex) groupSlot(ref string) (string, bool) {
	if isDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num > re.host.NumSubexp() {
			return "", false
		}
		return strconv.Itoa(num), true
	}

	if !isGroupName(ref) || re.GroupNumber(ref) < 0 {
		return "", false
	}

	return ref, true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	return s != ""
}

func isGroupName(s string) bool {
	for _, r := range s {
		if r != '_' && !('0' <= r && r <= '9') && !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}

	return s != ""
}
