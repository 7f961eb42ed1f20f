package netregex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/netregex/engine"
	"go.dw1.io/netregex/internal/json"
	"go.dw1.io/safemath"
	"gopkg.in/yaml.v3"
)

// Options is a .NET RegexOptions bitmask.
//
// Only IgnoreCase, Multiline and Singleline change how a pattern matches.
// ECMAScript marks a pattern as following the emulated dialect and is always
// reported back by [Regex.Options]. Every other bit is accepted and ignored.
type Options int

// RegexOptions values.
const (
	None                    Options = 0
	IgnoreCase              Options = 1
	Multiline               Options = 2
	ExplicitCapture         Options = 4
	Compiled                Options = 8
	Singleline              Options = 16
	IgnorePatternWhitespace Options = 32
	RightToLeft             Options = 64
	ECMAScript              Options = 256
	CultureInvariant        Options = 512
	NonBacktracking         Options = 1024
)

var optionNames = []struct {
	opt  Options
	name string
}{
	{IgnoreCase, "IgnoreCase"},
	{Multiline, "Multiline"},
	{ExplicitCapture, "ExplicitCapture"},
	{Compiled, "Compiled"},
	{Singleline, "Singleline"},
	{IgnorePatternWhitespace, "IgnorePatternWhitespace"},
	{RightToLeft, "RightToLeft"},
	{ECMAScript, "ECMAScript"},
	{CultureInvariant, "CultureInvariant"},
	{NonBacktracking, "NonBacktracking"},
}

// HostFlags translates opts into engine flags. Bits without a host
// equivalent are dropped; [engine.Compat] is always set.
func HostFlags(opts Options) engine.Flags {
	flags := engine.Compat
	if opts&IgnoreCase != 0 {
		flags |= engine.IgnoreCase
	}
	if opts&Multiline != 0 {
		flags |= engine.Multiline
	}
	if opts&Singleline != 0 {
		flags |= engine.DotAll
	}

	return flags
}

// ExternalOptions translates engine flags back into options. ECMAScript is
// always set.
func ExternalOptions(flags engine.Flags) Options {
	opts := ECMAScript
	if flags&engine.IgnoreCase != 0 {
		opts |= IgnoreCase
	}
	if flags&engine.Multiline != 0 {
		opts |= Multiline
	}
	if flags&engine.DotAll != 0 {
		opts |= Singleline
	}

	return opts
}

// String formats opts the way .NET prints a RegexOptions value, e.g.
// "IgnoreCase, Multiline". Unnamed bits are appended in hex.
func (o Options) String() string {
	if o == None {
		return "None"
	}

	var parts []string
	rest := o
	for _, n := range optionNames {
		if o&n.opt != 0 {
			parts = append(parts, n.name)
			rest &^= n.opt
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatInt(int64(rest), 16))
	}

	return strings.Join(parts, ", ")
}

// ParseOptions converts v into Options. It accepts Options, any integer
// type, numeric strings and lists of option names separated by "|" or ","
// such as "IgnoreCase | Multiline". Names are matched case-insensitively.
func ParseOptions(v any) (Options, error) {
	switch t := v.(type) {
	case Options:
		return t, nil
	case nil:
		return None, nil
	case string:
		return parseOptionNames(t)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := safemath.ConvertAny[int32](t)
		if err != nil {
			return None, fmt.Errorf("netregex: options %v: %w", v, err)
		}
		return Options(n), nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return None, fmt.Errorf("netregex: options of type %T: %w", v, err)
	}

	return parseOptionNames(s)
}

func parseOptionNames(s string) (Options, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None, nil
	}
	if n, err := cast.ToInt32E(s); err == nil {
		return Options(n), nil
	}

	var opts Options
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		field = strings.TrimSpace(field)
		if field == "" || strings.EqualFold(field, "None") {
			continue
		}

		opt, ok := lookupOption(field)
		if !ok {
			return None, fmt.Errorf("netregex: unknown option %q", field)
		}
		opts |= opt
	}

	return opts, nil
}

func lookupOption(name string) (Options, bool) {
	for _, n := range optionNames {
		if strings.EqualFold(n.name, name) {
			return n.opt, true
		}
	}

	return None, false
}

// MarshalText implements [encoding.TextMarshaler].
func (o Options) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Options) UnmarshalText(text []byte) error {
	opts, err := parseOptionNames(string(text))
	if err != nil {
		return err
	}
	*o = opts

	return nil
}

// UnmarshalJSON decodes options written as a number, a name list, or an
// array of names. Encoding goes through MarshalText.
func (o *Options) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if list, ok := raw.([]any); ok {
		names, err := cast.ToStringSliceE(list)
		if err != nil {
			return fmt.Errorf("netregex: options %s: %w", data, err)
		}
		raw = strings.Join(names, "|")
	}

	opts, err := ParseOptions(raw)
	if err != nil {
		return err
	}
	*o = opts

	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (o Options) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. Options may be written as an
// integer, a name list, or a sequence of names.
func (o *Options) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		opts, err := parseOptionNames(strings.Join(names, "|"))
		if err != nil {
			return err
		}
		*o = opts
		return nil
	}

	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	opts, err := ParseOptions(raw)
	if err != nil {
		return err
	}
	*o = opts

	return nil
}
