package netregex

import (
	"strconv"
	"sync"

	"go.dw1.io/fastcache"
)

// CacheSize is the number of compiled patterns kept for the package-level
// functions. It is read once, on first use.
var CacheSize = 256

var (
	cacheOnce sync.Once
	cache     *fastcache.Cache[string, *Regex]
)

func getCache() *fastcache.Cache[string, *Regex] {
	cacheOnce.Do(func() {
		cache = fastcache.New[string, *Regex](CacheSize)
	})

	return cache
}

// cached compiles pattern with opts, reusing an earlier result
// for the same pattern.
func cached(pattern string, opts Options) (*Regex, error) {
	key := strconv.Itoa(int(opts)) + "|" + pattern

	c := getCache()
	if re, ok := c.Get(key); ok {
		return re, nil
	}

	re, err := Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	c.Set(key, re)

	return re, nil
}

// IsMatch reports whether input contains a match of pattern.
func IsMatch(pattern, input string) (bool, error) {
	re, err := cached(pattern, None)
	if err != nil {
		return false, err
	}

	return re.IsMatch(input), nil
}

// MatchString returns the first match of pattern in input, or nil.
func MatchString(pattern, input string) (*Match, error) {
	re, err := cached(pattern, None)
	if err != nil {
		return nil, err
	}

	return re.Match(input), nil
}

// Replace replaces every match of pattern in input with replacement.
func Replace(pattern, input, replacement string) (string, error) {
	return ReplaceN(pattern, input, replacement, -1, 0)
}

// ReplaceN compiles pattern with default options and calls
// [Regex.ReplaceN].
func ReplaceN(pattern, input, replacement string, limit, offset int) (string, error) {
	re, err := cached(pattern, None)
	if err != nil {
		return input, err
	}

	return re.ReplaceN(input, replacement, limit, offset), nil
}

// Split splits input around every match of pattern.
func Split(pattern, input string) ([]string, error) {
	return SplitN(pattern, input, -1, 0)
}

// SplitN compiles pattern with default options and calls [Regex.SplitN].
func SplitN(pattern, input string, limit, offset int) ([]string, error) {
	re, err := cached(pattern, None)
	if err != nil {
		return nil, err
	}

	return re.SplitN(input, limit, offset), nil
}
