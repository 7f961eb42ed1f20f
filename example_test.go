package netregex_test

import (
	"fmt"

	"go.dw1.io/netregex"
)

func ExampleRegex_Match() {
	re := netregex.MustCompile(`(?<year>\d{4})-(?<month>\d{2})`, netregex.None)

	m := re.Match("released 2024-06, patched 2024-09")
	year, _ := m.Groups().ByName("year")
	fmt.Println(m.Value(), m.Index(), year)
	// Output: 2024-06 9 2024
}

func ExampleRegex_Matches() {
	re := netregex.MustCompile(`a*`, netregex.None)

	for m := range re.Matches("baaab") {
		fmt.Printf("%d:%q\n", m.Index(), m.Value())
	}
	// Output:
	// 0:""
	// 1:"aaa"
	// 4:""
	// 5:""
}

func ExampleRegex_Replace() {
	re := netregex.MustCompile(`(?<first>\w+)\s(?<last>\w+)`, netregex.None)

	fmt.Println(re.Replace("Ada Lovelace", "${last}, $1"))
	fmt.Println(re.Replace("Ada Lovelace", "$$1"))
	// Output:
	// Lovelace, Ada
	// $1
}

func ExampleRegex_SplitN() {
	captures := netregex.MustCompile(`\s*([,;])\s*`, netregex.None)
	plain := netregex.MustCompile(`\s*[,;]\s*`, netregex.None)

	fmt.Printf("%q\n", captures.SplitN("a , b;c", -1, 0))
	fmt.Printf("%q\n", plain.SplitN("a , b;c", 2, 0))
	// Output:
	// ["a" "," "b" ";" "c"]
	// ["a" "b;c"]
}

func ExampleParseOptions() {
	opts, err := netregex.ParseOptions("ignorecase|Singleline")
	if err != nil {
		panic(err)
	}

	fmt.Println(opts, int(opts))
	// Output: IgnoreCase, Singleline 17
}

func ExampleEscape() {
	fmt.Println(netregex.Escape("1.5*[x]"))
	fmt.Println(netregex.Unescape(`1\.5\*\[x]`))
	// Output:
	// 1\.5\*\[x\]
	// 1.5*[x]
}
