package lexicon_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/doublets/lexicon"
)

// ExampleLoad shows that only the first token of each line is kept.
func ExampleLoad() {
	dict := "Cat feline\n\ncot bed\nDOG\n"
	lex, err := lexicon.Load(strings.NewReader(dict))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(lex.Len(), lex.Words())
	fmt.Println(lex.Contains("cat"), lex.Contains("feline"))
	// Output:
	// 3 [cat cot dog]
	// true false
}
