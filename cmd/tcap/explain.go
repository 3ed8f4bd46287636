package main

import (
	"fmt"
	"io"

	"github.com/hnimtadd/tcap"
	"github.com/hnimtadd/tcap/terminfo/parser"
)

// explain renders a string capability and prints each token of the output
// on its own line.
func explain(stdout, stderr io.Writer, term *tcap.Terminal, capname string, args []any) int {
	out, err := term.Sprint(capname, args...)
	if err != nil {
		return fail(stderr, term, err)
	}
	for _, tok := range parser.Split(out) {
		fmt.Fprintln(stdout, tok)
	}
	return exitOK
}
