package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/hnimtadd/tcap"
	"github.com/hnimtadd/tcap/terminfo/ansi"
	"github.com/hnimtadd/tcap/terminfo/caps"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type row struct {
	short string
	long  string
	value string
}

func rows(term *tcap.Terminal) []row {
	desc := term.Description()
	var out []row
	for _, n := range caps.Booleans {
		if desc.Bools[n.Long] {
			out = append(out, row{short: n.Short, long: n.Long, value: "true"})
		}
	}
	for _, n := range caps.Numbers {
		if v, ok := desc.Numbers[n.Long]; ok {
			out = append(out, row{short: n.Short, long: n.Long, value: strconv.Itoa(v)})
		}
	}
	for _, n := range caps.Strings {
		if v, ok := desc.Strings[n.Long]; ok {
			out = append(out, row{short: n.Short, long: n.Long, value: ansi.Quote(v)})
		}
	}
	for _, name := range desc.Extended {
		r := row{short: name, long: "(extended)"}
		if desc.Bools[name] {
			r.value = "true"
		} else if v, ok := desc.Numbers[name]; ok {
			r.value = strconv.Itoa(v)
		} else if v, ok := desc.Strings[name]; ok {
			r.value = ansi.Quote(v)
		} else {
			continue
		}
		out = append(out, r)
	}
	return out
}

// list prints one capability per line in table order, extended ones last.
// On a terminal the capnames are set in bold using the terminal's own
// sequences.
func list(w io.Writer, term *tcap.Terminal, highlight bool) {
	var bold, reset string
	if highlight {
		bold, _ = term.Sprint("bold")
		reset, _ = term.Sprint("sgr0")
	}

	fmt.Fprintln(w, strings.Join(term.Names(), "|"))
	all := rows(term)
	shortWidth, longWidth := 0, 0
	for _, r := range all {
		shortWidth = max(shortWidth, ansi.Width(r.short))
		longWidth = max(longWidth, ansi.Width(r.long))
	}
	for _, r := range all {
		fmt.Fprintf(w, "  %s%s%s  %s  %s\n",
			bold, ansi.PadRight(r.short, shortWidth), reset,
			ansi.PadRight(r.long, longWidth),
			r.value,
		)
	}
}
