// Package display renders the parser's user-facing output: help text,
// version strings and diagnostic messages. All formatting lives here so
// the core stays a pure token classifier.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

// wrapWidth bounds diagnostic lines. Help text is printed as supplied:
// applications pre-format it.
const wrapWidth uint = 100

var errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

// Help writes trimmed help text followed by a newline.
func Help(w io.Writer, text string) {
	fmt.Fprintln(w, strings.TrimSpace(text))
}

// Version writes the version string followed by a newline.
func Version(w io.Writer, text string) {
	fmt.Fprintln(w, strings.TrimSpace(text))
}

// Error writes a diagnostic line for a parse error.
func Error(w io.Writer, err error) {
	msg := wordwrap.WrapString(fmt.Sprintf("%v.", err), wrapWidth)
	fmt.Fprintf(w, "%s %s\n", errorPrefix("Error:"), msg)
}
