package main

import (
	"fmt"

	"github.com/chriso345/argyle"
)

const helptext = `
Usage: demo [FLAGS] [OPTIONS] [ARGUMENTS]

Demonstrates the argyle option parser.

Flags:
  -b, --bool                A boolean flag.
      --help                Print this help text and exit.
      --version             Print the version number and exit.

Options:
  -f, --float <arg>         A float option.
  -i, --int <arg>           An integer option.
  -s, --string <arg>        A string option.
      --intlist <args>      A greedy integer list option.

Commands:
  cmd                       A demo command. Try 'demo help cmd'.`

const cmdHelptext = `
Usage: demo cmd [FLAGS] [ARGUMENTS]

Demonstrates a registered sub-command.

Flags:
  -c, --cmdbool             A boolean flag scoped to the command.`

func main() {
	parser := argyle.New(helptext, "0.1.0")

	// Mono options. The second alias of each is a shortcut usable in
	// condensed clusters, e.g. '-bs foo'.
	parser.AddFlag("bool b")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 123)
	parser.AddFloat("float f", 1.0)

	// A greedy list: '--intlist 1 2 3' swallows all three values.
	parser.AddIntList("intlist", true)

	// The command parser can reuse the parent parser's option names
	// without interference.
	cmdParser := parser.AddCmd("cmd", cmdCallback, cmdHelptext)
	cmdParser.AddFlag("cmdbool c")
	cmdParser.AddStr("string s", "command-default")

	parser.Parse()
	fmt.Println(parser)
}

// Called if the 'cmd' command is identified, after the command's own
// arguments have been parsed.
func cmdCallback(parser *argyle.Parser) {
	fmt.Println("---------- cmd callback ----------")
	fmt.Println(parser)
}
