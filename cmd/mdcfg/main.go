package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/shcv/mdcfg/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes one subcommand and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("mdcfg", "Flatten and query indentation-structured configuration documents.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)

	format := app.Flag("format", "Output format: text, json or yaml.").Short('f').Envar("MDCFG_FORMAT").Default("text").Enum("text", "json", "yaml")
	indent := app.Flag("indent", `Indent unit to use instead of detecting it ("\t" for a tab).`).Envar("MDCFG_INDENT").String()
	verbose := app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()

	flattenCmd := app.Command("flatten", "Print the ancestor path of every line.")
	flattenFile := flattenCmd.Arg("file", "Document to read (- for stdin).").Required().String()

	tableCmd := app.Command("table", "Print the ancestor paths of value lines only.")
	tableFile := tableCmd.Arg("file", "Document to read (- for stdin).").Required().String()

	dictCmd := app.Command("dict", "Print the flat dotted-key mapping. Later files override earlier ones.")
	dictFiles := dictCmd.Arg("files", "Documents to read (- for stdin).").Required().Strings()

	var defaultSet bool
	getCmd := app.Command("get", "Look up a value or a section by dotted key.")
	getFile := getCmd.Arg("file", "Document to read (- for stdin).").Required().String()
	getKey := getCmd.Arg("key", "Dotted key; empty selects everything.").Default("").String()
	getDefault := getCmd.Flag("default", "Value to print when the key is not found.").IsSetByUser(&defaultSet).String()

	nestCmd := app.Command("nest", "Print the mapping expanded into nested objects.")
	nestFile := nestCmd.Arg("file", "Document to read (- for stdin).").Required().String()

	fmtCmd := app.Command("fmt", "Rewrite a document from its flat mapping.")
	fmtFile := fmtCmd.Arg("file", "Document to read (- for stdin).").Required().String()
	fmtUnit := fmtCmd.Flag("unit", "Indent unit for the output; defaults to the document's own.").String()

	cmd, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "mdcfg: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, *verbose)
	defer func() {
		_ = logger.Sync()
	}()

	c := &cli{
		format: *format,
		indent: unescapeIndent(*indent),
		out:    stdout,
		logger: logger,
	}

	switch cmd {
	case flattenCmd.FullCommand():
		err = c.flatten(*flattenFile)
	case tableCmd.FullCommand():
		err = c.table(*tableFile)
	case dictCmd.FullCommand():
		err = c.dict(*dictFiles)
	case getCmd.FullCommand():
		var def *string
		if defaultSet {
			def = getDefault
		}
		err = c.get(*getFile, *getKey, def)
	case nestCmd.FullCommand():
		err = c.nest(*nestFile)
	case fmtCmd.FullCommand():
		err = c.reformat(*fmtFile, unescapeIndent(*fmtUnit))
	default:
		// --help and friends
		return 0
	}

	if err != nil {
		fmt.Fprintf(stderr, "mdcfg: %v\n", err)
		return 1
	}
	return 0
}

// unescapeIndent lets a tab be passed as the two characters \t.
func unescapeIndent(s string) string {
	return strings.ReplaceAll(s, `\t`, "\t")
}
