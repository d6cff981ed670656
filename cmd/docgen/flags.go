package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// themeFlags holds page colour flags.
type themeFlags struct {
	background string
	text       string
}

// documentFlags holds Info dictionary flags.
type documentFlags struct {
	title    string
	author   string
	producer string
}

// styleFlags holds chrome engine stylesheet flags.
type styleFlags struct {
	name string
	dir  string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	timeout  string
	engine   string
	theme    themeFlags
	document documentFlags
	style    styleFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show engine and timing per file")
}

// addThemeFlags adds page colour flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVar(&f.background, "bg", "", "page background colour (hex)")
	fs.StringVar(&f.text, "fg", "", "text colour (hex)")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = front matter title)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringVar(&f.producer, "producer", "", "PDF producer string")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "chrome engine style name")
	fs.StringVar(&f.dir, "style-dir", "", "directory holding styles/{name}.css")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.engine, "engine", "e", "", "PDF engine: auto, chrome, native")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)
	addDocumentFlags(fs, &f.document)
	addStyleFlags(fs, &f.style)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to usage when parsing fails.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
