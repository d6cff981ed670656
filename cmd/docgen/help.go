package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to PDF")
	fmt.Fprintln(w, "  verify     Check the structure of PDF files")
	fmt.Fprintln(w, "  doctor     Check which engines can run here")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docgen help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "  -e, --engine <s>          auto, chrome, native (default: auto)")
	fmt.Fprintln(w, "                            auto uses chrome and falls back to native")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "      --bg <hex>            Page background colour (default: #3B3B3B)")
	fmt.Fprintln(w, "      --fg <hex>            Text colour (default: #E8E8E8)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title (\"\" = front matter title)")
	fmt.Fprintln(w, "      --author <s>          Author")
	fmt.Fprintln(w, "      --producer <s>        Producer (default: go-docgen)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling (chrome engine):")
	fmt.Fprintln(w, "      --style <name>        Style name: report, plain")
	fmt.Fprintln(w, "      --style-dir <path>    Directory holding styles/{name}.css")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show engine and timing per file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCGEN_CONFIG, DOCGEN_ENGINE, DOCGEN_TIMEOUT, DOCGEN_STYLE,")
	fmt.Fprintln(w, "  DOCGEN_INPUT_DIR, DOCGEN_OUTPUT_DIR, DOCGEN_AUTHOR, DOCGEN_WORKERS")
	fmt.Fprintln(w, "  Flags override environment, environment fills gaps in the config file.")
}

// printVerifyUsage prints usage for the verify command.
func printVerifyUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen verify <file.pdf>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that each file's cross-reference offsets point at their objects")
	fmt.Fprintln(w, "and that every object reference resolves.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docgen doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report which engines can run and detect container/CI settings.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "verify":
		printVerifyUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: docgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
