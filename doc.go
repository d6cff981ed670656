// Package docgen renders report documents to PDF.
//
// # Quick Start
//
//	conv, err := docgen.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, docgen.Input{
//	    Markdown: "# Weekly Report\n\nAll systems nominal.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := docgen.WriteFile("report.pdf", result.PDF); err != nil {
//	    log.Fatal(err)
//	}
//
// # Engines
//
// Two engines produce the PDF:
//
//   - EngineChrome converts Markdown to HTML with Goldmark, injects the
//     theme stylesheet and prints the page with headless Chrome (go-rod).
//   - EngineNative needs no browser. It flattens the document into text
//     records, wraps and paginates them on US Letter pages with 72pt
//     margins, and writes a PDF 1.4 file using the standard Helvetica fonts.
//
// EngineAuto, the default, tries Chrome first and switches to the native
// engine when the browser cannot be started or fails to print. Caller
// cancellation is never treated as a browser failure. ConvertResult.Engine
// reports which engine produced the bytes and ConvertResult.Fallback holds
// the browser error that caused a switch.
//
// # Input
//
// Input carries either Markdown, optionally starting with a YAML front
// matter block (title, author), or a pre-flattened slice of TextRecord.
// Emphasized records are rendered as centered 16pt bold lines, the others
// as 11pt body text; a record with empty Content is vertical space.
//
// # Options
//
//	conv, err := docgen.NewConverter(
//	    docgen.WithEngine(docgen.EngineNative),
//	    docgen.WithTheme(&docgen.Theme{Background: "#FFFFFF", Text: "#000000"}),
//	    docgen.WithTimeout(time.Minute),
//	)
//
// # Parallel Processing
//
// A Converter is not safe for concurrent use. ConverterPool hands out
// converters, each with its own browser, and creates them on demand:
//
//	pool := docgen.NewConverterPool(docgen.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
package docgen
