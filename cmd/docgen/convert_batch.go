package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	docgen "github.com/alnah/go-docgen"
)

// ErrReadMarkdown wraps failures reading a source file.
var ErrReadMarkdown = errors.New("failed to read markdown file")

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Engine     docgen.Engine
	Pages      int
	Fallback   error // chrome failure that made the auto engine use native
	Err        error
	Duration   time.Duration
}

// convertBatch spreads files over at most pool.Size() workers, each holding
// one converter for its whole run. results[i] always describes files[i].
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *documentParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("creating converter: %w", err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile reads one source, converts it and writes the PDF. The first
// failing step ends the attempt; Duration covers whatever ran.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *documentParams) (result ConversionResult) {
	start := time.Now()
	result = ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	out, err := conv.Convert(ctx, docgen.Input{
		Markdown: string(content),
		Title:    params.title,
		Author:   params.author,
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.Engine, result.Pages, result.Fallback = out.Engine, out.Pages, out.Fallback

	result.Err = docgen.WriteFile(f.OutputPath, out.PDF)
	return result
}

// ResultSummary tallies a batch. FellBack counts successes the auto engine
// produced natively after chrome failed.
type ResultSummary struct {
	Succeeded int
	Failed    int
	FellBack  int
}

func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Fallback != nil:
			summary.Succeeded++
			summary.FellBack++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per result and returns the failure count
// together with the first failure.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) (int, error) {
	summary := countResults(results)
	var firstErr error

	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, r.OutputPath, describeEngine(r), r.Duration.Round(time.Millisecond))
			if r.Fallback != nil {
				fmt.Fprintf(env.Stdout, "  chrome unavailable: %v\n", r.Fallback)
			}
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.FellBack > 0 {
			fmt.Fprintf(env.Stdout, ", %d via native fallback", summary.FellBack)
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary.Failed, firstErr
}

// describeEngine names the engine, with the page count when known.
func describeEngine(r ConversionResult) string {
	if r.Pages > 0 {
		return fmt.Sprintf("%s, %d page(s)", r.Engine, r.Pages)
	}
	return string(r.Engine)
}
