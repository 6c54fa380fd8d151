package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-mdanchor/internal/fileutil"
	"github.com/alnah/go-mdanchor/internal/pipeline"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently using the converter pool.
// Results keep the order of files.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			if conv == nil {
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ErrConverterInit,
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
				results[idx] = convertFile(ctx, conv, files[idx], params, env)
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

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := readInput(f.InputPath, env.Stdin)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	renderCtx, cancel := context.WithTimeout(ctx, params.timeout)
	defer cancel()

	var html string
	if params.document {
		html, err = conv.Document(renderCtx, string(content), params.docOpts)
	} else {
		html, err = conv.Render(renderCtx, string(content))
	}
	if err != nil {
		return fail(err)
	}

	if f.OutputPath == stdioPath {
		if _, err := io.WriteString(env.Stdout, html); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
		result.Bytes = len(html)
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	html, err = pipeline.RebaseRelativePaths(html, sourceDir(f.InputPath), outDir)
	if err != nil {
		return fail(fmt.Errorf("rewriting relative paths: %w", err))
	}

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrCreateOutputDir, err))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(html), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}

	result.Bytes = len(html)
	result.Duration = time.Since(start)
	slog.Debug("wrote", "input", f.InputPath, "output", f.OutputPath, "bytes", result.Bytes)
	return result
}

// readInput reads a markdown file, or stdin for stdioPath.
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdioPath {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path) // #nosec G304 -- discovered path
}

// sourceDir is the directory relative links in path resolve against.
// Links in stdin input resolve against the working directory.
func sourceDir(path string) string {
	if path == stdioPath {
		return "."
	}
	return filepath.Dir(path)
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
			summary.Bytes += r.Bytes
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Results written to stdout are not announced. Returns the failure count.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err, env.Config))
			continue
		}

		if quiet || r.OutputPath == stdioPath {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n",
				r.InputPath, r.OutputPath, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%s succeeded, %s failed (%s written)\n",
			humanize.Comma(int64(summary.Succeeded)), humanize.Comma(int64(summary.Failed)),
			humanize.Bytes(uint64(summary.Bytes)))
	}

	return summary.Failed
}
