package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdanchor/internal/fileutil"
)

// stdioPath selects stdin as input or stdout as output.
const stdioPath = "-"

// htmlExt is the extension of generated files.
const htmlExt = ".html"

// maxWorkers bounds --workers.
const maxWorkers = 32

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have a markdown extension (.md, .markdown, .mdown, .mkd)")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
// Either path may be stdioPath.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs into the files to convert. Directories are
// walked recursively for markdown files; their layout is mirrored under
// output when output is a directory.
func discoverFiles(inputs []string, output string) ([]FileToConvert, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	if len(inputs) > 1 && isSingleFileOutput(output) {
		return nil, fmt.Errorf("%w: output %q needs exactly one input", ErrUsage, output)
	}

	var files []FileToConvert
	for _, in := range inputs {
		found, err := discoverInput(in, output)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, strings.Join(inputs, ", "))
	}
	if len(files) > 1 && isSingleFileOutput(output) {
		return nil, fmt.Errorf("%w: output %q needs exactly one input file, found %d", ErrUsage, output, len(files))
	}
	return files, nil
}

// discoverInput handles one positional argument.
func discoverInput(inputPath, output string) ([]FileToConvert, error) {
	if inputPath == stdioPath {
		out := output
		if out == "" {
			out = stdioPath
		} else if !isSingleFileOutput(out) {
			out = filepath.Join(out, "stdin"+htmlExt)
		}
		return []FileToConvert{{InputPath: stdioPath, OutputPath: out}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveOutputPath(inputPath, output, "")
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath, err := resolveOutputPath(path, output, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, output, baseInputDir string) (string, error) {
	if isSingleFileOutput(output) {
		return output, nil
	}

	htmlName, err := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExt)
	if err != nil {
		return "", err
	}

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), htmlName), nil
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), htmlName), nil
		}
	}

	return filepath.Join(output, htmlName), nil
}

// isSingleFileOutput reports whether output names one destination rather
// than a directory.
func isSingleFileOutput(output string) bool {
	return output == stdioPath || strings.EqualFold(filepath.Ext(output), htmlExt)
}

// validateMarkdownExtension checks that the file has a markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}
