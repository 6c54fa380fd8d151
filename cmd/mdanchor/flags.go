package main

import (
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling configuration and output verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	debug   bool
}

// markdownFlags holds dialect flags.
type markdownFlags struct {
	noGFM        bool
	pedantic     bool
	sanitize     bool
	breaks       bool
	xhtml        bool
	headerPrefix string
	highlight    string
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	style      string // name or path
	assetPath  string
	title      string
	lang       string
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	title    string
	minDepth int
	maxDepth int
}

// cliFlags holds every flag of the mdanchor command.
type cliFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    time.Duration
	markdown   markdownFlags
	document   documentFlags
	toc        tocFlags
	version    bool
	help       bool
	listStyles bool
	showConfig bool

	// changed records flags set explicitly on the command line, so boolean
	// flags can override config values in both directions.
	changed map[string]bool
}

// Default flag values.
const (
	defaultTimeout = 30 * time.Second
)

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file sizes and timing")
	fs.BoolVar(&f.debug, "debug", false, "debug logging and resolved config dump")
}

// addMarkdownFlags adds dialect flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.noGFM, "no-gfm", false, "disable GitHub Flavored Markdown")
	fs.BoolVar(&f.pedantic, "pedantic", false, "plain Markdown only (implies --no-gfm)")
	fs.BoolVar(&f.sanitize, "sanitize", false, "omit raw HTML")
	fs.BoolVar(&f.breaks, "breaks", false, "render line breaks as <br>")
	fs.BoolVar(&f.xhtml, "xhtml", false, "self-closing void tags")
	fs.StringVar(&f.headerPrefix, "header-prefix", "", "prefix for every heading id")
	fs.StringVar(&f.highlight, "highlight", "", "highlight code blocks with a chroma style")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "write a complete HTML page")
	fs.StringVar(&f.style, "style", "", "built-in style name or CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/ and templates/")
	fs.StringVar(&f.title, "title", "", "page title (default: first h1)")
	fs.StringVar(&f.lang, "lang", "", "page language (default: en)")
}

// addTOCFlags adds table of contents flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "add a numbered table of contents")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "shallowest heading level listed (1-6)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "deepest heading level listed (1-6)")
}

// newFlagSet builds the FlagSet for f. Errors are returned, never printed.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdanchor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory, - for stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", defaultTimeout, "per-file render timeout")

	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)
	addDocumentFlags(fs, &f.document)
	addTOCFlags(fs, &f.toc)

	fs.BoolVar(&f.listStyles, "list-styles", false, "list built-in and highlight styles")
	fs.BoolVar(&f.showConfig, "print-config", false, "print the resolved config as YAML")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	return fs
}

// parseFlags parses args (including the program name) and returns the flags
// and positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{changed: map[string]bool{}}
	fs := newFlagSet(f)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})
	if f.timeout <= 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive, got %s", ErrUsage, f.timeout)
	}
	return f, fs.Args(), nil
}
