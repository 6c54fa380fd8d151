package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdanchor "github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/anchor"
	"github.com/alnah/go-mdanchor/internal/config"
	"github.com/alnah/go-mdanchor/internal/fileutil"
	"github.com/alnah/go-mdanchor/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrNoInput          = errors.New("no input specified")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrCreateOutputDir  = errors.New("failed to create output directory")
	ErrConverterInit    = errors.New("failed to initialize converter")
	ErrConversionFailed = errors.New("conversion failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// CLIConverter is the interface for the rendering service.
type CLIConverter interface {
	Render(ctx context.Context, markdown string) (string, error)
	Document(ctx context.Context, markdown string, opts mdanchor.DocumentOptions) (string, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdanchor.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	document bool // use Document instead of Render
	docOpts  mdanchor.DocumentOptions
	timeout  time.Duration
}

// run parses args and runs the command with real converters.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	return runWithFlags(ctx, flags, positional, env)
}

// runWithFlags dispatches informational flags, resolves configuration and
// converts the inputs.
func runWithFlags(ctx context.Context, flags *cliFlags, positional []string, env *Environment) error {
	switch {
	case flags.help:
		printUsage(env.Stdout)
		return nil
	case flags.version:
		fmt.Fprintf(env.Stdout, "mdanchor %s\n", Version)
		return nil
	case flags.listStyles:
		printStyles(env.Stdout)
		return nil
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		return err
	}
	env.Config = cfg

	if flags.showConfig {
		data, err := yamlutil.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}
	if flags.common.debug {
		dump(env.Stderr, cfg)
	}

	opts := converterOptions(cfg)
	if err := mdanchor.New(opts...).Err(); err != nil {
		return err
	}

	workers := flags.workers
	if !flags.changed["workers"] && envCfg.Workers > 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	poolSize := resolvePoolSize(workers)
	slog.Debug("converter pool", "size", poolSize)
	pool := NewConverterPool(poolSize, func() CLIConverter {
		return mdanchor.New(opts...)
	})
	defer pool.Close()

	return runConvert(ctx, positional, flags, envCfg, pool, env)
}

// runConvert orchestrates the conversion process with env.Config.
func runConvert(ctx context.Context, positional []string, flags *cliFlags, envCfg *envConfig, pool Pool, env *Environment) error {
	cfg := env.Config

	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(positional, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	params, err := buildConversionParams(flags, envCfg, cfg, env)
	if err != nil {
		return err
	}
	slog.Info("converting", "files", len(files), "document", params.document, "timeout", params.timeout)

	results := convertBatch(ctx, pool, files, params, env)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrConversionFailed, failedCount)
	}

	return nil
}

// resolveConfig loads the config file, then applies environment variables
// and flags. Priority: flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, envCfg *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	md := flags.markdown
	if md.noGFM {
		gfm := false
		cfg.Markdown.GFM = &gfm
	}
	if md.pedantic {
		cfg.Markdown.Pedantic = true
	}
	if md.sanitize {
		cfg.Markdown.Sanitize = true
	}
	if md.breaks {
		cfg.Markdown.Breaks = true
	}
	if md.xhtml {
		cfg.Markdown.XHTML = true
	}
	if md.headerPrefix != "" {
		cfg.Anchors.HeaderPrefix = md.headerPrefix
	}
	if md.highlight != "" {
		cfg.Highlight.Enabled = true
		cfg.Highlight.Style = md.highlight
	}

	doc := flags.document
	if doc.standalone {
		cfg.Output.Standalone = true
	}
	if doc.style != "" {
		cfg.Output.Style = doc.style
	}
	if doc.lang != "" {
		cfg.Output.Lang = doc.lang
	}
	if doc.assetPath != "" {
		cfg.Assets.BasePath = doc.assetPath
	}

	toc := flags.toc
	if toc.enabled {
		cfg.TOC.Enabled = true
	}
	if toc.title != "" {
		cfg.TOC.Title = toc.title
	}
	if toc.minDepth != 0 {
		cfg.TOC.MinDepth = toc.minDepth
		if toc.maxDepth == 0 && cfg.TOC.MaxDepth < toc.minDepth {
			cfg.TOC.MaxDepth = toc.minDepth
		}
	}
	if toc.maxDepth != 0 {
		cfg.TOC.MaxDepth = toc.maxDepth
	}
}

// converterOptions translates the resolved config into converter options.
func converterOptions(cfg *config.Config) []mdanchor.Option {
	opts := []mdanchor.Option{
		mdanchor.WithOptions(mdanchor.Options{
			GFM:          cfg.Markdown.GFMEnabled(),
			Pedantic:     cfg.Markdown.Pedantic,
			Sanitize:     cfg.Markdown.Sanitize,
			Breaks:       cfg.Markdown.Breaks,
			XHTML:        cfg.Markdown.XHTML,
			HeaderPrefix: cfg.Anchors.HeaderPrefix,
		}),
		mdanchor.WithRendererOptions(
			anchor.WithLinkClass(cfg.Anchors.LinkClass),
			anchor.WithContainerClass(cfg.Tables.ContainerClass),
		),
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, mdanchor.WithHighlighting(cfg.Highlight.Style))
	}
	return opts
}

// buildConversionParams resolves document options, stylesheet and timeout.
func buildConversionParams(flags *cliFlags, envCfg *envConfig, cfg *config.Config, env *Environment) (*conversionParams, error) {
	params := &conversionParams{timeout: flags.timeout}
	if !flags.changed["timeout"] && envCfg.Timeout > 0 {
		params.timeout = envCfg.Timeout
	}

	params.document = cfg.Output.Standalone || cfg.Output.Style != "" || cfg.TOC.Enabled
	if !params.document {
		return params, nil
	}

	loader := env.AssetLoader
	if cfg.Assets.BasePath != "" {
		var err error
		loader, err = mdanchor.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, err
		}
	}

	params.docOpts = mdanchor.DocumentOptions{
		Title:    flags.document.title,
		Lang:     cfg.Output.Lang,
		Assets:   loader,
		Fragment: !cfg.Output.Standalone,
	}

	if cfg.Output.Style != "" {
		if isStylesheetPath(cfg.Output.Style) {
			css, err := os.ReadFile(cfg.Output.Style) // #nosec G304 -- user-provided stylesheet
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrReadCSS, err)
			}
			params.docOpts.CSS = string(css)
		} else {
			params.docOpts.Style = cfg.Output.Style
		}
	}

	if cfg.TOC.Enabled {
		params.docOpts.TOC = &mdanchor.TOCOptions{
			Title:    cfg.TOC.Title,
			MinDepth: cfg.TOC.MinDepth,
			MaxDepth: cfg.TOC.MaxDepth,
		}
	}

	return params, nil
}

// isStylesheetPath reports whether style names a CSS file rather than a
// built-in style.
func isStylesheetPath(style string) bool {
	return fileutil.IsFilePath(style) || strings.EqualFold(filepath.Ext(style), ".css")
}
