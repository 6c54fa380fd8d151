package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-mdanchor/internal/fileutil"
	"github.com/alnah/go-mdanchor/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidClass    = errors.New("invalid CSS class name")
	ErrInvalidDepth    = errors.New("invalid heading depth")
)

// Field length limits.
const (
	MaxHeaderPrefixLength = 64   // Prepended to every heading id
	MaxClassLength        = 64   // linkClass, containerClass
	MaxStyleNameLength    = 64   // Chroma style or CSS style name
	MaxPathLength         = 4096 // defaultDir, basePath, style path
	MaxTOCTitleLength     = 100  // TOC title
	MaxLangLength         = 35   // BCP 47 tag
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "mdanchor"

var classPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// Config holds all configuration for rendering.
type Config struct {
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Anchors   AnchorsConfig   `yaml:"anchors"`
	Tables    TablesConfig    `yaml:"tables"`
	Highlight HighlightConfig `yaml:"highlight"`
	Output    OutputConfig    `yaml:"output"`
	TOC       TOCConfig       `yaml:"toc"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// MarkdownConfig selects the Markdown dialect.
type MarkdownConfig struct {
	GFM      *bool `yaml:"gfm"` // nil = enabled
	Pedantic bool  `yaml:"pedantic"`
	Sanitize bool  `yaml:"sanitize"`
	Breaks   bool  `yaml:"breaks"`
	XHTML    bool  `yaml:"xhtml"`
}

// GFMEnabled reports whether GitHub Flavored Markdown is on.
func (m MarkdownConfig) GFMEnabled() bool {
	return m.GFM == nil || *m.GFM
}

// AnchorsConfig defines heading anchor options.
type AnchorsConfig struct {
	HeaderPrefix string `yaml:"headerPrefix"`
	LinkClass    string `yaml:"linkClass"` // default: "anchor"
}

// TablesConfig defines table wrapping options.
type TablesConfig struct {
	ContainerClass string `yaml:"containerClass"` // default: "table-container"
}

// HighlightConfig defines fenced code highlighting options.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style, default: "github"
}

// OutputConfig defines output destination and document options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Standalone bool   `yaml:"standalone"` // full HTML document instead of a fragment
	Style      string `yaml:"style"`      // embedded style name or CSS file path
	Lang       string `yaml:"lang"`       // <html lang>, default: "en"
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Title    string `yaml:"title"`    // empty = no title above TOC
	MinDepth int    `yaml:"minDepth"` // 1-6, default 2
	MaxDepth int    `yaml:"maxDepth"` // 1-6, default 3
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// Defaults applied to zero-valued fields.
const (
	DefaultLinkClass      = "anchor"
	DefaultContainerClass = "table-container"
	DefaultHighlightStyle = "github"
	DefaultLang           = "en"
	DefaultTOCMinDepth    = 2
	DefaultTOCMaxDepth    = 3
)

// Validate checks field lengths, class names and TOC depths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("anchors.headerPrefix", c.Anchors.HeaderPrefix, MaxHeaderPrefixLength); err != nil {
		return err
	}
	if err := validateClass("anchors.linkClass", c.Anchors.LinkClass); err != nil {
		return err
	}
	if err := validateClass("tables.containerClass", c.Tables.ContainerClass); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.lang", c.Output.Lang, MaxLangLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if err := validateDepth("toc.minDepth", c.TOC.MinDepth); err != nil {
		return err
	}
	if err := validateDepth("toc.maxDepth", c.TOC.MaxDepth); err != nil {
		return err
	}
	if c.TOC.MinDepth != 0 && c.TOC.MaxDepth != 0 && c.TOC.MinDepth > c.TOC.MaxDepth {
		return fmt.Errorf("%w: toc.minDepth (%d) greater than toc.maxDepth (%d)",
			ErrInvalidDepth, c.TOC.MinDepth, c.TOC.MaxDepth)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateClass accepts an empty value (default applies) or a single CSS
// identifier.
func validateClass(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxClassLength); err != nil {
		return err
	}
	if !classPattern.MatchString(value) {
		return fmt.Errorf("%w: %s %q", ErrInvalidClass, fieldName, value)
	}
	return nil
}

// validateDepth accepts 0 (default applies) or a heading level.
func validateDepth(fieldName string, depth int) error {
	if depth != 0 && (depth < 1 || depth > 6) {
		return fmt.Errorf("%w: %s must be between 1 and 6, got %d", ErrInvalidDepth, fieldName, depth)
	}
	return nil
}

// DefaultConfig returns GFM rendering with default classes and every
// optional feature disabled.
func DefaultConfig() *Config {
	return &Config{
		Anchors:   AnchorsConfig{LinkClass: DefaultLinkClass},
		Tables:    TablesConfig{ContainerClass: DefaultContainerClass},
		Highlight: HighlightConfig{Style: DefaultHighlightStyle},
		Output:    OutputConfig{Lang: DefaultLang},
		TOC:       TOCConfig{MinDepth: DefaultTOCMinDepth, MaxDepth: DefaultTOCMaxDepth},
	}
}

// applyDefaults fills zero-valued fields that have a non-zero default.
func (c *Config) applyDefaults() {
	if c.Anchors.LinkClass == "" {
		c.Anchors.LinkClass = DefaultLinkClass
	}
	if c.Tables.ContainerClass == "" {
		c.Tables.ContainerClass = DefaultContainerClass
	}
	if c.Highlight.Style == "" {
		c.Highlight.Style = DefaultHighlightStyle
	}
	if c.Output.Lang == "" {
		c.Output.Lang = DefaultLang
	}
	if c.TOC.MinDepth == 0 {
		c.TOC.MinDepth = DefaultTOCMinDepth
	}
	if c.TOC.MaxDepth == 0 {
		c.TOC.MaxDepth = max(DefaultTOCMaxDepth, c.TOC.MinDepth)
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.FormatError(err))
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup
// order: current directory, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in SearchPaths order.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
