// Package assets provides CSS styles and HTML templates for standalone
// documents. Assets can be loaded from embedded files or custom filesystem
// paths.
package assets

// DefaultStyle is the embedded stylesheet used for standalone documents.
const DefaultStyle = "default"

// DocumentTemplate is the template name for standalone documents.
const DocumentTemplate = "document"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the default embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the default embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
