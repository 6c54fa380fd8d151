package mdanchor_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdanchor"
	"github.com/alnah/go-mdanchor/anchor"
)

// Example demonstrates anchored headings with duplicate numbering.
func Example() {
	html, err := mdanchor.Render(context.Background(), "# Examples\n\n## Examples\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(html)
	// Output:
	// <h1 id="examples"><a href="#examples" class="anchor"></a>Examples</h1>
	// <h2 id="examples-1"><a href="#examples-1" class="anchor"></a>Examples</h2>
}

// Example_table demonstrates the scroll container around tables.
func Example_table() {
	html, err := mdanchor.Render(context.Background(), "| a |\n|---|\n| 1 |\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.HasPrefix(html, `<div class="table-container"><table>`))
	// Output: true
}

// ExampleNew demonstrates a reusable converter with options.
func ExampleNew() {
	conv := mdanchor.New(
		mdanchor.WithHeaderPrefix("doc-"),
		mdanchor.WithRendererOptions(anchor.WithLinkClass("permalink")),
	)

	html, err := conv.Render(context.Background(), "## Setup\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(html)
	// Output: <h2 id="doc-setup"><a href="#doc-setup" class="permalink"></a>Setup</h2>
}

// ExampleRenderFunc demonstrates the callback form.
func ExampleRenderFunc() {
	done := make(chan struct{})
	err := mdanchor.RenderFunc(context.Background(), "# Hi\n", func(html string, err error) {
		defer close(done)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Print(html)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	<-done
	// Output: <h1 id="hi"><a href="#hi" class="anchor"></a>Hi</h1>
}

// ExampleGetAnchor demonstrates the base anchor without deduplication.
func ExampleGetAnchor() {
	fmt.Println(mdanchor.GetAnchor("BEM Templates"))
	fmt.Println(mdanchor.GetAnchor("A & B!"))
	// Output:
	// bem-templates
	// a--b
}

// ExampleConverter_Document demonstrates a standalone page with a TOC.
func ExampleConverter_Document() {
	page, err := mdanchor.New().Document(context.Background(),
		"# Guide\n\n## Install\n\n## Usage\n",
		mdanchor.DocumentOptions{TOC: &mdanchor.TOCOptions{}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Contains(page, `<a href="#install">1. Install</a>`))
	fmt.Println(strings.Contains(page, "<title>Guide</title>"))
	// Output:
	// true
	// true
}
