//go:build bench

package mdanchor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-mdanchor/anchor"
)

// benchmarkDocument builds a document with n sections sharing a few heading
// texts, so most anchors need a duplicate suffix.
func benchmarkDocument(n int) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	for i := range n {
		fmt.Fprintf(&b, "## Section %d\n\n### Examples\n\nSome *text* with `code`.\n\n", i%10)
		b.WriteString("| key | value |\n|-----|-------|\n| a | 1 |\n| b | 2 |\n\n")
	}
	return b.String()
}

// BenchmarkRender benchmarks full Markdown rendering with anchors and tables.
func BenchmarkRender(b *testing.B) {
	ctx := context.Background()
	conv := New()

	for _, n := range []int{10, 100, 1000} {
		md := benchmarkDocument(n)
		b.Run(fmt.Sprintf("sections_%d", n), func(b *testing.B) {
			b.SetBytes(int64(len(md)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := conv.Render(ctx, md); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDocument benchmarks standalone output with a TOC.
func BenchmarkDocument(b *testing.B) {
	ctx := context.Background()
	conv := New()
	md := benchmarkDocument(100)
	opts := DocumentOptions{Style: DefaultStyle, TOC: &TOCOptions{}}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := conv.Document(ctx, md, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSlugify benchmarks anchor computation alone.
func BenchmarkSlugify(b *testing.B) {
	inputs := []string{"Setup", "BEM Templates", "Привет Мир!", strings.Repeat("Long heading ", 20)}

	b.ReportAllocs()
	for b.Loop() {
		for _, s := range inputs {
			_ = anchor.Slugify(s)
		}
	}
}
