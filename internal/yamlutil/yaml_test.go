package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdanchor/internal/yamlutil"
)

type section struct {
	Class string `yaml:"class"`
	Depth int    `yaml:"depth"`
}

type testConfig struct {
	Name    string  `yaml:"name"`
	Enabled bool    `yaml:"enabled"`
	Section section `yaml:"section"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    testConfig
		wantErr error
	}{
		{
			name: "nested fields",
			data: "name: docs\nenabled: true\nsection:\n  class: anchor\n  depth: 3\n",
			want: testConfig{Name: "docs", Enabled: true, Section: section{Class: "anchor", Depth: 3}},
		},
		{
			name: "unknown keys ignored",
			data: "name: docs\nextra: 1\n",
			want: testConfig{Name: "docs"},
		},
		{
			name: "unicode values",
			data: "name: Заголовок\n",
			want: testConfig{Name: "Заголовок"},
		},
		{
			name:    "empty data",
			data:    "",
			wantErr: yamlutil.ErrNilData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got testConfig
			err := yamlutil.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown keys rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields decode", func(t *testing.T) {
		t.Parallel()

		var got testConfig
		if err := yamlutil.UnmarshalStrict([]byte("name: strict\n"), &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "strict" {
			t.Errorf("Name = %q, want %q", got.Name, "strict")
		}
	})

	t.Run("unknown top-level key fails", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("name: x\nunknown: y\n"), &testConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix 'yamlutil:'", err)
		}
	})

	t.Run("unknown nested key fails", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("section:\n  klass: x\n"), &testConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.UnmarshalStrict([]byte("name: x"), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Encoding
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(testConfig{Name: "out", Section: section{Class: "anchor", Depth: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := string(data)
	for _, want := range []string{"name: out", "section:", "  class: anchor", "  depth: 2"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got:\n%s", want, s)
		}
	}

	var back testConfig
	if err := yamlutil.UnmarshalStrict(data, &back); err != nil {
		t.Fatalf("strict decode of marshaled output failed: %v", err)
	}
	if back.Section.Class != "anchor" {
		t.Errorf("Section.Class = %q, want %q", back.Section.Class, "anchor")
	}
}

// ---------------------------------------------------------------------------
// TestFormatError - Source-annotated messages
// ---------------------------------------------------------------------------

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		if got := yamlutil.FormatError(nil); got != "" {
			t.Errorf("FormatError(nil) = %q, want empty", got)
		}
	})

	t.Run("parse error is non-empty", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.Unmarshal([]byte("name: [unclosed"), &testConfig{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := yamlutil.FormatError(err); got == "" {
			t.Error("FormatError() = empty, want message")
		}
	})

	t.Run("plain error passes through", func(t *testing.T) {
		t.Parallel()

		if got := yamlutil.FormatError(yamlutil.ErrNilData); !strings.Contains(got, "nil or empty data") {
			t.Errorf("FormatError() = %q, want sentinel message", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so no t.Parallel().
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50
	data := make([]byte, 100)
	copy(data, "name: x")

	for name, decode := range map[string]func([]byte, any) error{
		"Unmarshal":       yamlutil.Unmarshal,
		"UnmarshalStrict": yamlutil.UnmarshalStrict,
	} {
		err := decode(data, &testConfig{})
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("%s: error = %v, want ErrInputTooLarge", name, err)
			continue
		}
		if !strings.Contains(err.Error(), "100 bytes") || !strings.Contains(err.Error(), "max 50") {
			t.Errorf("%s: error should contain sizes, got: %s", name, err)
		}
	}
}
