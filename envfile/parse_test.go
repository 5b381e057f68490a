package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBasicAssignments(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKeys  []string
		wantValue map[string]string
	}{
		{
			name:      "single assignment",
			input:     "KEY=value\n",
			wantKeys:  []string{"KEY"},
			wantValue: map[string]string{"KEY": "value"},
		},
		{
			name:      "empty value is present",
			input:     "KEY=\n",
			wantKeys:  []string{"KEY"},
			wantValue: map[string]string{"KEY": ""},
		},
		{
			name:      "value containing equals",
			input:     "KEY=a=b=c\n",
			wantKeys:  []string{"KEY"},
			wantValue: map[string]string{"KEY": "a=b=c"},
		},
		{
			name:      "insertion order preserved",
			input:     "B=2\nA=1\nC=3\n",
			wantKeys:  []string{"B", "A", "C"},
			wantValue: map[string]string{"A": "1", "B": "2", "C": "3"},
		},
		{
			name:      "crlf line endings",
			input:     "KEY=value\r\nOTHER=x\r\n",
			wantKeys:  []string{"KEY", "OTHER"},
			wantValue: map[string]string{"KEY": "value", "OTHER": "x"},
		},
		{
			name:      "surrounding value whitespace trimmed",
			input:     "KEY=  spaced  \n",
			wantKeys:  []string{"KEY"},
			wantValue: map[string]string{"KEY": "spaced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input, "test.env")

			if got := doc.Keys(); !equalStrings(got, tt.wantKeys) {
				t.Errorf("Keys() = %v, want %v", got, tt.wantKeys)
			}

			for key, want := range tt.wantValue {
				entry, ok := doc.Lookup(key)
				if !ok {
					t.Fatalf("Lookup(%q) not found", key)
				}

				if entry.Value != want {
					t.Errorf("Lookup(%q).Value = %q, want %q",
						key, entry.Value, want)
				}
			}

			if doc.HasErrors() {
				t.Errorf("HasErrors() = true for valid input")
			}
		})
	}
}

func TestParseDuplicates(t *testing.T) {
	doc := Parse("KEY=value\nKEY=value2\n", "test.env")

	if doc.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", doc.Len())
	}

	entry, ok := doc.Lookup("KEY")
	if !ok {
		t.Fatal("Lookup(KEY) not found")
	}

	if entry.Value != "value2" {
		t.Errorf("Value = %q, want %q (last occurrence wins)",
			entry.Value, "value2")
	}

	if entry.Line != 2 {
		t.Errorf("Line = %d, want 2", entry.Line)
	}

	dup := doc.Duplicates()
	if lines, ok := dup["KEY"]; !ok || !equalInts(lines, []int{1, 2}) {
		t.Errorf("Duplicates()[KEY] = %v, want [1 2]", lines)
	}

	diags := doc.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("Diagnostics() = %d, want 1", len(diags))
	}

	if diags[0].Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", diags[0].Severity)
	}

	if diags[0].Line != 2 {
		t.Errorf("diagnostic Line = %d, want 2", diags[0].Line)
	}

	want := `Duplicate variable "KEY": also defined on line(s) 1`
	if diags[0].Message != want {
		t.Errorf("Message = %q, want %q", diags[0].Message, want)
	}
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		key          string
		wantComments []string
	}{
		{
			name:         "single comment attaches",
			input:        "# Max connections\nDB_POOL_SIZE=10\n",
			key:          "DB_POOL_SIZE",
			wantComments: []string{"Max connections"},
		},
		{
			name:         "consecutive comments accumulate",
			input:        "# first\n# second\nKEY=1\n",
			key:          "KEY",
			wantComments: []string{"first", "second"},
		},
		{
			name:         "blank line clears pending comments",
			input:        "# note\n\nKEY=1\n",
			key:          "KEY",
			wantComments: nil,
		},
		{
			name:         "invalid line clears pending comments",
			input:        "# note\nnot an assignment\nKEY=1\n",
			key:          "KEY",
			wantComments: nil,
		},
		{
			name:         "comments do not leak past an assignment",
			input:        "# doc\nFIRST=1\nSECOND=2\n",
			key:          "SECOND",
			wantComments: nil,
		},
		{
			name:         "leading hash whitespace stripped",
			input:        "#   padded comment   \nKEY=1\n",
			key:          "KEY",
			wantComments: []string{"padded comment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input, "test.env")

			entry, ok := doc.Lookup(tt.key)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.key)
			}

			if !equalStrings(entry.Comments, tt.wantComments) {
				t.Errorf("Comments = %v, want %v",
					entry.Comments, tt.wantComments)
			}
		})
	}
}

func TestParseQuotes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValue  string
		wantQuote  QuoteStyle
		wantQuoted bool
	}{
		{
			name:       "double quotes stripped",
			input:      `KEY="hello world"`,
			wantValue:  "hello world",
			wantQuote:  QuoteDouble,
			wantQuoted: true,
		},
		{
			name:       "double quote escapes",
			input:      `KEY="line\nbreak\tand \"quote\""`,
			wantValue:  "line\nbreak\tand \"quote\"",
			wantQuote:  QuoteDouble,
			wantQuoted: true,
		},
		{
			name:       "single quotes literal",
			input:      `KEY='no\nescape'`,
			wantValue:  `no\nescape`,
			wantQuote:  QuoteSingle,
			wantQuoted: true,
		},
		{
			name:       "unterminated quote passes through",
			input:      `KEY="unterminated`,
			wantValue:  `"unterminated`,
			wantQuote:  QuoteNone,
			wantQuoted: false,
		},
		{
			name:       "inline comment stripped from unquoted value",
			input:      "KEY=value # trailing note",
			wantValue:  "value",
			wantQuote:  QuoteNone,
			wantQuoted: false,
		},
		{
			name:       "hash inside quotes kept",
			input:      `KEY="value # not a comment"`,
			wantValue:  "value # not a comment",
			wantQuote:  QuoteDouble,
			wantQuoted: true,
		},
		{
			name:       "hash without space kept",
			input:      "KEY=value#fragment",
			wantValue:  "value#fragment",
			wantQuote:  QuoteNone,
			wantQuoted: false,
		},
		{
			name:       "bare key with inline comment",
			input:      "KEY= # only a note",
			wantValue:  "",
			wantQuote:  QuoteNone,
			wantQuoted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input+"\n", "test.env")

			entry, ok := doc.Lookup("KEY")
			if !ok {
				t.Fatal("Lookup(KEY) not found")
			}

			if entry.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", entry.Value, tt.wantValue)
			}

			if entry.Quote != tt.wantQuote {
				t.Errorf("Quote = %v, want %v", entry.Quote, tt.wantQuote)
			}

			if entry.Quoted != tt.wantQuoted {
				t.Errorf("Quoted = %v, want %v", entry.Quoted, tt.wantQuoted)
			}
		})
	}
}

func TestParseDiagnostics(t *testing.T) {
	t.Run("invalid syntax warns and skips", func(t *testing.T) {
		doc := Parse("just some text\nKEY=1\n", "test.env")

		if doc.Len() != 1 {
			t.Errorf("Len() = %d, want 1", doc.Len())
		}

		diags := doc.Diagnostics()
		if len(diags) != 1 {
			t.Fatalf("Diagnostics() = %d, want 1", len(diags))
		}

		if diags[0].Line != 1 || diags[0].Severity != SeverityWarning {
			t.Errorf("diagnostic = %+v, want warning on line 1", diags[0])
		}

		if !strings.HasPrefix(diags[0].Message, "Invalid syntax: ") {
			t.Errorf("Message = %q, want Invalid syntax prefix",
				diags[0].Message)
		}
	})

	t.Run("long invalid line truncated", func(t *testing.T) {
		long := strings.Repeat("x", 80)
		doc := Parse(long+"\n", "test.env")

		diags := doc.Diagnostics()
		if len(diags) != 1 {
			t.Fatalf("Diagnostics() = %d, want 1", len(diags))
		}

		want := "Invalid syntax: " + strings.Repeat("x", 50) + "..."
		if diags[0].Message != want {
			t.Errorf("Message = %q, want %q", diags[0].Message, want)
		}
	})

	t.Run("whitespace in variable name", func(t *testing.T) {
		doc := Parse("  KEY  =value\n", "test.env")

		entry, ok := doc.Lookup("KEY")
		if !ok {
			t.Fatal("Lookup(KEY) not found after trimming")
		}

		if entry.Value != "value" {
			t.Errorf("Value = %q, want %q", entry.Value, "value")
		}

		diags := doc.Diagnostics()
		if len(diags) != 1 {
			t.Fatalf("Diagnostics() = %d, want 1", len(diags))
		}

		want := `Whitespace in variable name: "  KEY  "`
		if diags[0].Message != want {
			t.Errorf("Message = %q, want %q", diags[0].Message, want)
		}
	})

	t.Run("valid input has no diagnostics", func(t *testing.T) {
		doc := Parse("# comment\nKEY=1\n\nOTHER=2\n", "test.env")

		if len(doc.Diagnostics()) != 0 {
			t.Errorf("Diagnostics() = %v, want none", doc.Diagnostics())
		}
	})
}

func TestParseFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		doc := ParseFile(filepath.Join(t.TempDir(), "absent.env"))

		if !doc.HasErrors() {
			t.Fatal("HasErrors() = false for missing file")
		}

		if doc.Len() != 0 {
			t.Errorf("Len() = %d, want 0", doc.Len())
		}

		diags := doc.Diagnostics()
		if len(diags) != 1 || diags[0].Severity != SeverityError {
			t.Errorf("Diagnostics() = %+v, want one error", diags)
		}

		if !strings.HasPrefix(diags[0].Message, "File not found: ") {
			t.Errorf("Message = %q, want File not found prefix",
				diags[0].Message)
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ok.env")
		if err := os.WriteFile(path, []byte("KEY=1\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		doc := ParseFile(path)

		if doc.HasErrors() {
			t.Fatalf("HasErrors() = true: %+v", doc.Diagnostics())
		}

		if doc.Len() != 1 {
			t.Errorf("Len() = %d, want 1", doc.Len())
		}

		if !filepath.IsAbs(doc.Path()) {
			t.Errorf("Path() = %q, want absolute", doc.Path())
		}
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
