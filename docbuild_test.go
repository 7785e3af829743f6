package docbuild

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `# Report

Intro paragraph with **bold**, *italic*, ~~struck~~, and ` + "`code`" + `.

## Details

> A quoted remark.

- first
- second
  - nested

1. step one
2. step two

| Name | Value |
|------|-------|
| a    | 1     |
| b    | 2     |

---

[project page](https://example.com/project)

` + "```go\nfunc main() {}\n```" + `
`

func TestEndToEnd_DocxAndOdt(t *testing.T) {
	for _, tc := range []struct {
		name    string
		convert func(string, ...BuildOption) ([]byte, error)
	}{
		{"docx", DocxFromMarkdown},
		{"odt", OdtFromMarkdown},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.convert(sampleDoc)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(out, []byte{0x50, 0x4B, 0x03, 0x04}) {
				t.Fatal("output is not a ZIP archive")
			}
			if _, err := zip.NewReader(bytes.NewReader(out), int64(len(out))); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestEndToEnd_ParsingIsTotal(t *testing.T) {
	// Malformed input must degrade, never error.
	inputs := []string{
		"**unclosed",
		"[link](nowhere",
		"```\nno closing fence",
		strings.Repeat(">", 100) + " deep",
		strings.Repeat("*", 5000),
		"| lonely pipe",
		"\x00\x01\x02 control bytes",
	}
	for _, in := range inputs {
		if _, err := DocxFromMarkdown(in); err != nil {
			t.Fatalf("DocxFromMarkdown(%q): %v", in, err)
		}
		if _, err := OdtFromMarkdown(in); err != nil {
			t.Fatalf("OdtFromMarkdown(%q): %v", in, err)
		}
	}
}

func TestEndToEnd_DeflateProducesReadablePackage(t *testing.T) {
	stored, err := DocxFromMarkdown(sampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	deflated, err := DocxFromMarkdown(sampleDoc, WithCompression(CompDeflate))
	if err != nil {
		t.Fatal(err)
	}
	if len(deflated) >= len(stored) {
		t.Fatalf("deflate did not shrink output: %d >= %d", len(deflated), len(stored))
	}
	if !strings.Contains(unpackArchive(t, deflated)["word/document.xml"], "Report") {
		t.Fatal("deflated content unreadable")
	}
}

func TestEndToEnd_ArchiveLimit(t *testing.T) {
	lim := defaultLimits()
	lim.MaxArchiveBytes = 100
	_, err := DocxFromMarkdown(sampleDoc, WithLimits(lim))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("err = %v", err)
	}
}

func TestEndToEnd_CustomLimitsBackfilled(t *testing.T) {
	// Zero-valued fields fall back to defaults instead of rejecting all input.
	if _, err := DocxFromMarkdown("hello", WithLimits(Limits{})); err != nil {
		t.Fatal(err)
	}
}

func TestEndToEnd_Deterministic(t *testing.T) {
	a, err := DocxFromMarkdown(sampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DocxFromMarkdown(sampleDoc)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("identical input produced different archives")
	}
}
