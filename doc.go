// Package docbuild converts a lightweight Markdown dialect, or a fluent
// document-building API, into Word (.docx) and OpenDocument Text (.odt)
// packages.
//
// Both output formats are ZIP archives of XML parts. The package assembles
// the archives itself: entries are stored uncompressed by default, with
// optional Deflate compression via [WithCompression]. No file-system I/O is
// performed; converters accept strings and return byte slices.
//
// # Markdown Dialect
//
// The parser supports headings, paragraphs, fenced code blocks, block
// quotes, horizontal rules, nested ordered/unordered lists, pipe tables,
// and the inline spans bold, italic, strikethrough, code, links, and
// backslash escapes. Parsing is total: malformed constructs degrade to
// literal text rather than failing. Each non-blank plain line becomes its
// own paragraph; consecutive lines are not reflowed into one.
//
// # Basic Usage
//
// To convert Markdown directly:
//
//	data, err := docbuild.DocxFromMarkdown("# Title\n\nBody **bold**.\n")
//
// To build a document with the fluent API:
//
//	b := docbuild.NewBuilder()
//	b.Heading(1, "Report").
//		Paragraph("Quarterly summary.").
//		Table([]string{"Region", "Total"}, []string{"North", "42"})
//	data, err := b.Docx()
//
// # Limits
//
// Parsing and rendering are bounded by configurable [Limits]: an inline
// parser iteration cap, a block nesting depth, a per-image size cap, and a
// total archive size cap. Archives are additionally subject to the 32-bit
// size ceiling of the classic ZIP format; exceeding it returns
// [ErrArchiveTooLarge].
package docbuild
