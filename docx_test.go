package docbuild

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
)

// unpackArchive reads a built package back through the standard reader, which
// also verifies every entry's CRC.
func unpackArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("entry %q: %v", f.Name, err)
		}
		if _, dup := out[f.Name]; dup {
			t.Fatalf("duplicate entry %q", f.Name)
		}
		out[f.Name] = string(b)
	}
	return out
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDocx_BasicMarkdown(t *testing.T) {
	out, err := DocxFromMarkdown("# Title\n\nBody **bold**.")
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/styles.xml",
		"word/_rels/document.xml.rels",
	}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts: %v", len(parts), partNames(parts))
	}
	for _, name := range want {
		if _, ok := parts[name]; !ok {
			t.Fatalf("missing part %q", name)
		}
	}

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, `<w:pStyle w:val="Heading1"/>`) {
		t.Fatal("heading style missing")
	}
	if !strings.Contains(doc, `>Title</w:t>`) {
		t.Fatal("heading text missing")
	}
	if !strings.Contains(doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">bold</w:t>`) {
		t.Fatal("bold run missing")
	}
}

func partNames(parts map[string]string) []string {
	names := make([]string, 0, len(parts))
	for n := range parts {
		names = append(names, n)
	}
	return names
}

func TestDocx_EmptyInputIsValidPackage(t *testing.T) {
	out, err := DocxFromMarkdown("")
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)
	if !strings.Contains(parts["word/document.xml"], "<w:body>") {
		t.Fatal("document part malformed")
	}
	if _, ok := parts["word/numbering.xml"]; ok {
		t.Fatal("numbering part emitted without lists")
	}
}

func TestDocx_StylesDeclareHeadingSizes(t *testing.T) {
	out, err := DocxFromMarkdown("x")
	if err != nil {
		t.Fatal(err)
	}
	styles := unpackArchive(t, out)["word/styles.xml"]
	for level, half := range headingHalfPoints {
		needle := fmt.Sprintf(`w:styleId="Heading%d"`, level)
		if !strings.Contains(styles, needle) {
			t.Fatalf("style Heading%d missing", level)
		}
		idx := strings.Index(styles, needle)
		section := styles[idx:]
		if end := strings.Index(section, "</w:style>"); end >= 0 {
			section = section[:end]
		}
		if !strings.Contains(section, fmt.Sprintf(`<w:sz w:val="%d"/>`, half)) {
			t.Fatalf("Heading%d lacks size %d", level, half)
		}
	}
}

func TestDocx_ListsEmitNumbering(t *testing.T) {
	out, err := DocxFromMarkdown("- a\n  - b\n\n1. one")
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)

	if _, ok := parts["word/numbering.xml"]; !ok {
		t.Fatal("numbering part missing")
	}
	if !strings.Contains(parts["[Content_Types].xml"], "/word/numbering.xml") {
		t.Fatal("numbering override missing from content types")
	}
	if !strings.Contains(parts["word/_rels/document.xml.rels"], "numbering.xml") {
		t.Fatal("numbering relationship missing")
	}

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, `<w:ilvl w:val="0"/><w:numId w:val="1"/>`) {
		t.Fatal("top-level bullet item missing")
	}
	if !strings.Contains(doc, `<w:ilvl w:val="1"/><w:numId w:val="1"/>`) {
		t.Fatal("nested bullet item missing")
	}
	if !strings.Contains(doc, `<w:ilvl w:val="0"/><w:numId w:val="2"/>`) {
		t.Fatal("ordered item missing")
	}

	numbering := parts["word/numbering.xml"]
	if !strings.Contains(numbering, `<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>`) ||
		!strings.Contains(numbering, `<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>`) {
		t.Fatal("num to abstractNum mapping wrong")
	}
}

func TestDocx_SpecialCharactersEscaped(t *testing.T) {
	out, err := DocxFromMarkdown(`a & b <c> "d"`)
	if err != nil {
		t.Fatal(err)
	}
	doc := unpackArchive(t, out)["word/document.xml"]
	if !strings.Contains(doc, `a &amp; b &lt;c&gt; &quot;d&quot;`) {
		t.Fatal("text not escaped")
	}
	if strings.Contains(doc, `<c>`) {
		t.Fatal("raw markup leaked into text")
	}
}

func TestDocx_HyperlinkGroupsRuns(t *testing.T) {
	out, err := DocxFromMarkdown("[plain **bold**](https://example.com/a?b=1&c=2)")
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)
	doc := parts["word/document.xml"]

	// Two styled runs, one hyperlink wrapper, one relationship.
	if got := strings.Count(doc, "<w:hyperlink "); got != 1 {
		t.Fatalf("hyperlink count = %d", got)
	}
	rels := parts["word/_rels/document.xml.rels"]
	if !strings.Contains(rels, `Target="https://example.com/a?b=1&amp;c=2" TargetMode="External"`) {
		t.Fatal("external hyperlink relationship missing or unescaped")
	}
}

func TestDocx_HeaderFooterParts(t *testing.T) {
	b := NewBuilder()
	b.Header().Paragraph("running head")
	b.Footer().PageNumber()
	b.Paragraph("body")
	out, err := b.Docx()
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)

	hdr, ok := parts["word/header1.xml"]
	if !ok {
		t.Fatal("header part missing")
	}
	if !strings.Contains(hdr, "running head") {
		t.Fatal("header content missing")
	}
	ftr := parts["word/footer1.xml"]
	for _, needle := range []string{
		`<w:fldChar w:fldCharType="begin"/>`,
		`<w:instrText xml:space="preserve"> PAGE </w:instrText>`,
		`<w:fldChar w:fldCharType="separate"/>`,
		`<w:t>1</w:t>`,
		`<w:fldChar w:fldCharType="end"/>`,
	} {
		if !strings.Contains(ftr, needle) {
			t.Fatalf("footer field missing %q", needle)
		}
	}

	doc := parts["word/document.xml"]
	if !strings.Contains(doc, "<w:headerReference ") || !strings.Contains(doc, "<w:footerReference ") {
		t.Fatal("section references missing")
	}
	ct := parts["[Content_Types].xml"]
	if !strings.Contains(ct, "/word/header1.xml") || !strings.Contains(ct, "/word/footer1.xml") {
		t.Fatal("header/footer overrides missing")
	}
}

func TestDocx_ImagesAcrossParts(t *testing.T) {
	pic := testPNG(t, 8, 8)
	b := NewBuilder()
	b.Header().Image(pic, 1, 1)
	b.Image(pic, 2, 1)
	out, err := b.Docx()
	if err != nil {
		t.Fatal(err)
	}
	parts := unpackArchive(t, out)

	// Media names continue across parts: body renders first, header second.
	if _, ok := parts["word/media/image1.png"]; !ok {
		t.Fatal("first media file missing")
	}
	if _, ok := parts["word/media/image2.png"]; !ok {
		t.Fatal("second media file missing")
	}
	if !strings.Contains(parts["[Content_Types].xml"], `<Default Extension="png" ContentType="image/png"/>`) {
		t.Fatal("png default content type missing")
	}

	doc := parts["word/document.xml"]
	hdr := parts["word/header1.xml"]
	if !strings.Contains(doc, fmt.Sprintf(`<wp:extent cx="%d" cy="%d"/>`, 2*emuPerInch, 1*emuPerInch)) {
		t.Fatal("body image extent wrong")
	}
	// Draw ids must be unique across parts.
	if strings.Contains(doc, `<wp:docPr id="1" `) && strings.Contains(hdr, `<wp:docPr id="1" `) {
		t.Fatal("draw id reused across parts")
	}
	if !strings.Contains(parts["word/_rels/document.xml.rels"], `Target="media/image1.png"`) {
		t.Fatal("body image relationship missing")
	}
	if !strings.Contains(parts["word/_rels/header1.xml.rels"], `Target="media/image2.png"`) {
		t.Fatal("header image relationship missing")
	}
}

func TestDocx_ImageSizeLimit(t *testing.T) {
	lim := defaultLimits()
	lim.MaxImageBytes = 16
	b := NewBuilder(WithLimits(lim))
	b.Image(testPNG(t, 4, 4), 1, 1)
	if _, err := b.Docx(); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestDocx_QuoteIndentsContents(t *testing.T) {
	out, err := DocxFromMarkdown("> one\n> > two")
	if err != nil {
		t.Fatal(err)
	}
	doc := unpackArchive(t, out)["word/document.xml"]
	if !strings.Contains(doc, `<w:ind w:left="720"/>`) {
		t.Fatal("first-level indent missing")
	}
	if !strings.Contains(doc, `<w:ind w:left="1440"/>`) {
		t.Fatal("second-level indent missing")
	}
}

func TestDocx_AlignmentValues(t *testing.T) {
	b := NewBuilder().
		RichParagraph(AlignCenter, Run{Text: "c"}).
		RichParagraph(AlignRight, Run{Text: "r"}).
		RichParagraph(AlignJustify, Run{Text: "j"}).
		RichParagraph(AlignLeft, Run{Text: "l"})
	out, err := b.Docx()
	if err != nil {
		t.Fatal(err)
	}
	doc := unpackArchive(t, out)["word/document.xml"]
	for _, v := range []string{"center", "right", "both"} {
		if !strings.Contains(doc, `<w:jc w:val="`+v+`"/>`) {
			t.Fatalf("alignment %q missing", v)
		}
	}
	if strings.Contains(doc, `<w:jc w:val="left"/>`) {
		t.Fatal("left alignment should be the implicit default")
	}
}

func TestDocx_TableWidths(t *testing.T) {
	b := NewBuilder().TableWithWidths(
		[]int{2000, 4000},
		[]string{"H1", "H2"},
		[]string{"a", "b"},
	)
	out, err := b.Docx()
	if err != nil {
		t.Fatal(err)
	}
	doc := unpackArchive(t, out)["word/document.xml"]
	if !strings.Contains(doc, `<w:gridCol w:w="2000"/><w:gridCol w:w="4000"/>`) {
		t.Fatal("table grid missing")
	}
	if !strings.Contains(doc, `<w:tcW w:w="2000" w:type="dxa"/>`) {
		t.Fatal("cell width missing")
	}
	// Header cells of a plain table are bold.
	if !strings.Contains(doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">H1</w:t>`) {
		t.Fatal("plain table header not bold")
	}
}

func TestDocx_CodeBlockRuns(t *testing.T) {
	out, err := DocxFromMarkdown("```\nline1\nline2\n```")
	if err != nil {
		t.Fatal(err)
	}
	doc := unpackArchive(t, out)["word/document.xml"]
	if !strings.Contains(doc, `<w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/>`) {
		t.Fatal("monospace font missing")
	}
	if got := strings.Count(doc, `w:fill="E7E6E6"`); got != 2 {
		t.Fatalf("expected one shaded run per code line, got %d", got)
	}
}
