package docbuild

import "fmt"

// Builder accumulates document elements through a fluent API. Every mutating
// method returns the receiver so calls chain; the observable contract is the
// final element sequence, not builder identity. A Builder is created fresh
// per document, carries its own id state through the build, and must not be
// shared between goroutines.
type Builder struct {
	cfg    buildConfig
	els    []element
	header *Builder
	footer *Builder
	err    error
}

func NewBuilder(opts ...BuildOption) *Builder {
	return &Builder{cfg: newBuildConfig(opts)}
}

// Heading adds a heading. Levels outside 1-6 are clamped.
func (b *Builder) Heading(level int, text string) *Builder {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	b.els = append(b.els, headingElement{level: level, text: text})
	return b
}

func (b *Builder) Paragraph(text string) *Builder {
	b.els = append(b.els, paragraphElement{text: text})
	return b
}

func (b *Builder) RichParagraph(align Alignment, runs ...Run) *Builder {
	b.els = append(b.els, richParagraphElement{runs: runs, align: align})
	return b
}

// SizedText adds a paragraph whose single run uses the given point size.
func (b *Builder) SizedText(text string, points float64) *Builder {
	b.els = append(b.els, sizedTextElement{text: text, points: points})
	return b
}

func (b *Builder) LineBreak() *Builder {
	b.els = append(b.els, lineBreakElement{})
	return b
}

func (b *Builder) HorizontalRule() *Builder {
	b.els = append(b.els, ruleElement{})
	return b
}

// List adds a plain unordered list, one item per string.
func (b *Builder) List(items ...string) *Builder {
	b.els = append(b.els, plainListElement{ordered: false, items: items})
	return b
}

// NumberedList adds a plain ordered list.
func (b *Builder) NumberedList(items ...string) *Builder {
	b.els = append(b.els, plainListElement{ordered: true, items: items})
	return b
}

func (b *Builder) RichList(group ListGroup) *Builder {
	b.els = append(b.els, richListElement{group: group})
	return b
}

// Table adds a plain table from a header row and body rows.
func (b *Builder) Table(header []string, rows ...[]string) *Builder {
	b.els = append(b.els, plainTableElement{header: header, rows: rows})
	return b
}

// TableWithWidths is Table with per-column widths in twentieths of a point.
// Widths are emitted uninterpreted; callers are responsible for sane values.
func (b *Builder) TableWithWidths(widths []int, header []string, rows ...[]string) *Builder {
	b.els = append(b.els, plainTableElement{header: header, rows: rows, widths: widths})
	return b
}

func (b *Builder) RichTable(t Table) *Builder {
	b.els = append(b.els, richTableElement{table: t})
	return b
}

func (b *Builder) Link(text, href string) *Builder {
	b.els = append(b.els, hyperlinkElement{text: text, href: href})
	return b
}

// Image embeds raw encoded image bytes displayed at the given size in
// inches. The type is sniffed from magic bytes, defaulting to PNG. When
// either dimension is zero or negative, the intrinsic pixel size is probed
// from the image header and converted at 96 DPI; if that fails the build
// reports ErrValidation.
func (b *Builder) Image(data []byte, widthInches, heightInches float64) *Builder {
	if widthInches <= 0 || heightInches <= 0 {
		w, h, ok := probeImageInches(data)
		if !ok {
			b.fail(fmt.Errorf("%w: image dimensions not given and could not be probed", ErrValidation))
			return b
		}
		widthInches, heightInches = w, h
	}
	b.els = append(b.els, imageElement{
		data:     data,
		kind:     sniffImageKind(data),
		widthIn:  widthInches,
		heightIn: heightInches,
	})
	return b
}

// BlockQuote builds a nested element group through fn and adds it as a
// block quote.
func (b *Builder) BlockQuote(fn func(q *Builder)) *Builder {
	q := &Builder{cfg: b.cfg}
	fn(q)
	if q.err != nil {
		b.fail(q.err)
		return b
	}
	b.els = append(b.els, quoteElement{children: q.els})
	return b
}

func (b *Builder) CodeBlock(code, language string) *Builder {
	b.els = append(b.els, codeBlockElement{language: language, code: code})
	return b
}

// PageNumber adds a page-number field. The DOCX output emits a real field
// code with a static "1" placeholder; viewers that recalculate fields show
// the actual page number.
func (b *Builder) PageNumber() *Builder {
	b.els = append(b.els, pageNumberElement{})
	return b
}

// Header returns the builder for the page header part, creating it on first
// use. Header relationship ids are scoped to the header part.
func (b *Builder) Header() *Builder {
	if b.header == nil {
		b.header = &Builder{cfg: b.cfg}
	}
	return b.header
}

// Footer returns the builder for the page footer part.
func (b *Builder) Footer() *Builder {
	if b.footer == nil {
		b.footer = &Builder{cfg: b.cfg}
	}
	return b.footer
}

// Markdown parses md and appends the resulting elements, composing the
// markdown pipeline with the fluent one.
func (b *Builder) Markdown(md string) *Builder {
	b.els = append(b.els, elementsFromBlocks(parseBlocks(md, b.cfg.limits))...)
	return b
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) sectionElements() (header, footer []element, err error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	if b.header != nil {
		if b.header.err != nil {
			return nil, nil, b.header.err
		}
		header = b.header.els
	}
	if b.footer != nil {
		if b.footer.err != nil {
			return nil, nil, b.footer.err
		}
		footer = b.footer.els
	}
	return header, footer, nil
}

// Docx renders the accumulated elements as a Word package.
func (b *Builder) Docx() ([]byte, error) {
	header, footer, err := b.sectionElements()
	if err != nil {
		return nil, err
	}
	parts, err := renderDocx(b.els, header, footer, b.cfg)
	if err != nil {
		return nil, err
	}
	return buildArchive(parts, b.cfg.compression, b.cfg.limits)
}

// Odt renders the accumulated elements as an OpenDocument Text package.
// Header and footer sections, images, and page-number fields are not
// represented in the ODT output.
func (b *Builder) Odt() ([]byte, error) {
	if _, _, err := b.sectionElements(); err != nil {
		return nil, err
	}
	parts, err := renderOdt(b.els, b.cfg)
	if err != nil {
		return nil, err
	}
	return buildArchive(parts, b.cfg.compression, b.cfg.limits)
}
