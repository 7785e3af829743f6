package docbuild

import (
	"fmt"
	"strings"
)

const (
	xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsWordMain      = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDrawingWP     = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	nsDrawingMain   = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsDrawingPic    = "http://schemas.openxmlformats.org/drawingml/2006/picture"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeDocument  = nsRelationships + "/officeDocument"
	relTypeStyles    = nsRelationships + "/styles"
	relTypeNumbering = nsRelationships + "/numbering"
	relTypeHeader    = nsRelationships + "/header"
	relTypeFooter    = nsRelationships + "/footer"
	relTypeHyperlink = nsRelationships + "/hyperlink"
	relTypeImage     = nsRelationships + "/image"
)

// emuPerInch converts display inches to the EMU unit the drawing schema
// expects.
const emuPerInch = 914400

// headingHalfPoints is the fixed heading size table in half-points.
var headingHalfPoints = map[int]int{1: 48, 2: 36, 3: 28, 4: 24, 5: 20, 6: 18}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }

// docxState is the per-build accumulator shared by all document parts: the
// global draw-id counter and the media files in first-seen order. One value
// per build; never package-level.
type docxState struct {
	lim    Limits
	drawID int
	media  []mediaFile
}

type mediaFile struct {
	name string // archive path, e.g. word/media/image1.png
	data []byte
	kind imageKind
}

func (s *docxState) addMedia(data []byte, kind imageKind) string {
	name := fmt.Sprintf("word/media/image%d.%s", len(s.media)+1, kind.extension())
	s.media = append(s.media, mediaFile{name: name, data: data, kind: kind})
	return name
}

func (s *docxState) nextDrawID() int {
	s.drawID++
	return s.drawID
}

type relEntry struct {
	id      string
	relType string
	target  string
	mode    string // "External" or empty
}

// docxPart renders one document part (body, header, or footer). Relationship
// ids are scoped to the part and restart at rId1.
type docxPart struct {
	state      *docxState
	rels       []relEntry
	quoteDepth int
}

func (p *docxPart) addRel(relType, target, mode string) string {
	id := fmt.Sprintf("rId%d", len(p.rels)+1)
	p.rels = append(p.rels, relEntry{id: id, relType: relType, target: target, mode: mode})
	return id
}

// renderDocx projects the element model onto the Word package part set.
// Optional parts (numbering, header, footer, per-part rels, media) are
// omitted entirely when unused.
func renderDocx(main, header, footer []element, cfg buildConfig) ([]archivePart, error) {
	state := &docxState{lim: cfg.limits}

	body := &docxPart{state: state}
	bodyXML, err := body.renderElements(main)
	if err != nil {
		return nil, err
	}

	var headerPart, footerPart *docxPart
	var headerXML, footerXML string
	if len(header) > 0 {
		headerPart = &docxPart{state: state}
		headerXML, err = headerPart.renderElements(header)
		if err != nil {
			return nil, err
		}
	}
	if len(footer) > 0 {
		footerPart = &docxPart{state: state}
		footerXML, err = footerPart.renderElements(footer)
		if err != nil {
			return nil, err
		}
	}

	hasLists := hasListElement(main)

	// Package-level relationships of the document part come after the
	// body's own hyperlink/image ids.
	body.addRel(relTypeStyles, "styles.xml", "")
	if hasLists {
		body.addRel(relTypeNumbering, "numbering.xml", "")
	}
	var sectPr strings.Builder
	sectPr.WriteString(`<w:sectPr>`)
	if headerPart != nil {
		id := body.addRel(relTypeHeader, "header1.xml", "")
		sectPr.WriteString(`<w:headerReference w:type="default" r:id="` + id + `"/>`)
	}
	if footerPart != nil {
		id := body.addRel(relTypeFooter, "footer1.xml", "")
		sectPr.WriteString(`<w:footerReference w:type="default" r:id="` + id + `"/>`)
	}
	sectPr.WriteString(`<w:pgSz w:w="12240" w:h="15840"/>`)
	sectPr.WriteString(`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>`)
	sectPr.WriteString(`</w:sectPr>`)

	document := xmlDecl +
		`<w:document xmlns:w="` + nsWordMain + `" xmlns:r="` + nsRelationships + `" xmlns:wp="` + nsDrawingWP + `">` +
		`<w:body>` + bodyXML + sectPr.String() + `</w:body></w:document>`

	parts := []archivePart{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML(state, hasLists, headerPart != nil, footerPart != nil))},
		{name: "_rels/.rels", data: []byte(packageRelsXML())},
		{name: "word/document.xml", data: []byte(document)},
		{name: "word/styles.xml", data: []byte(stylesXML())},
	}
	if hasLists {
		parts = append(parts, archivePart{name: "word/numbering.xml", data: []byte(numberingXML())})
	}
	if headerPart != nil {
		hdr := xmlDecl + `<w:hdr xmlns:w="` + nsWordMain + `" xmlns:r="` + nsRelationships + `" xmlns:wp="` + nsDrawingWP + `">` + headerXML + `</w:hdr>`
		parts = append(parts, archivePart{name: "word/header1.xml", data: []byte(hdr)})
	}
	if footerPart != nil {
		ftr := xmlDecl + `<w:ftr xmlns:w="` + nsWordMain + `" xmlns:r="` + nsRelationships + `" xmlns:wp="` + nsDrawingWP + `">` + footerXML + `</w:ftr>`
		parts = append(parts, archivePart{name: "word/footer1.xml", data: []byte(ftr)})
	}
	parts = append(parts, archivePart{name: "word/_rels/document.xml.rels", data: []byte(relsXML(body.rels))})
	if headerPart != nil && len(headerPart.rels) > 0 {
		parts = append(parts, archivePart{name: "word/_rels/header1.xml.rels", data: []byte(relsXML(headerPart.rels))})
	}
	if footerPart != nil && len(footerPart.rels) > 0 {
		parts = append(parts, archivePart{name: "word/_rels/footer1.xml.rels", data: []byte(relsXML(footerPart.rels))})
	}
	for _, m := range state.media {
		parts = append(parts, archivePart{name: m.name, data: m.data})
	}
	return parts, nil
}

func hasListElement(els []element) bool {
	for _, el := range els {
		switch t := el.(type) {
		case plainListElement, richListElement:
			return true
		case quoteElement:
			if hasListElement(t.children) {
				return true
			}
		}
	}
	return false
}

func (p *docxPart) renderElements(els []element) (string, error) {
	var sb strings.Builder
	for _, el := range els {
		if err := p.renderElement(&sb, el); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func (p *docxPart) renderElement(sb *strings.Builder, el element) error {
	switch t := el.(type) {
	case headingElement:
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading` + fmt.Sprint(t.level) + `"/>`)
		p.writeIndentBody(sb)
		sb.WriteString(`</w:pPr>` + textRunXML(t.text) + `</w:p>`)
	case paragraphElement:
		sb.WriteString(`<w:p>`)
		p.writeParaProps(sb, AlignLeft)
		sb.WriteString(textRunXML(t.text) + `</w:p>`)
	case richParagraphElement:
		sb.WriteString(`<w:p>`)
		p.writeParaProps(sb, t.align)
		p.writeRuns(sb, t.runs)
		sb.WriteString(`</w:p>`)
	case sizedTextElement:
		sb.WriteString(`<w:p>`)
		p.writeParaProps(sb, AlignLeft)
		p.writeRuns(sb, []Run{{Text: t.text, Size: t.points}})
		sb.WriteString(`</w:p>`)
	case lineBreakElement:
		sb.WriteString(`<w:p/>`)
	case ruleElement:
		sb.WriteString(`<w:p><w:pPr><w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr></w:pPr></w:p>`)
	case plainListElement:
		group := ListGroup{Ordered: t.ordered}
		for _, item := range t.items {
			group.Items = append(group.Items, ListItem{Runs: []Run{{Text: item}}})
		}
		p.writeList(sb, group, 0)
	case richListElement:
		p.writeList(sb, t.group, 0)
	case plainTableElement:
		table := Table{ColumnWidths: t.widths}
		for _, h := range t.header {
			table.Header = append(table.Header, TableCell{Runs: []Run{{Text: h, Bold: true}}})
		}
		for _, row := range t.rows {
			cells := make([]TableCell, 0, len(row))
			for _, c := range row {
				cells = append(cells, TableCell{Runs: []Run{{Text: c}}})
			}
			table.Rows = append(table.Rows, cells)
		}
		p.writeTable(sb, table)
	case richTableElement:
		p.writeTable(sb, t.table)
	case hyperlinkElement:
		sb.WriteString(`<w:p>`)
		p.writeParaProps(sb, AlignLeft)
		p.writeRuns(sb, []Run{{Text: t.text, Link: t.href}})
		sb.WriteString(`</w:p>`)
	case imageElement:
		return p.writeImage(sb, t)
	case quoteElement:
		p.quoteDepth++
		for _, child := range t.children {
			if err := p.renderElement(sb, child); err != nil {
				p.quoteDepth--
				return err
			}
		}
		p.quoteDepth--
	case codeBlockElement:
		for _, line := range strings.Split(t.code, "\n") {
			sb.WriteString(`<w:p>`)
			p.writeParaProps(sb, AlignLeft)
			p.writeRuns(sb, []Run{{Text: line, Code: true}})
			sb.WriteString(`</w:p>`)
		}
	case pageNumberElement:
		sb.WriteString(`<w:p>`)
		p.writeParaProps(sb, AlignLeft)
		sb.WriteString(`<w:r><w:fldChar w:fldCharType="begin"/></w:r>`)
		sb.WriteString(`<w:r><w:instrText xml:space="preserve"> PAGE </w:instrText></w:r>`)
		sb.WriteString(`<w:r><w:fldChar w:fldCharType="separate"/></w:r>`)
		// Static placeholder; viewers that recalculate fields replace it.
		sb.WriteString(`<w:r><w:t>1</w:t></w:r>`)
		sb.WriteString(`<w:r><w:fldChar w:fldCharType="end"/></w:r>`)
		sb.WriteString(`</w:p>`)
	}
	return nil
}

func alignValue(a Alignment) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "both"
	default:
		return "left"
	}
}

func (p *docxPart) writeParaProps(sb *strings.Builder, align Alignment) {
	if align == AlignLeft && p.quoteDepth == 0 {
		return
	}
	sb.WriteString(`<w:pPr>`)
	p.writeIndentBody(sb)
	if align != AlignLeft {
		sb.WriteString(`<w:jc w:val="` + alignValue(align) + `"/>`)
	}
	sb.WriteString(`</w:pPr>`)
}

func (p *docxPart) writeIndentBody(sb *strings.Builder) {
	if p.quoteDepth > 0 {
		sb.WriteString(fmt.Sprintf(`<w:ind w:left="%d"/>`, 720*p.quoteDepth))
	}
}

func textRunXML(text string) string {
	return `<w:r><w:t xml:space="preserve">` + xmlEscape(text) + `</w:t></w:r>`
}

// writeRuns emits runs, wrapping maximal groups of consecutive runs sharing
// one hyperlink target in a single w:hyperlink with one relationship id.
func (p *docxPart) writeRuns(sb *strings.Builder, runs []Run) {
	i := 0
	for i < len(runs) {
		if runs[i].Link == "" {
			sb.WriteString(runXML(runs[i]))
			i++
			continue
		}
		href := runs[i].Link
		id := p.addRel(relTypeHyperlink, href, "External")
		sb.WriteString(`<w:hyperlink r:id="` + id + `" w:history="1">`)
		for i < len(runs) && runs[i].Link == href {
			sb.WriteString(runXML(runs[i]))
			i++
		}
		sb.WriteString(`</w:hyperlink>`)
	}
}

func runXML(r Run) string {
	var props strings.Builder
	if r.Bold {
		props.WriteString(`<w:b/>`)
	}
	if r.Italic {
		props.WriteString(`<w:i/>`)
	}
	if r.Strike {
		props.WriteString(`<w:strike/>`)
	}
	if r.Underline {
		props.WriteString(`<w:u w:val="single"/>`)
	}
	font := r.Font
	if font == "" && r.Code {
		font = "Consolas"
	}
	if font != "" {
		esc := xmlEscape(font)
		props.WriteString(`<w:rFonts w:ascii="` + esc + `" w:hAnsi="` + esc + `"/>`)
	}
	if r.Color != "" {
		props.WriteString(`<w:color w:val="` + xmlEscape(r.Color) + `"/>`)
	}
	if r.Size > 0 {
		props.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/>`, int(r.Size*2)))
	}
	if r.Code {
		props.WriteString(`<w:shd w:val="clear" w:color="auto" w:fill="E7E6E6"/>`)
	}
	var sb strings.Builder
	sb.WriteString(`<w:r>`)
	if props.Len() > 0 {
		sb.WriteString(`<w:rPr>` + props.String() + `</w:rPr>`)
	}
	sb.WriteString(`<w:t xml:space="preserve">` + xmlEscape(r.Text) + `</w:t></w:r>`)
	return sb.String()
}

// writeList emits one paragraph per item at the given indent level, then
// recurses into each item's nested sub-list one level deeper. numId 1 is
// the shared bullet definition, numId 2 the shared decimal one.
func (p *docxPart) writeList(sb *strings.Builder, group ListGroup, level int) {
	numID := 1
	if group.Ordered {
		numID = 2
	}
	for _, item := range group.Items {
		sb.WriteString(`<w:p><w:pPr><w:numPr>`)
		sb.WriteString(fmt.Sprintf(`<w:ilvl w:val="%d"/>`, level))
		sb.WriteString(fmt.Sprintf(`<w:numId w:val="%d"/>`, numID))
		sb.WriteString(`</w:numPr>`)
		p.writeIndentBody(sb)
		sb.WriteString(`</w:pPr>`)
		p.writeRuns(sb, item.Runs)
		sb.WriteString(`</w:p>`)
		if item.Nested != nil {
			p.writeList(sb, *item.Nested, level+1)
		}
	}
}

func (p *docxPart) writeTable(sb *strings.Builder, t Table) {
	sb.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/>`)
	sb.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	sb.WriteString(`<w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`</w:tblBorders></w:tblPr>`)
	if len(t.ColumnWidths) > 0 {
		sb.WriteString(`<w:tblGrid>`)
		for _, w := range t.ColumnWidths {
			sb.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
		}
		sb.WriteString(`</w:tblGrid>`)
	}
	writeRow := func(cells []TableCell) {
		sb.WriteString(`<w:tr>`)
		for i, cell := range cells {
			sb.WriteString(`<w:tc><w:tcPr>`)
			if i < len(t.ColumnWidths) {
				sb.WriteString(fmt.Sprintf(`<w:tcW w:w="%d" w:type="dxa"/>`, t.ColumnWidths[i]))
			}
			sb.WriteString(`</w:tcPr><w:p>`)
			p.writeRuns(sb, cell.Runs)
			sb.WriteString(`</w:p></w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	if len(t.Header) > 0 {
		writeRow(t.Header)
	}
	for _, row := range t.Rows {
		writeRow(row)
	}
	sb.WriteString(`</w:tbl>`)
}

func (p *docxPart) writeImage(sb *strings.Builder, img imageElement) error {
	if uint64(len(img.data)) > p.state.lim.MaxImageBytes {
		return fmt.Errorf("%w: image is %d bytes", ErrLimitExceeded, len(img.data))
	}
	name := p.state.addMedia(img.data, img.kind)
	relID := p.addRel(relTypeImage, strings.TrimPrefix(name, "word/"), "")
	drawID := p.state.nextDrawID()
	cx := int64(img.widthIn * emuPerInch)
	cy := int64(img.heightIn * emuPerInch)

	sb.WriteString(`<w:p>`)
	p.writeParaProps(sb, AlignLeft)
	sb.WriteString(`<w:r><w:drawing><wp:inline distT="0" distB="0" distL="0" distR="0">`)
	sb.WriteString(fmt.Sprintf(`<wp:extent cx="%d" cy="%d"/>`, cx, cy))
	sb.WriteString(fmt.Sprintf(`<wp:docPr id="%d" name="Picture %d"/>`, drawID, drawID))
	sb.WriteString(`<a:graphic xmlns:a="` + nsDrawingMain + `">`)
	sb.WriteString(`<a:graphicData uri="` + nsDrawingPic + `">`)
	sb.WriteString(`<pic:pic xmlns:pic="` + nsDrawingPic + `">`)
	sb.WriteString(fmt.Sprintf(`<pic:nvPicPr><pic:cNvPr id="%d" name="Picture %d"/><pic:cNvPicPr/></pic:nvPicPr>`, drawID, drawID))
	sb.WriteString(`<pic:blipFill><a:blip r:embed="` + relID + `"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`)
	sb.WriteString(`<pic:spPr><a:xfrm><a:off x="0" y="0"/>`)
	sb.WriteString(fmt.Sprintf(`<a:ext cx="%d" cy="%d"/>`, cx, cy))
	sb.WriteString(`</a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	sb.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`)
	return nil
}

func contentTypesXML(state *docxState, hasLists, hasHeader, hasFooter bool) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<Types xmlns="` + nsContentTypes + `">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	seen := map[string]bool{}
	for _, m := range state.media {
		ext := m.kind.extension()
		if !seen[ext] {
			seen[ext] = true
			sb.WriteString(`<Default Extension="` + ext + `" ContentType="` + m.kind.mimeType() + `"/>`)
		}
	}
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	if hasLists {
		sb.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	}
	if hasHeader {
		sb.WriteString(`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>`)
	}
	if hasFooter {
		sb.WriteString(`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>`)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

func packageRelsXML() string {
	return xmlDecl + `<Relationships xmlns="` + nsPackageRels + `">` +
		`<Relationship Id="rId1" Type="` + relTypeDocument + `" Target="word/document.xml"/>` +
		`</Relationships>`
}

func relsXML(rels []relEntry) string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<Relationships xmlns="` + nsPackageRels + `">`)
	for _, r := range rels {
		sb.WriteString(`<Relationship Id="` + r.id + `" Type="` + r.relType + `" Target="` + xmlEscape(r.target) + `"`)
		if r.mode != "" {
			sb.WriteString(` TargetMode="` + r.mode + `"`)
		}
		sb.WriteString(`/>`)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

func stylesXML() string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<w:styles xmlns:w="` + nsWordMain + `">`)
	sb.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/><w:qFormat/></w:style>`)
	for level := 1; level <= 6; level++ {
		sb.WriteString(fmt.Sprintf(
			`<w:style w:type="paragraph" w:styleId="Heading%d">`+
				`<w:name w:val="heading %d"/><w:basedOn w:val="Normal"/><w:qFormat/>`+
				`<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="%d"/></w:pPr>`+
				`<w:rPr><w:b/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`+
				`</w:style>`,
			level, level, level-1, headingHalfPoints[level], headingHalfPoints[level]))
	}
	sb.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/></w:style>`)
	sb.WriteString(`</w:styles>`)
	return sb.String()
}

// numberingXML declares the two fixed abstract definitions every list in
// the document references: 0 for bullets, 1 for decimals.
func numberingXML() string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<w:numbering xmlns:w="` + nsWordMain + `">`)
	sb.WriteString(`<w:abstractNum w:abstractNumId="0">`)
	for lvl := 0; lvl < 9; lvl++ {
		sb.WriteString(fmt.Sprintf(
			`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="bullet"/>`+
				`<w:lvlText w:val="&#8226;"/><w:lvlJc w:val="left"/>`+
				`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr>`+
				`<w:rPr><w:rFonts w:ascii="Symbol" w:hAnsi="Symbol" w:hint="default"/></w:rPr></w:lvl>`,
			lvl, 720*(lvl+1)))
	}
	sb.WriteString(`</w:abstractNum>`)
	sb.WriteString(`<w:abstractNum w:abstractNumId="1">`)
	for lvl := 0; lvl < 9; lvl++ {
		sb.WriteString(fmt.Sprintf(
			`<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/>`+
				`<w:lvlText w:val="%%%d."/><w:lvlJc w:val="left"/>`+
				`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			lvl, lvl+1, 720*(lvl+1)))
	}
	sb.WriteString(`</w:abstractNum>`)
	sb.WriteString(`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>`)
	sb.WriteString(`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>`)
	sb.WriteString(`</w:numbering>`)
	return sb.String()
}
