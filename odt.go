package docbuild

import (
	"fmt"
	"strings"
)

const (
	odtMimeType = "application/vnd.oasis.opendocument.text"

	nsOdfOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsOdfText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsOdfStyle  = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsOdfFo     = "urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
	nsOdfTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
	nsOdfMeta   = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	nsXlink     = "http://www.w3.org/1999/xlink"
)

// headingPoints is the fixed ODT heading size table in points.
var headingPoints = map[int]int{1: 24, 2: 18, 3: 14, 4: 12, 5: 10, 6: 9}

// odtRenderer accumulates the automatic styles minted while rendering the
// body: one named style per distinct styled paragraph or run, numbered
// monotonically and written into a single block preceding the body.
type odtRenderer struct {
	styleXML   []string
	paraNames  map[string]string // properties -> P name
	textNames  map[string]string // properties -> T name
	quoteDepth int
	tableCount int
}

func newOdtRenderer() *odtRenderer {
	return &odtRenderer{
		paraNames: make(map[string]string),
		textNames: make(map[string]string),
	}
}

// renderOdt projects the element model onto the OpenDocument part set. The
// mimetype entry must stay first and stored so readers can sniff it at a
// fixed offset. Image and page-number elements have no ODT rendering and
// produce no output.
func renderOdt(els []element, cfg buildConfig) ([]archivePart, error) {
	r := newOdtRenderer()
	var body strings.Builder
	for _, el := range els {
		r.renderElement(&body, el)
	}

	var content strings.Builder
	content.WriteString(xmlDecl)
	content.WriteString(`<office:document-content xmlns:office="` + nsOdfOffice + `"` +
		` xmlns:text="` + nsOdfText + `" xmlns:style="` + nsOdfStyle + `"` +
		` xmlns:fo="` + nsOdfFo + `" xmlns:table="` + nsOdfTable + `"` +
		` xmlns:xlink="` + nsXlink + `" office:version="1.2">`)
	content.WriteString(`<office:automatic-styles>`)
	for _, s := range r.styleXML {
		content.WriteString(s)
	}
	content.WriteString(`</office:automatic-styles>`)
	content.WriteString(`<office:body><office:text>`)
	content.WriteString(body.String())
	content.WriteString(`</office:text></office:body></office:document-content>`)

	return []archivePart{
		{name: "mimetype", data: []byte(odtMimeType), rawOnly: true},
		{name: "META-INF/manifest.xml", data: []byte(odtManifestXML())},
		{name: "content.xml", data: []byte(content.String())},
		{name: "styles.xml", data: []byte(odtStylesXML())},
	}, nil
}

// paragraphStyle returns the automatic style name for the given paragraph
// properties, minting one on first use.
func (r *odtRenderer) paragraphStyle(props string) string {
	if name, ok := r.paraNames[props]; ok {
		return name
	}
	name := fmt.Sprintf("P%d", len(r.paraNames)+1)
	r.paraNames[props] = name
	r.styleXML = append(r.styleXML,
		`<style:style style:name="`+name+`" style:family="paragraph" style:parent-style-name="Standard">`+
			`<style:paragraph-properties `+props+`/></style:style>`)
	return name
}

func (r *odtRenderer) textStyle(props string) string {
	if name, ok := r.textNames[props]; ok {
		return name
	}
	name := fmt.Sprintf("T%d", len(r.textNames)+1)
	r.textNames[props] = name
	r.styleXML = append(r.styleXML,
		`<style:style style:name="`+name+`" style:family="text">`+
			`<style:text-properties `+props+`/></style:style>`)
	return name
}

func (r *odtRenderer) paragraphProps(align Alignment) string {
	var props []string
	if align != AlignLeft {
		props = append(props, `fo:text-align="`+odtAlignValue(align)+`"`)
	}
	if r.quoteDepth > 0 {
		props = append(props, fmt.Sprintf(`fo:margin-left="%.2fin"`, 0.5*float64(r.quoteDepth)))
	}
	return strings.Join(props, " ")
}

func odtAlignValue(a Alignment) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "end"
	case AlignJustify:
		return "justify"
	default:
		return "start"
	}
}

func (r *odtRenderer) openParagraph(sb *strings.Builder, align Alignment, extraProps string) {
	props := r.paragraphProps(align)
	if extraProps != "" {
		if props != "" {
			props += " "
		}
		props += extraProps
	}
	if props == "" {
		sb.WriteString(`<text:p>`)
		return
	}
	sb.WriteString(`<text:p text:style-name="` + r.paragraphStyle(props) + `">`)
}

func (r *odtRenderer) renderElement(sb *strings.Builder, el element) {
	switch t := el.(type) {
	case headingElement:
		sb.WriteString(fmt.Sprintf(`<text:h text:style-name="Heading_20_%d" text:outline-level="%d">`, t.level, t.level))
		sb.WriteString(xmlEscape(t.text))
		sb.WriteString(`</text:h>`)
	case paragraphElement:
		r.openParagraph(sb, AlignLeft, "")
		sb.WriteString(xmlEscape(t.text))
		sb.WriteString(`</text:p>`)
	case richParagraphElement:
		r.openParagraph(sb, t.align, "")
		r.writeRuns(sb, t.runs)
		sb.WriteString(`</text:p>`)
	case sizedTextElement:
		r.openParagraph(sb, AlignLeft, "")
		r.writeRuns(sb, []Run{{Text: t.text, Size: t.points}})
		sb.WriteString(`</text:p>`)
	case lineBreakElement:
		sb.WriteString(`<text:p/>`)
	case ruleElement:
		r.openParagraph(sb, AlignLeft, `fo:border-bottom="0.5pt solid #000000"`)
		sb.WriteString(`</text:p>`)
	case plainListElement:
		group := ListGroup{Ordered: t.ordered}
		for _, item := range t.items {
			group.Items = append(group.Items, ListItem{Runs: []Run{{Text: item}}})
		}
		r.writeList(sb, group)
	case richListElement:
		r.writeList(sb, t.group)
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
		r.writeTable(sb, table)
	case richTableElement:
		r.writeTable(sb, t.table)
	case hyperlinkElement:
		r.openParagraph(sb, AlignLeft, "")
		r.writeRuns(sb, []Run{{Text: t.text, Link: t.href}})
		sb.WriteString(`</text:p>`)
	case imageElement:
		// not supported in the ODT output
	case quoteElement:
		r.quoteDepth++
		for _, child := range t.children {
			r.renderElement(sb, child)
		}
		r.quoteDepth--
	case codeBlockElement:
		for _, line := range strings.Split(t.code, "\n") {
			r.openParagraph(sb, AlignLeft, "")
			r.writeRuns(sb, []Run{{Text: line, Code: true}})
			sb.WriteString(`</text:p>`)
		}
	case pageNumberElement:
		// not supported in the ODT output
	}
}

func (r *odtRenderer) writeRuns(sb *strings.Builder, runs []Run) {
	i := 0
	for i < len(runs) {
		if runs[i].Link == "" {
			r.writeRun(sb, runs[i])
			i++
			continue
		}
		href := runs[i].Link
		sb.WriteString(`<text:a xlink:type="simple" xlink:href="` + xmlEscape(href) + `">`)
		for i < len(runs) && runs[i].Link == href {
			r.writeRun(sb, runs[i])
			i++
		}
		sb.WriteString(`</text:a>`)
	}
}

func (r *odtRenderer) writeRun(sb *strings.Builder, run Run) {
	props := odtRunProps(run)
	if props == "" {
		sb.WriteString(xmlEscape(run.Text))
		return
	}
	sb.WriteString(`<text:span text:style-name="` + r.textStyle(props) + `">`)
	sb.WriteString(xmlEscape(run.Text))
	sb.WriteString(`</text:span>`)
}

func odtRunProps(run Run) string {
	var props []string
	if run.Bold {
		props = append(props, `fo:font-weight="bold"`)
	}
	if run.Italic {
		props = append(props, `fo:font-style="italic"`)
	}
	if run.Underline {
		props = append(props, `style:text-underline-style="solid" style:text-underline-width="auto"`)
	}
	if run.Strike {
		props = append(props, `style:text-line-through-style="solid"`)
	}
	font := run.Font
	if font == "" && run.Code {
		font = "Consolas"
	}
	if font != "" {
		props = append(props, `fo:font-family="`+xmlEscape(font)+`"`)
	}
	if run.Color != "" {
		props = append(props, `fo:color="#`+xmlEscape(run.Color)+`"`)
	}
	if run.Size > 0 {
		props = append(props, fmt.Sprintf(`fo:font-size="%gpt"`, run.Size))
	}
	if run.Code {
		props = append(props, `fo:background-color="#E7E6E6"`)
	}
	return strings.Join(props, " ")
}

func (r *odtRenderer) writeList(sb *strings.Builder, group ListGroup) {
	styleName := "ListBullet"
	if group.Ordered {
		styleName = "ListNumber"
	}
	sb.WriteString(`<text:list text:style-name="` + styleName + `">`)
	for _, item := range group.Items {
		sb.WriteString(`<text:list-item>`)
		r.openParagraph(sb, AlignLeft, "")
		r.writeRuns(sb, item.Runs)
		sb.WriteString(`</text:p>`)
		if item.Nested != nil {
			r.writeList(sb, *item.Nested)
		}
		sb.WriteString(`</text:list-item>`)
	}
	sb.WriteString(`</text:list>`)
}

func (r *odtRenderer) writeTable(sb *strings.Builder, t Table) {
	r.tableCount++
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	sb.WriteString(fmt.Sprintf(`<table:table table:name="Table%d">`, r.tableCount))
	if cols > 0 {
		sb.WriteString(fmt.Sprintf(`<table:table-column table:number-columns-repeated="%d"/>`, cols))
	}
	writeRow := func(cells []TableCell) {
		sb.WriteString(`<table:table-row>`)
		for _, cell := range cells {
			sb.WriteString(`<table:table-cell office:value-type="string">`)
			r.openParagraph(sb, AlignLeft, "")
			r.writeRuns(sb, cell.Runs)
			sb.WriteString(`</text:p></table:table-cell>`)
		}
		sb.WriteString(`</table:table-row>`)
	}
	if len(t.Header) > 0 {
		writeRow(t.Header)
	}
	for _, row := range t.Rows {
		writeRow(row)
	}
	sb.WriteString(`</table:table>`)
}

func odtManifestXML() string {
	return xmlDecl + `<manifest:manifest xmlns:manifest="` + nsOdfMeta + `" manifest:version="1.2">` +
		`<manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + odtMimeType + `"/>` +
		`<manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>` +
		`<manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>` +
		`</manifest:manifest>`
}

// odtStylesXML is the static stylesheet: structural heading styles with the
// fixed point-size table, plus the two list styles content.xml references.
func odtStylesXML() string {
	var sb strings.Builder
	sb.WriteString(xmlDecl)
	sb.WriteString(`<office:document-styles xmlns:office="` + nsOdfOffice + `"` +
		` xmlns:style="` + nsOdfStyle + `" xmlns:fo="` + nsOdfFo + `"` +
		` xmlns:text="` + nsOdfText + `" office:version="1.2">`)
	sb.WriteString(`<office:styles>`)
	sb.WriteString(`<style:style style:name="Standard" style:family="paragraph" style:class="text"/>`)
	for level := 1; level <= 6; level++ {
		sb.WriteString(fmt.Sprintf(
			`<style:style style:name="Heading_20_%d" style:display-name="Heading %d"`+
				` style:family="paragraph" style:parent-style-name="Standard" style:class="text">`+
				`<style:text-properties fo:font-size="%dpt" fo:font-weight="bold"/></style:style>`,
			level, level, headingPoints[level]))
	}
	sb.WriteString(`<text:list-style style:name="ListBullet">`)
	for lvl := 1; lvl <= 9; lvl++ {
		sb.WriteString(fmt.Sprintf(
			`<text:list-level-style-bullet text:level="%d" text:bullet-char="&#8226;"/>`, lvl))
	}
	sb.WriteString(`</text:list-style>`)
	sb.WriteString(`<text:list-style style:name="ListNumber">`)
	for lvl := 1; lvl <= 9; lvl++ {
		sb.WriteString(fmt.Sprintf(
			`<text:list-level-style-number text:level="%d" style:num-format="1" style:num-suffix="."/>`, lvl))
	}
	sb.WriteString(`</text:list-style>`)
	sb.WriteString(`</office:styles>`)
	sb.WriteString(`</office:document-styles>`)
	return sb.String()
}
