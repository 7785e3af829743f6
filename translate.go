package docbuild

import "strings"

// elementsFromBlocks is a pure structural map from the block token tree to
// the format-neutral element model.
func elementsFromBlocks(blocks []blockToken) []element {
	var out []element
	for _, b := range blocks {
		switch t := b.(type) {
		case headingBlock:
			out = append(out, headingElement{level: t.level, text: inlinePlainText(t.content)})
		case paragraphBlock:
			out = append(out, richParagraphElement{runs: runsFromInline(t.content)})
		case fenceBlock:
			out = append(out, codeBlockElement{language: t.language, code: t.code})
		case quoteBlock:
			out = append(out, quoteElement{children: elementsFromBlocks(t.blocks)})
		case ruleBlock:
			out = append(out, ruleElement{})
		case listBlock:
			out = append(out, richListElement{group: listGroupFromBlock(t)})
		case tableBlock:
			out = append(out, richTableElement{table: tableFromBlock(t)})
		}
	}
	return out
}

func listGroupFromBlock(b listBlock) ListGroup {
	group := ListGroup{Ordered: b.ordered}
	for _, item := range b.items {
		li := ListItem{Runs: runsFromInline(item.content)}
		if item.nested != nil {
			nested := listGroupFromBlock(*item.nested)
			li.Nested = &nested
		}
		group.Items = append(group.Items, li)
	}
	return group
}

func tableFromBlock(b tableBlock) Table {
	t := Table{}
	for _, cell := range b.header {
		t.Header = append(t.Header, TableCell{Runs: runsFromInline(cell)})
	}
	for _, row := range b.rows {
		cells := make([]TableCell, 0, len(row))
		for _, cell := range row {
			cells = append(cells, TableCell{Runs: runsFromInline(cell)})
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// inheritedStyle accumulates additively down each branch of an inline tree.
type inheritedStyle struct {
	bold      bool
	italic    bool
	underline bool
	strike    bool
	color     string
	link      string
}

const linkColor = "0563C1"

// runsFromInline flattens an inline token tree to styled runs. A link token
// wraps all descendant runs with its target and default link styling (blue,
// underlined). Inline images contribute no runs; they are not representable
// in the run model.
func runsFromInline(tokens []inlineToken) []Run {
	var runs []Run
	flattenInline(mergeTextTokens(tokens), inheritedStyle{}, &runs)
	return runs
}

func flattenInline(tokens []inlineToken, st inheritedStyle, out *[]Run) {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case textToken:
			*out = append(*out, Run{
				Text:      t.text,
				Bold:      st.bold,
				Italic:    st.italic,
				Underline: st.underline,
				Strike:    st.strike,
				Color:     st.color,
				Link:      st.link,
			})
		case boldToken:
			next := st
			next.bold = true
			flattenInline(t.children, next, out)
		case italicToken:
			next := st
			next.italic = true
			flattenInline(t.children, next, out)
		case strikeToken:
			next := st
			next.strike = true
			flattenInline(t.children, next, out)
		case codeToken:
			*out = append(*out, Run{
				Text:      t.code,
				Bold:      st.bold,
				Italic:    st.italic,
				Underline: st.underline,
				Strike:    st.strike,
				Code:      true,
				Color:     st.color,
				Link:      st.link,
			})
		case linkToken:
			next := st
			next.underline = true
			if next.color == "" {
				next.color = linkColor
			}
			next.link = t.href
			flattenInline(t.children, next, out)
		case imageToken:
			// no run representation
		}
	}
}

// inlinePlainText flattens an inline tree to its text content, discarding
// formatting. Used for headings, which carry no rich runs. Image tokens
// contribute their alt text.
func inlinePlainText(tokens []inlineToken) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch t := tok.(type) {
		case textToken:
			sb.WriteString(t.text)
		case boldToken:
			sb.WriteString(inlinePlainText(t.children))
		case italicToken:
			sb.WriteString(inlinePlainText(t.children))
		case strikeToken:
			sb.WriteString(inlinePlainText(t.children))
		case codeToken:
			sb.WriteString(t.code)
		case linkToken:
			sb.WriteString(inlinePlainText(t.children))
		case imageToken:
			sb.WriteString(t.alt)
		}
	}
	return sb.String()
}
