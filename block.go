package docbuild

import (
	"regexp"
	"strings"
)

var (
	headingRe   = regexp.MustCompile(`^#{1,}`)
	ruleRe      = regexp.MustCompile(`^(-{3,}|\*{3,}|_{3,})$`)
	tableSepRe  = regexp.MustCompile(`^\|[-:| ]+\|$`)
	orderedRe   = regexp.MustCompile(`^\d+\. `)
	unorderedRe = regexp.MustCompile(`^[-*] `)
)

// blockParser walks the input lines with a forward-only cursor, dispatching
// each line to the first matching construct. Inline spans are delegated to
// the shared inline grammar.
type blockParser struct {
	lines  []string
	pos    int
	inline *inlineGrammar
	limits Limits
}

// parseBlocks turns markdown text into a block token sequence. CRLF line
// endings are normalized to LF first. Parsing is total.
func parseBlocks(text string, lim Limits) []blockToken {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	p := &blockParser{
		lines:  strings.Split(text, "\n"),
		inline: newInlineGrammar(lim.MaxInlineIterations),
		limits: lim,
	}
	return p.parseAll(0)
}

func (p *blockParser) parseAll(depth int) []blockToken {
	var blocks []blockToken
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			p.pos++
		case strings.HasPrefix(line, "```"):
			blocks = append(blocks, p.parseFence())
		case isHeadingLine(line):
			blocks = append(blocks, p.parseHeading())
		case ruleRe.MatchString(line):
			blocks = append(blocks, ruleBlock{})
			p.pos++
		case strings.HasPrefix(line, ">"):
			blocks = append(blocks, p.parseQuote(depth))
		case strings.HasPrefix(trimmed, "|"):
			blocks = append(blocks, p.parseTable())
		case matchListMarker(line) != nil:
			m := matchListMarker(line)
			list := p.parseList(m.indent, m.ordered, depth)
			blocks = append(blocks, list)
		default:
			blocks = append(blocks, paragraphBlock{content: p.inline.parse(line)})
			p.pos++
		}
	}
	return blocks
}

func isHeadingLine(line string) bool {
	marks, rest, ok := regexPrefix(headingRe)(line)
	return ok && marks != "" && strings.HasPrefix(rest, " ")
}

// parseHeading consumes one "# ..." line. More than six markers clamp to
// level 6.
func (p *blockParser) parseHeading() blockToken {
	line := p.lines[p.pos]
	p.pos++
	marks, rest, _ := regexPrefix(headingRe)(line)
	level := len(marks)
	if level > 6 {
		level = 6
	}
	text := strings.TrimPrefix(rest, " ")
	return headingBlock{level: level, content: p.inline.parse(text)}
}

// parseFence consumes an opening ``` line, verbatim code lines, and the
// closing fence. A missing close consumes through end of input.
func (p *blockParser) parseFence() blockToken {
	language := strings.TrimSpace(strings.TrimPrefix(p.lines[p.pos], "```"))
	p.pos++
	var code []string
	for p.pos < len(p.lines) {
		if strings.TrimSpace(p.lines[p.pos]) == "```" {
			p.pos++
			break
		}
		code = append(code, p.lines[p.pos])
		p.pos++
	}
	return fenceBlock{language: language, code: strings.Join(code, "\n")}
}

// parseQuote strips the > prefix from consecutive quoted lines and parses
// the result as a sub-document. Recursion is bounded by MaxNestingDepth;
// past the bound the stripped lines degrade to plain paragraphs.
func (p *blockParser) parseQuote(depth int) blockToken {
	var inner []string
	for p.pos < len(p.lines) && strings.HasPrefix(p.lines[p.pos], ">") {
		stripped := strings.TrimPrefix(p.lines[p.pos], ">")
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
		p.pos++
	}
	if depth+1 >= p.limits.MaxNestingDepth {
		var blocks []blockToken
		for _, line := range inner {
			if strings.TrimSpace(line) != "" {
				blocks = append(blocks, paragraphBlock{content: p.inline.parse(line)})
			}
		}
		return quoteBlock{blocks: blocks}
	}
	sub := &blockParser{lines: inner, inline: p.inline, limits: p.limits}
	return quoteBlock{blocks: sub.parseAll(depth + 1)}
}

// parseTable consumes a header row, an optional separator row (discarded),
// and consecutive body rows.
func (p *blockParser) parseTable() blockToken {
	header := p.splitRow(p.lines[p.pos])
	p.pos++
	if p.pos < len(p.lines) && tableSepRe.MatchString(strings.TrimSpace(p.lines[p.pos])) {
		p.pos++
	}
	var rows [][][]inlineToken
	for p.pos < len(p.lines) {
		trimmed := strings.TrimSpace(p.lines[p.pos])
		if !strings.HasPrefix(trimmed, "|") || tableSepRe.MatchString(trimmed) {
			break
		}
		rows = append(rows, p.splitRow(p.lines[p.pos]))
		p.pos++
	}
	return tableBlock{header: header, rows: rows}
}

func (p *blockParser) splitRow(line string) [][]inlineToken {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([][]inlineToken, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, p.inline.parse(strings.TrimSpace(part)))
	}
	return cells
}

type listMarker struct {
	indent  int // marker column
	ordered bool
	text    string // content after the marker
}

func matchListMarker(line string) *listMarker {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	rest := line[indent:]
	if _, after, ok := regexPrefix(unorderedRe)(rest); ok {
		return &listMarker{indent: indent, ordered: false, text: after}
	}
	if _, after, ok := regexPrefix(orderedRe)(rest); ok {
		return &listMarker{indent: indent, ordered: true, text: after}
	}
	return nil
}

// parseList collects sibling items at one marker column. A more-indented
// marker line starts the preceding item's nested sub-list; a more-indented
// non-marker line is lazy continuation and is skipped without contributing
// content; a lower indentation ends this level.
func (p *blockParser) parseList(indent int, ordered bool, depth int) listBlock {
	list := listBlock{ordered: ordered}
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if strings.TrimSpace(line) == "" {
			break
		}
		m := matchListMarker(line)
		if m == nil || m.indent < indent || (m.indent == indent && m.ordered != ordered) {
			break
		}
		if m.indent > indent {
			break
		}
		item := listItem{content: p.inline.parse(m.text)}
		p.pos++
		for p.pos < len(p.lines) {
			next := p.lines[p.pos]
			if strings.TrimSpace(next) == "" {
				break
			}
			nextIndent := len(next) - len(strings.TrimLeft(next, " "))
			if nextIndent <= indent {
				break
			}
			nm := matchListMarker(next)
			if nm != nil && depth+1 < p.limits.MaxNestingDepth {
				nested := p.parseList(nm.indent, nm.ordered, depth+1)
				item.nested = &nested
				continue
			}
			// Lazy continuation: consumed, no new block.
			p.pos++
		}
		list.items = append(list.items, item)
	}
	return list
}
