package docbuild

// Inline tokens form the tree produced by the inline parser. image and code
// are leaves; the other container variants hold ordered child sequences.
type inlineToken interface{ isInline() }

type textToken struct{ text string }

type boldToken struct{ children []inlineToken }

type italicToken struct{ children []inlineToken }

type strikeToken struct{ children []inlineToken }

type codeToken struct{ code string }

type linkToken struct {
	children []inlineToken
	href     string
}

type imageToken struct{ alt, src string }

func (textToken) isInline()   {}
func (boldToken) isInline()   {}
func (italicToken) isInline() {}
func (strikeToken) isInline() {}
func (codeToken) isInline()   {}
func (linkToken) isInline()   {}
func (imageToken) isInline()  {}

// mergeTextTokens collapses adjacent text tokens so that run conversion
// never splits a uniform span into multiple runs.
func mergeTextTokens(tokens []inlineToken) []inlineToken {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]inlineToken, 0, len(tokens))
	for _, tok := range tokens {
		if t, ok := tok.(textToken); ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(textToken); ok {
				out[len(out)-1] = textToken{text: prev.text + t.text}
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// Block tokens are the structural units produced by the block parser.
type blockToken interface{ isBlock() }

type headingBlock struct {
	level   int // 1-6
	content []inlineToken
}

type paragraphBlock struct{ content []inlineToken }

type fenceBlock struct {
	language string
	code     string
}

type quoteBlock struct{ blocks []blockToken }

type ruleBlock struct{}

type listBlock struct {
	ordered bool
	items   []listItem
}

// listItem owns its nested sub-list exclusively.
type listItem struct {
	content []inlineToken
	nested  *listBlock
}

type tableBlock struct {
	header [][]inlineToken
	rows   [][][]inlineToken
}

func (headingBlock) isBlock()   {}
func (paragraphBlock) isBlock() {}
func (fenceBlock) isBlock()     {}
func (quoteBlock) isBlock()     {}
func (ruleBlock) isBlock()      {}
func (listBlock) isBlock()      {}
func (tableBlock) isBlock()     {}
