package docbuild

// Alignment selects paragraph alignment. AlignJustify maps to "both" in the
// Word schema.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Run is a maximal span of text sharing one style set, the atomic unit both
// output formats render text in. A zero Size inherits the surrounding size;
// Color is six hex digits without a leading #; a non-empty Link wraps the
// run in a hyperlink to that target.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Code      bool
	Color     string
	Font      string
	Size      float64 // points
	Link      string
}

// ListGroup is a rich list: an ordered flag plus its items. Each item may
// exclusively own one nested sub-group.
type ListGroup struct {
	Ordered bool
	Items   []ListItem
}

type ListItem struct {
	Runs   []Run
	Nested *ListGroup
}

// Table is a rich table. The first Header row is optional; ColumnWidths, if
// set, gives per-column widths in twentieths of a point and is emitted
// uninterpreted.
type Table struct {
	ColumnWidths []int
	Header       []TableCell
	Rows         [][]TableCell
}

type TableCell struct {
	Runs []Run
}

// element is the format-neutral intermediate representation consumed by the
// renderers. Both the markdown pipeline and the fluent builder populate it.
type element interface{ isElement() }

type headingElement struct {
	level int
	text  string
}

type paragraphElement struct{ text string }

type richParagraphElement struct {
	runs  []Run
	align Alignment
}

type sizedTextElement struct {
	text   string
	points float64
}

type lineBreakElement struct{}

type ruleElement struct{}

type plainListElement struct {
	ordered bool
	items   []string
}

type richListElement struct{ group ListGroup }

type plainTableElement struct {
	header []string
	rows   [][]string
	widths []int
}

type richTableElement struct{ table Table }

type hyperlinkElement struct {
	text string
	href string
}

type imageElement struct {
	data     []byte
	kind     imageKind
	widthIn  float64 // display width in inches
	heightIn float64
}

type quoteElement struct{ children []element }

type codeBlockElement struct {
	language string
	code     string
}

type pageNumberElement struct{}

func (headingElement) isElement()       {}
func (paragraphElement) isElement()     {}
func (richParagraphElement) isElement() {}
func (sizedTextElement) isElement()     {}
func (lineBreakElement) isElement()     {}
func (ruleElement) isElement()          {}
func (plainListElement) isElement()     {}
func (richListElement) isElement()      {}
func (plainTableElement) isElement()    {}
func (richTableElement) isElement()     {}
func (hyperlinkElement) isElement()     {}
func (imageElement) isElement()         {}
func (quoteElement) isElement()         {}
func (codeBlockElement) isElement()     {}
func (pageNumberElement) isElement()    {}
