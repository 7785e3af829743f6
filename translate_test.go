package docbuild

import (
	"reflect"
	"testing"
)

func TestRunsFromInline_StyleInheritance(t *testing.T) {
	tokens := parseInlineForTest("**a *b* `c`**")
	runs := runsFromInline(tokens)
	want := []Run{
		{Text: "a ", Bold: true},
		{Text: "b", Bold: true, Italic: true},
		{Text: " ", Bold: true},
		{Text: "c", Bold: true, Code: true},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("runs = %#v", runs)
	}
}

func TestRunsFromInline_MergedAdjacentText(t *testing.T) {
	// "**a**b" must yield exactly two runs: {bold,"a"} and {plain,"b"}.
	runs := runsFromInline(parseInlineForTest("**a**b"))
	want := []Run{
		{Text: "a", Bold: true},
		{Text: "b"},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("runs = %#v", runs)
	}
}

func TestRunsFromInline_LinkWrapsDescendants(t *testing.T) {
	runs := runsFromInline(parseInlineForTest("[plain **bold**](https://example.com)"))
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}
	for _, r := range runs {
		if r.Link != "https://example.com" {
			t.Fatalf("run %q missing link", r.Text)
		}
		if !r.Underline || r.Color != linkColor {
			t.Fatalf("run %q missing default link styling: %#v", r.Text, r)
		}
	}
	if !runs[1].Bold {
		t.Fatal("nested bold lost inside link")
	}
}

func TestRunsFromInline_InlineImageContributesNoRuns(t *testing.T) {
	runs := runsFromInline(parseInlineForTest("before ![alt](x.png) after"))
	if len(runs) != 2 {
		t.Fatalf("got %d runs", len(runs))
	}
	if runs[0].Text != "before " || runs[1].Text != " after" {
		t.Fatalf("runs = %#v", runs)
	}
}

func TestElementsFromBlocks_HeadingFlattensFormatting(t *testing.T) {
	els := elementsFromBlocks(parseBlocksForTest("# A **B** ![alt](x) [C](u)"))
	h := els[0].(headingElement)
	if h.text != "A B alt C" {
		t.Fatalf("heading text = %q", h.text)
	}
}

func TestElementsFromBlocks_Structural(t *testing.T) {
	md := "# T\n\npara\n\n```go\ncode\n```\n\n---\n\n> quoted\n\n- a\n- b\n\n| H |\n|---|\n| r |"
	els := elementsFromBlocks(parseBlocksForTest(md))
	wantTypes := []string{
		"docbuild.headingElement",
		"docbuild.richParagraphElement",
		"docbuild.codeBlockElement",
		"docbuild.ruleElement",
		"docbuild.quoteElement",
		"docbuild.richListElement",
		"docbuild.richTableElement",
	}
	if len(els) != len(wantTypes) {
		t.Fatalf("got %d elements", len(els))
	}
	for i, el := range els {
		if got := reflect.TypeOf(el).String(); got != wantTypes[i] {
			t.Fatalf("element %d: got %s want %s", i, got, wantTypes[i])
		}
	}
	q := els[4].(quoteElement)
	if len(q.children) != 1 {
		t.Fatalf("quote children = %d", len(q.children))
	}
}

func TestElementsFromBlocks_NestedListOwnership(t *testing.T) {
	els := elementsFromBlocks(parseBlocksForTest("- A\n  - B\n- C"))
	group := els[0].(richListElement).group
	if len(group.Items) != 2 {
		t.Fatalf("items = %d", len(group.Items))
	}
	nested := group.Items[0].Nested
	if nested == nil || len(nested.Items) != 1 || nested.Items[0].Runs[0].Text != "B" {
		t.Fatalf("nested = %#v", nested)
	}
}

func TestElementsFromBlocks_Table(t *testing.T) {
	els := elementsFromBlocks(parseBlocksForTest("| H1 | H2 |\n|---|---|\n| a | b |"))
	table := els[0].(richTableElement).table
	if len(table.Header) != 2 {
		t.Fatalf("header cells = %d", len(table.Header))
	}
	if len(table.Rows) != 1 {
		t.Fatalf("body rows = %d", len(table.Rows))
	}
	if table.Rows[0][0].Runs[0].Text != "a" {
		t.Fatalf("cell = %#v", table.Rows[0][0])
	}
}
