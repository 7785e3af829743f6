package docbuild

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// A parser consumes a prefix of its input. On success it returns the parsed
// value, the remaining input, and true. On failure it returns the input
// untouched so the caller can try the next alternative.
type parser[T any] func(in string) (T, string, bool)

func lit(s string) parser[string] {
	return func(in string) (string, string, bool) {
		if strings.HasPrefix(in, s) {
			return s, in[len(s):], true
		}
		return "", in, false
	}
}

// regexPrefix matches re against the start of the input. The expression must
// be anchored with ^.
func regexPrefix(re *regexp.Regexp) parser[string] {
	return func(in string) (string, string, bool) {
		m := re.FindString(in)
		if m == "" {
			return "", in, false
		}
		return m, in[len(m):], true
	}
}

func seq2[A, B, C any](pa parser[A], pb parser[B], f func(A, B) C) parser[C] {
	return func(in string) (C, string, bool) {
		var zero C
		a, rest, ok := pa(in)
		if !ok {
			return zero, in, false
		}
		b, rest, ok := pb(rest)
		if !ok {
			return zero, in, false
		}
		return f(a, b), rest, true
	}
}

func seq3[A, B, C, D any](pa parser[A], pb parser[B], pc parser[C], f func(A, B, C) D) parser[D] {
	return func(in string) (D, string, bool) {
		var zero D
		a, rest, ok := pa(in)
		if !ok {
			return zero, in, false
		}
		b, rest, ok := pb(rest)
		if !ok {
			return zero, in, false
		}
		c, rest, ok := pc(rest)
		if !ok {
			return zero, in, false
		}
		return f(a, b, c), rest, true
	}
}

// alt tries each parser in order and keeps the first success. Order is a
// correctness decision for the inline grammar, not a preference.
func alt[T any](ps ...parser[T]) parser[T] {
	return func(in string) (T, string, bool) {
		for _, p := range ps {
			if v, rest, ok := p(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// many applies p repeatedly, up to max iterations. It stops on failure, on
// zero-width progress, or when the cap is hit, returning whatever was
// accumulated. The cap guarantees termination on pathological inputs.
func many[T any](p parser[T], max int) parser[[]T] {
	return func(in string) ([]T, string, bool) {
		var out []T
		rest := in
		for i := 0; i < max && rest != ""; i++ {
			v, next, ok := p(rest)
			if !ok || len(next) >= len(rest) {
				break
			}
			out = append(out, v)
			rest = next
		}
		return out, rest, true
	}
}

// lazy defers parser construction to call time, permitting a grammar rule to
// reference itself before it is fully built.
func lazy[T any](f func() parser[T]) parser[T] {
	return func(in string) (T, string, bool) {
		return f()(in)
	}
}

// bracketed consumes open, the verbatim text up to the first close, and
// close. No nested bracket balancing is attempted.
func bracketed(open, close string) parser[string] {
	return func(in string) (string, string, bool) {
		if !strings.HasPrefix(in, open) {
			return "", in, false
		}
		rest := in[len(open):]
		idx := strings.Index(rest, close)
		if idx < 0 {
			return "", in, false
		}
		return rest[:idx], rest[idx+len(close):], true
	}
}

func takeWhile1(pred func(byte) bool) parser[string] {
	return func(in string) (string, string, bool) {
		i := 0
		for i < len(in) && pred(in[i]) {
			i++
		}
		if i == 0 {
			return "", in, false
		}
		return in[:i], in[i:], true
	}
}

func anyRune() parser[string] {
	return func(in string) (string, string, bool) {
		if in == "" {
			return "", in, false
		}
		_, size := utf8.DecodeRuneInString(in)
		return in[:size], in[size:], true
	}
}

// delimitedText consumes marker, the verbatim text up to the next marker,
// and the closing marker.
func delimitedText(marker string) parser[string] {
	return func(in string) (string, string, bool) {
		if !strings.HasPrefix(in, marker) {
			return "", in, false
		}
		rest := in[len(marker):]
		idx := strings.Index(rest, marker)
		if idx < 0 {
			return "", in, false
		}
		return rest[:idx], rest[idx+len(marker):], true
	}
}

// inlineGrammar wires the inline alternatives together. Priority order:
// escape, code span, strong, strikethrough, single emphasis, image, link,
// plain run, single fallback character. The fallback guarantees forward
// progress on inputs no structural parser accepts, e.g. a lone unmatched *.
type inlineGrammar struct {
	maxIter int
	element parser[inlineToken]
}

func newInlineGrammar(maxIter int) *inlineGrammar {
	g := &inlineGrammar{maxIter: maxIter}
	g.element = alt(
		g.escape(),
		g.codeSpan(),
		g.strong("**"),
		g.strong("__"),
		g.strike(),
		g.emphasis("*"),
		g.emphasis("_"),
		g.image(),
		g.link(),
		g.plainRun(),
		g.fallbackChar(),
	)
	return g
}

// parse turns one span of text into a merged inline token sequence. It is
// total: structurally unparseable input comes back as plain text.
func (g *inlineGrammar) parse(text string) []inlineToken {
	element := lazy(func() parser[inlineToken] { return g.element })
	tokens, rest, _ := many(element, g.maxIter)(text)
	if len(tokens) == 0 && rest != "" {
		return []inlineToken{textToken{text: text}}
	}
	return mergeTextTokens(tokens)
}

func (g *inlineGrammar) escape() parser[inlineToken] {
	return seq2(lit(`\`), anyRune(), func(_, r string) inlineToken {
		return textToken{text: r}
	})
}

func (g *inlineGrammar) codeSpan() parser[inlineToken] {
	inner := delimitedText("`")
	return func(in string) (inlineToken, string, bool) {
		code, rest, ok := inner(in)
		if !ok {
			return nil, in, false
		}
		return codeToken{code: code}, rest, true
	}
}

// strong parses **...** or __...__ to the first matching close, recursively
// parsing the interior. An empty interior fails so the marker degrades to
// literal text through the alternative chain.
func (g *inlineGrammar) strong(marker string) parser[inlineToken] {
	inner := delimitedText(marker)
	return func(in string) (inlineToken, string, bool) {
		body, rest, ok := inner(in)
		if !ok || body == "" {
			return nil, in, false
		}
		return boldToken{children: g.parse(body)}, rest, true
	}
}

func (g *inlineGrammar) strike() parser[inlineToken] {
	inner := delimitedText("~~")
	return func(in string) (inlineToken, string, bool) {
		body, rest, ok := inner(in)
		if !ok || body == "" {
			return nil, in, false
		}
		return strikeToken{children: g.parse(body)}, rest, true
	}
}

// emphasis parses *...* or _..._. A doubled marker is rejected here so the
// strong parser, tried earlier, owns it; the interior must be non-empty.
func (g *inlineGrammar) emphasis(marker string) parser[inlineToken] {
	return func(in string) (inlineToken, string, bool) {
		if !strings.HasPrefix(in, marker) || strings.HasPrefix(in, marker+marker) {
			return nil, in, false
		}
		rest := in[len(marker):]
		idx := strings.Index(rest, marker)
		if idx <= 0 {
			return nil, in, false
		}
		return italicToken{children: g.parse(rest[:idx])}, rest[idx+len(marker):], true
	}
}

func (g *inlineGrammar) image() parser[inlineToken] {
	return seq3(lit("!"), bracketed("[", "]"), bracketed("(", ")"),
		func(_, alt, src string) inlineToken {
			return imageToken{alt: alt, src: src}
		})
}

func (g *inlineGrammar) link() parser[inlineToken] {
	return seq2(bracketed("[", "]"), bracketed("(", ")"),
		func(text, href string) inlineToken {
			return linkToken{children: g.parse(text), href: href}
		})
}

func isInlineSpecial(c byte) bool {
	switch c {
	case '\\', '`', '*', '_', '~', '[', '!':
		return true
	}
	return false
}

func (g *inlineGrammar) plainRun() parser[inlineToken] {
	run := takeWhile1(func(c byte) bool { return !isInlineSpecial(c) })
	return func(in string) (inlineToken, string, bool) {
		s, rest, ok := run(in)
		if !ok {
			return nil, in, false
		}
		return textToken{text: s}, rest, true
	}
}

func (g *inlineGrammar) fallbackChar() parser[inlineToken] {
	one := anyRune()
	return func(in string) (inlineToken, string, bool) {
		s, rest, ok := one(in)
		if !ok {
			return nil, in, false
		}
		return textToken{text: s}, rest, true
	}
}
