package signature

import (
	"fmt"
	"strings"
)

// TokenKind identifies one construct in the simplified signature grammar.
type TokenKind int

const (
	// TokenLiteral is an even-length run of hex digits.
	TokenLiteral TokenKind = iota

	// TokenAny matches exactly one byte of any value (`??`).
	TokenAny

	// TokenGap is a bounded gap `{n}`, `{n-m}` or half-bounded `{n-*}`.
	TokenGap

	// TokenUnbounded is an unbounded gap (`*`).
	TokenUnbounded

	// TokenRange is a byte range `[XX:YY]`, single-value `[XX]`, or a
	// negated form `[!XX:YY]` / `[!XX]`.
	TokenRange

	// TokenChoice is an alternation `(A|B|...)` of literals and ranges.
	TokenChoice
)

// unboundedMax marks a gap with no upper bound ({n-*}).
const unboundedMax = -1

// Token is one parsed element of a byte-sequence expression.
type Token struct {
	Kind TokenKind

	// Literal holds the hex run for TokenLiteral.
	Literal string

	// Min and Max hold gap bounds for TokenGap. Max is unboundedMax for
	// half-bounded gaps.
	Min, Max int

	// Lo and Hi hold range bounds for TokenRange; Hi is empty for
	// single-value ranges. Negated marks `[!...]` forms.
	Lo, Hi  string
	Negated bool

	// Branches holds the canonical text of each alternation branch for
	// TokenChoice.
	Branches []string
}

// String renders the token in canonical form.
func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return t.Literal
	case TokenAny:
		return "??"
	case TokenGap:
		switch {
		case t.Max == unboundedMax:
			return fmt.Sprintf("{%d-*}", t.Min)
		case t.Max != t.Min:
			return fmt.Sprintf("{%d-%d}", t.Min, t.Max)
		default:
			return fmt.Sprintf("{%d}", t.Min)
		}
	case TokenUnbounded:
		return "*"
	case TokenRange:
		var b strings.Builder
		b.WriteByte('[')
		if t.Negated {
			b.WriteByte('!')
		}
		b.WriteString(t.Lo)
		if t.Hi != "" {
			b.WriteByte(':')
			b.WriteString(t.Hi)
		}
		b.WriteByte(']')
		return b.String()
	case TokenChoice:
		return "(" + strings.Join(t.Branches, "|") + ")"
	}
	return ""
}

// Render serializes a token sequence into its canonical string form.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
