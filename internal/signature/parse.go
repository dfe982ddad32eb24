package signature

import (
	"strconv"
	"strings"
)

// Preprocess strips whitespace from a raw byte-sequence expression and
// folds it to upper case. Registry exports are inconsistent about both.
func Preprocess(expr string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(expr), " ", ""))
}

// Canonicalize validates a raw expression and returns its canonical form.
func Canonicalize(expr string) (string, error) {
	tokens, err := Tokenize(Preprocess(expr))
	if err != nil {
		return "", err
	}
	return Render(tokens), nil
}

// Tokenize parses a preprocessed expression into its token sequence.
// The expression must already be upper case with no whitespace.
func Tokenize(expr string) ([]Token, error) {
	if expr == "" {
		return nil, exprErr(expr, -1, "empty token sequence")
	}

	var tokens []Token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case isHexDigit(c):
			j := i
			for j < len(expr) && isHexDigit(expr[j]) {
				j++
			}
			run := expr[i:j]
			if len(run)%2 != 0 {
				return nil, exprErr(expr, i, "hex run %q has odd length", run)
			}
			tokens = append(tokens, Token{Kind: TokenLiteral, Literal: run})
			i = j

		case c == '?':
			if i+1 >= len(expr) || expr[i+1] != '?' {
				return nil, exprErr(expr, i, "dangling '?': wildcards are written as '??'")
			}
			tokens = append(tokens, Token{Kind: TokenAny})
			i += 2

		case c == '*':
			tokens = append(tokens, Token{Kind: TokenUnbounded})
			i++

		case c == '{':
			end := strings.IndexByte(expr[i:], '}')
			if end < 0 {
				return nil, exprErr(expr, i, "unclosed '{'")
			}
			tok, err := parseGap(expr, i, expr[i+1:i+end])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += end + 1

		case c == '[':
			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				return nil, exprErr(expr, i, "unclosed '['")
			}
			tok, err := parseRange(expr, i, expr[i+1:i+end])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += end + 1

		case c == '(':
			end := strings.IndexByte(expr[i:], ')')
			if end < 0 {
				return nil, exprErr(expr, i, "unclosed '('")
			}
			tok, err := parseChoice(expr, i, expr[i+1:i+end])
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += end + 1

		default:
			return nil, exprErr(expr, i, "unexpected character %q", string(c))
		}
	}

	return tokens, nil
}

// parseGap parses the interior of a `{...}` gap: `n`, `n-m` or `n-*`.
func parseGap(expr string, pos int, content string) (Token, error) {
	lo, hi, bounded := strings.Cut(content, "-")

	min, err := strconv.Atoi(lo)
	if err != nil || min < 0 {
		return Token{}, exprErr(expr, pos, "gap lower bound %q is not a non-negative integer", lo)
	}

	if !bounded {
		return Token{Kind: TokenGap, Min: min, Max: min}, nil
	}

	if hi == "*" {
		return Token{Kind: TokenGap, Min: min, Max: unboundedMax}, nil
	}

	max, err := strconv.Atoi(hi)
	if err != nil || max < 0 {
		return Token{}, exprErr(expr, pos, "gap upper bound %q is not a non-negative integer", hi)
	}
	if max < min {
		return Token{}, exprErr(expr, pos, "gap bounds reversed: %d-%d", min, max)
	}

	return Token{Kind: TokenGap, Min: min, Max: max}, nil
}

// parseRange parses the interior of a `[...]` range: `XX`, `XX:YY`,
// optionally prefixed with `!`.
func parseRange(expr string, pos int, content string) (Token, error) {
	negated := strings.HasPrefix(content, "!")
	content = strings.TrimPrefix(content, "!")

	lo, hi, isRange := strings.Cut(content, ":")
	if !isValidHexRun(lo) {
		return Token{}, exprErr(expr, pos, "range bound %q is not an even-length hex value", lo)
	}

	if !isRange {
		return Token{Kind: TokenRange, Lo: lo, Negated: negated}, nil
	}

	if !isValidHexRun(hi) {
		return Token{}, exprErr(expr, pos, "range bound %q is not an even-length hex value", hi)
	}
	if len(lo) != len(hi) {
		return Token{}, exprErr(expr, pos, "range bounds %q and %q differ in width", lo, hi)
	}
	if hi < lo {
		return Token{}, exprErr(expr, pos, "range bounds reversed: %s:%s", lo, hi)
	}

	return Token{Kind: TokenRange, Lo: lo, Hi: hi, Negated: negated}, nil
}

// parseChoice parses the interior of a `(...)` alternation. Branches are
// literal hex runs or ranges; nesting is not part of the grammar.
func parseChoice(expr string, pos int, content string) (Token, error) {
	branches := strings.Split(content, "|")
	if len(branches) < 2 {
		return Token{}, exprErr(expr, pos, "alternation needs at least two branches")
	}

	canonical := make([]string, 0, len(branches))
	for _, branch := range branches {
		switch {
		case branch == "":
			return Token{}, exprErr(expr, pos, "empty alternation branch")
		case strings.HasPrefix(branch, "[") && strings.HasSuffix(branch, "]"):
			tok, err := parseRange(expr, pos, branch[1:len(branch)-1])
			if err != nil {
				return Token{}, err
			}
			canonical = append(canonical, tok.String())
		case isValidHexRun(branch):
			canonical = append(canonical, branch)
		default:
			return Token{}, exprErr(expr, pos, "alternation branch %q is neither a hex run nor a range", branch)
		}
	}

	return Token{Kind: TokenChoice, Branches: canonical}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}

func isValidHexRun(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}
