package signature

import "fmt"

// ExpressionError describes why a byte-sequence expression failed
// validation. Position is a byte index into the preprocessed expression,
// or -1 when the problem is not positional.
type ExpressionError struct {
	Expr     string
	Position int
	Message  string
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("invalid byte sequence %q at index %d: %s", e.Expr, e.Position, e.Message)
	}
	return fmt.Sprintf("invalid byte sequence %q: %s", e.Expr, e.Message)
}

func exprErr(expr string, pos int, format string, args ...interface{}) error {
	return &ExpressionError{
		Expr:     expr,
		Position: pos,
		Message:  fmt.Sprintf(format, args...),
	}
}
