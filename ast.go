package exprql

import (
	"github.com/shopspring/decimal"

	"github.com/zoobzio/exprql/internal/types"
)

// TryCall constructs a node of an arbitrary kind, returning an error if
// the operand list violates the kind's signature.
func TryCall(k Kind, operands ...*Expr) (*Expr, error) {
	return types.NewCall(k, operands...)
}

// call is the panicking construction path used by the typed builders.
// Builder signatures already fix the operand count, so the only failure
// mode left is an operand of an incompatible type.
func call(k Kind, operands ...*Expr) *Expr {
	e, err := types.NewCall(k, operands...)
	if err != nil {
		panic(err)
	}
	return e
}

// Num creates a literal from a decimal value. The literal follows the
// target dialect's literal policy and may render as a bind parameter.
func Num(v decimal.Decimal) *Expr {
	return types.NewLiteral(v, false)
}

// Int creates an integer literal.
func Int(v int64) *Expr {
	return Num(decimal.NewFromInt(v))
}

// Float creates a numeric literal from a float64.
func Float(v float64) *Expr {
	return Num(decimal.NewFromFloat(v))
}

// Inline creates a literal that is always spliced into the SQL text,
// bypassing the dialect's literal policy.
func Inline(v decimal.Decimal) *Expr {
	return types.NewLiteral(v, true)
}

// InlineInt creates an always-inlined integer literal.
func InlineInt(v int64) *Expr {
	return Inline(decimal.NewFromInt(v))
}

// Col creates an unqualified numeric column reference. Use a Schema for
// validated, typed references.
func Col(name string) *Expr {
	return types.NewColumn("", name, types.DataNumeric)
}

// ColTable creates a table-qualified numeric column reference.
func ColTable(table, name string) *Expr {
	return types.NewColumn(table, name, types.DataNumeric)
}

// Neg negates an expression.
func Neg(x *Expr) *Expr { return call(KindNeg, x) }

// Add builds x + y.
func Add(x, y *Expr) *Expr { return call(KindAdd, x, y) }

// Sub builds x - y.
func Sub(x, y *Expr) *Expr { return call(KindSub, x, y) }

// Mul builds x * y.
func Mul(x, y *Expr) *Expr { return call(KindMul, x, y) }

// Div builds x / y.
func Div(x, y *Expr) *Expr { return call(KindDiv, x, y) }

// Mod builds x % y.
func Mod(x, y *Expr) *Expr { return call(KindMod, x, y) }
