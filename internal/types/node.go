package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxRenderDepth bounds recursion while rendering an expression tree.
// Emulation substitutes deepen the tree, so the guard is generous, but a
// pathological input must fail with an error rather than a stack overflow.
const MaxRenderDepth = 128

// LiteralValue is the payload of a literal node. Inline literals are
// always spliced into the SQL text; non-inline literals follow the target
// dialect's literal policy and may become bind parameters.
type LiteralValue struct {
	Value  decimal.Decimal
	Inline bool
}

// ColumnRef is the payload of a column reference node.
type ColumnRef struct {
	Table string
	Name  string
}

// Expr is one immutable node of an expression tree. Trees are never
// mutated after construction; transformations produce new nodes. An Expr
// is therefore safe to share across goroutines and across render calls.
type Expr struct {
	kind     Kind
	typ      DataType
	nullable bool
	args     []*Expr
	lit      *LiteralValue
	col      *ColumnRef
}

// NewLiteral creates a literal node. The declared type is INTEGER for
// whole values and NUMERIC otherwise; integer literals widen to NUMERIC
// when used as operands.
func NewLiteral(v decimal.Decimal, inline bool) *Expr {
	typ := DataNumeric
	if v.IsInteger() {
		typ = DataInteger
	}
	return &Expr{
		kind: KindLiteral,
		typ:  typ,
		lit:  &LiteralValue{Value: v, Inline: inline},
	}
}

// NewColumn creates a column reference node with the given declared type.
// Columns are assumed nullable; nullability propagates to enclosing nodes.
func NewColumn(table, name string, typ DataType) *Expr {
	return &Expr{
		kind:     KindColumn,
		typ:      typ,
		nullable: true,
		col:      &ColumnRef{Table: table, Name: name},
	}
}

// NewCall constructs a function or operator node, validating the operand
// list against the kind's signature. A missing operand is rejected; an
// operand of a compatible narrower type is promoted to the declared
// operand type rather than rejected.
func NewCall(k Kind, operands ...*Expr) (*Expr, error) {
	sig, ok := signatures[k]
	if !ok {
		return nil, fmt.Errorf("unknown node kind: %s", k)
	}
	if len(operands) != sig.Arity {
		return nil, countError(k, sig.Arity, len(operands))
	}

	args := make([]*Expr, len(operands))
	nullable := false
	for i, op := range operands {
		if op == nil {
			return nil, missingOperandError(k, i)
		}
		if !widens(op.typ, sig.Operand) {
			return nil, operandTypeError(k, i, op.typ, sig.Operand)
		}
		args[i] = op.widen(sig.Operand)
		if args[i].nullable {
			nullable = true
		}
	}

	return &Expr{kind: k, typ: sig.Result, nullable: nullable, args: args}, nil
}

// widen returns a copy of e promoted to the target type, or e itself when
// no promotion is needed.
func (e *Expr) widen(target DataType) *Expr {
	if e.typ == target {
		return e
	}
	w := *e
	w.typ = target
	return &w
}

// Kind returns the node's kind tag.
func (e *Expr) Kind() Kind { return e.kind }

// Type returns the node's declared result type.
func (e *Expr) Type() DataType { return e.typ }

// Nullable reports whether the node may evaluate to NULL, derived from
// operand nullability.
func (e *Expr) Nullable() bool { return e.nullable }

// Arity returns the number of operands.
func (e *Expr) Arity() int { return len(e.args) }

// Operand returns the i-th operand.
func (e *Expr) Operand(i int) *Expr { return e.args[i] }

// Operands returns a copy of the operand list.
func (e *Expr) Operands() []*Expr {
	out := make([]*Expr, len(e.args))
	copy(out, e.args)
	return out
}

// Literal returns the literal payload, if the node is a literal.
func (e *Expr) Literal() (LiteralValue, bool) {
	if e.lit == nil {
		return LiteralValue{}, false
	}
	return *e.lit, true
}

// Column returns the column payload, if the node is a column reference.
func (e *Expr) Column() (ColumnRef, bool) {
	if e.col == nil {
		return ColumnRef{}, false
	}
	return *e.col, true
}

// ReplaceOperand returns a new node with the i-th operand replaced,
// leaving the receiver untouched. Used by rewrite passes.
func (e *Expr) ReplaceOperand(i int, op *Expr) (*Expr, error) {
	if i < 0 || i >= len(e.args) {
		return nil, fmt.Errorf("%s: no operand at position %d", e.kind, i)
	}
	args := e.Operands()
	args[i] = op
	return NewCall(e.kind, args...)
}

func (e *Expr) String() string {
	switch e.kind {
	case KindLiteral:
		return e.lit.Value.String()
	case KindColumn:
		if e.col.Table != "" {
			return e.col.Table + "." + e.col.Name
		}
		return e.col.Name
	default:
		return string(e.kind)
	}
}
