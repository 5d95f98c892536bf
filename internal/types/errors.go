package types

import "fmt"

// ArityError indicates that a node was constructed with the wrong number
// of operands, a missing operand, or an operand of an incompatible type.
// It is fatal to that construction call; the renderer never sees such trees.
type ArityError struct {
	Kind    Kind
	Want    int
	Got     int
	Pos     int // offending operand position for type failures, -1 otherwise
	Operand DataType
	Target  DataType
}

func (e ArityError) Error() string {
	switch {
	case e.Pos >= 0 && e.Operand == "":
		return fmt.Sprintf("%s: operand %d is missing", e.Kind, e.Pos+1)
	case e.Pos >= 0:
		return fmt.Sprintf("%s: operand %d has type %s, want %s", e.Kind, e.Pos+1, e.Operand, e.Target)
	default:
		return fmt.Sprintf("%s: expected %d operand(s), got %d", e.Kind, e.Want, e.Got)
	}
}

func countError(k Kind, want, got int) error {
	return ArityError{Kind: k, Want: want, Got: got, Pos: -1}
}

func missingOperandError(k Kind, pos int) error {
	return ArityError{Kind: k, Pos: pos}
}

func operandTypeError(k Kind, pos int, got, want DataType) error {
	return ArityError{Kind: k, Pos: pos, Operand: got, Target: want}
}
