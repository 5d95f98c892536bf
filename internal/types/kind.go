package types

import "strings"

// Kind identifies the SQL construct an Expr represents.
type Kind string

const (
	KindLiteral Kind = "LITERAL"
	KindColumn  Kind = "COLUMN"

	// Arithmetic operators.
	KindNeg Kind = "NEG"
	KindAdd Kind = "ADD"
	KindSub Kind = "SUB"
	KindMul Kind = "MUL"
	KindDiv Kind = "DIV"
	KindMod Kind = "MOD"

	// Trigonometric functions.
	KindSin  Kind = "SIN"
	KindCos  Kind = "COS"
	KindTan  Kind = "TAN"
	KindCot  Kind = "COT"
	KindAsin Kind = "ASIN"
	KindAcos Kind = "ACOS"
	KindAtan Kind = "ATAN"

	// Hyperbolic functions and their inverses.
	KindSinh  Kind = "SINH"
	KindCosh  Kind = "COSH"
	KindTanh  Kind = "TANH"
	KindCoth  Kind = "COTH"
	KindAsinh Kind = "ASINH"
	KindAcosh Kind = "ACOSH"
	KindAtanh Kind = "ATANH"

	// Exponential and logarithmic functions.
	KindLn    Kind = "LN"
	KindExp   Kind = "EXP"
	KindLog   Kind = "LOG"
	KindLog10 Kind = "LOG10"
	KindLog2  Kind = "LOG2"
	KindPower Kind = "POWER"
	KindSqrt  Kind = "SQRT"

	// Rounding and sign functions.
	KindAbs   Kind = "ABS"
	KindFloor Kind = "FLOOR"
	KindCeil  Kind = "CEIL"
	KindRound Kind = "ROUND"
	KindSign  Kind = "SIGN"

	// Constants and angle conversion.
	KindPi      Kind = "PI"
	KindDegrees Kind = "DEGREES"
	KindRadians Kind = "RADIANS"
)

// operatorSymbols maps binary operator kinds to their infix symbol.
var operatorSymbols = map[Kind]string{
	KindAdd: "+",
	KindSub: "-",
	KindMul: "*",
	KindDiv: "/",
	KindMod: "%",
}

// IsOperator reports whether k is a binary infix operator.
func IsOperator(k Kind) bool {
	_, ok := operatorSymbols[k]
	return ok
}

// OperatorSymbol returns the infix symbol for a binary operator kind.
// Returns the empty string for non-operator kinds.
func OperatorSymbol(k Kind) string {
	return operatorSymbols[k]
}

// IsFunction reports whether k renders with function-call syntax.
func IsFunction(k Kind) bool {
	if k == KindLiteral || k == KindColumn || k == KindNeg || IsOperator(k) {
		return false
	}
	_, ok := signatures[k]
	return ok
}

// Keyword returns the canonical lowercase SQL keyword for a function kind.
func Keyword(k Kind) string {
	return strings.ToLower(string(k))
}
