package types

// Signature declares the arity and types of a node kind. Operands of a
// kind all share one declared type in this catalog.
type Signature struct {
	Arity   int
	Operand DataType
	Result  DataType
}

var signatures = map[Kind]Signature{
	KindNeg: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAdd: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindSub: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindMul: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindDiv: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindMod: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},

	KindSin:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindCos:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindTan:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindCot:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAsin: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAcos: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAtan: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},

	KindSinh:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindCosh:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindTanh:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindCoth:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAsinh: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAcosh: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindAtanh: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},

	KindLn:    {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindExp:   {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindLog:   {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindLog10: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindLog2:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindPower: {Arity: 2, Operand: DataNumeric, Result: DataNumeric},
	KindSqrt:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},

	KindAbs:   {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindFloor: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindCeil:  {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindRound: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindSign:  {Arity: 1, Operand: DataNumeric, Result: DataInteger},

	KindPi:      {Arity: 0, Operand: DataNumeric, Result: DataNumeric},
	KindDegrees: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
	KindRadians: {Arity: 1, Operand: DataNumeric, Result: DataNumeric},
}

// SignatureOf returns the declared signature for a callable kind.
func SignatureOf(k Kind) (Signature, bool) {
	sig, ok := signatures[k]
	return sig, ok
}
