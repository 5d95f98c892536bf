// Package exprql renders typed, dialect-portable SQL scalar expressions.
//
// Callers build an immutable expression tree from the package-level
// constructors, then render it for one target dialect:
//
//	expr := exprql.Atanh(exprql.Col("ratio"))
//
//	result, err := exprql.Render(expr, dialect.Postgres)
//	// result.SQL: atanh("ratio")
//
//	result, err = exprql.Render(expr, dialect.MySQL)
//	// result.SQL: ln((1 + `ratio`) / (1 - `ratio`)) / 2
//
// At each node the renderer consults the dialect registry: a construct
// the dialect supports natively is emitted as its native keyword, and a
// construct it lacks is substituted with a registered emulation tree
// built from universal primitives, which is then rendered under the same
// context so nested emulations compose. Native support always wins over
// emulation. A construct with neither path fails with an error naming
// the kind and the dialect.
//
// Expression trees are immutable and safe to share: multiple goroutines
// may render the same tree concurrently against different dialects, each
// render call owning its own context.
//
// # Bind parameters
//
// Rendering returns the SQL fragment plus an ordered bind-parameter
// list. Dialects with an inline literal policy splice caller-supplied
// values into the text; dialects with a bind policy emit placeholders
// and report name/value pairs in emission order. Constants introduced by
// emulation rules are always inlined.
//
// # Schema validation
//
// Column references can be validated against a DBML schema:
//
//	schema, err := exprql.NewSchema(project)
//	expr := exprql.Sqrt(schema.Col("orders", "total"))
package exprql

import "github.com/zoobzio/exprql/internal/types"

// Expr is one immutable node of an expression tree.
// Re-exported from internal/types for use by consumers.
type Expr = types.Expr

// Kind identifies the SQL construct an Expr represents.
type Kind = types.Kind

// Re-export kind constants for public API.
const (
	KindLiteral = types.KindLiteral
	KindColumn  = types.KindColumn

	KindNeg = types.KindNeg
	KindAdd = types.KindAdd
	KindSub = types.KindSub
	KindMul = types.KindMul
	KindDiv = types.KindDiv
	KindMod = types.KindMod

	KindSin  = types.KindSin
	KindCos  = types.KindCos
	KindTan  = types.KindTan
	KindCot  = types.KindCot
	KindAsin = types.KindAsin
	KindAcos = types.KindAcos
	KindAtan = types.KindAtan

	KindSinh  = types.KindSinh
	KindCosh  = types.KindCosh
	KindTanh  = types.KindTanh
	KindCoth  = types.KindCoth
	KindAsinh = types.KindAsinh
	KindAcosh = types.KindAcosh
	KindAtanh = types.KindAtanh

	KindLn    = types.KindLn
	KindExp   = types.KindExp
	KindLog   = types.KindLog
	KindLog10 = types.KindLog10
	KindLog2  = types.KindLog2
	KindPower = types.KindPower
	KindSqrt  = types.KindSqrt

	KindAbs   = types.KindAbs
	KindFloor = types.KindFloor
	KindCeil  = types.KindCeil
	KindRound = types.KindRound
	KindSign  = types.KindSign

	KindPi      = types.KindPi
	KindDegrees = types.KindDegrees
	KindRadians = types.KindRadians
)

// DataType is the declared result type of an expression node.
type DataType = types.DataType

// Re-export data type constants for public API.
const (
	DataInteger = types.DataInteger
	DataNumeric = types.DataNumeric
	DataString  = types.DataString
	DataBoolean = types.DataBoolean
	DataDate    = types.DataDate
)

// RenderResult contains the rendered SQL fragment and its bind parameters.
type RenderResult = types.RenderResult

// Param is one bind parameter: placeholder name plus typed value.
type Param = types.Param

// ArityError indicates node construction with a wrong operand count or
// an operand of an incompatible type.
type ArityError = types.ArityError

// MaxRenderDepth bounds recursion while rendering an expression tree.
const MaxRenderDepth = types.MaxRenderDepth
