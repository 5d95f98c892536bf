package exprql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zoobzio/exprql/dialect"
	"github.com/zoobzio/exprql/internal/render"
	"github.com/zoobzio/exprql/internal/types"
)

// renderContext tracks rendering state for one Render call: the target
// profile, the output accumulator, the bind list, the recursion depth
// guard, and a memo of rendered bind-free subtrees. A context is
// single-use and never shared across render invocations.
type renderContext struct {
	profile dialect.Profile
	sql     strings.Builder
	params  []types.Param
	bound   map[*types.Expr]string
	memo    map[uint64][]memoEntry
	depth   int
}

type memoEntry struct {
	expr *types.Expr
	text string
}

func newRenderContext(profile dialect.Profile) *renderContext {
	return &renderContext{
		profile: profile,
		bound:   make(map[*types.Expr]string),
		memo:    make(map[uint64][]memoEntry),
	}
}

// Render walks an expression tree and produces the SQL fragment for one
// target dialect, plus the bind parameters in emission order. Rendering
// is deterministic and pure: the same tree under the same dialect yields
// byte-identical SQL and an identical bind list.
func Render(e *Expr, d dialect.Dialect) (*RenderResult, error) {
	if e == nil {
		return nil, fmt.Errorf("expression cannot be nil")
	}
	profile, ok := dialect.Lookup(d)
	if !ok {
		return nil, fmt.Errorf("unknown dialect: %s", d)
	}

	ctx := newRenderContext(profile)
	if err := ctx.render(e); err != nil {
		return nil, err
	}

	return &RenderResult{SQL: ctx.sql.String(), Params: ctx.params}, nil
}

// render is the guarded entry point for every node, including substitute
// trees produced by emulation rules. Repeated bind-free subtrees are
// rendered once and spliced from the memo thereafter.
func (ctx *renderContext) render(e *Expr) error {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > types.MaxRenderDepth {
		return fmt.Errorf("maximum render depth (%d) exceeded", types.MaxRenderDepth)
	}

	if !ctx.memoizable(e) {
		return ctx.renderNode(e)
	}

	key := types.Hash(e)
	for _, entry := range ctx.memo[key] {
		if types.Equal(entry.expr, e) {
			ctx.sql.WriteString(entry.text)
			return nil
		}
	}

	start := ctx.sql.Len()
	if err := ctx.renderNode(e); err != nil {
		return err
	}
	ctx.memo[key] = append(ctx.memo[key], memoEntry{expr: e, text: ctx.sql.String()[start:]})
	return nil
}

// memoizable reports whether a subtree's rendering can be cached: leaves
// are not worth caching, and a subtree containing bind sites must render
// every time so the bind list stays in emission order.
func (ctx *renderContext) memoizable(e *Expr) bool {
	if e.Kind() == types.KindLiteral || e.Kind() == types.KindColumn {
		return false
	}
	return !ctx.containsBindSite(e)
}

func (ctx *renderContext) containsBindSite(e *Expr) bool {
	if lit, ok := e.Literal(); ok {
		return !lit.Inline && ctx.profile.Literals == dialect.BindLiterals
	}
	for i := 0; i < e.Arity(); i++ {
		if ctx.containsBindSite(e.Operand(i)) {
			return true
		}
	}
	return false
}

func (ctx *renderContext) renderNode(e *Expr) error {
	k := e.Kind()
	switch {
	case k == types.KindLiteral:
		ctx.renderLiteral(e)
		return nil
	case k == types.KindColumn:
		ctx.renderColumn(e)
		return nil
	case k == types.KindNeg:
		ctx.sql.WriteString("-")
		return ctx.renderNegOperand(e.Operand(0))
	case ctx.infixOperator(k):
		return ctx.renderBinary(e)
	case types.IsFunction(k) || k == types.KindMod:
		return ctx.renderFunction(e)
	default:
		return fmt.Errorf("unknown node kind: %s", k)
	}
}

func (ctx *renderContext) renderLiteral(e *Expr) {
	lit, _ := e.Literal()
	if lit.Inline || ctx.profile.Literals == dialect.InlineLiterals {
		ctx.sql.WriteString(lit.Value.String())
		return
	}
	ctx.sql.WriteString(ctx.bindLiteral(e, lit.Value))
}

// bindLiteral appends a bind parameter and returns its placeholder. The
// same literal node bound twice reuses its placeholder under named
// placeholder styles; positional '?' styles must re-emit.
func (ctx *renderContext) bindLiteral(e *Expr, v decimal.Decimal) string {
	if ctx.profile.Placeholder != dialect.PlaceholderQuestion {
		if ph, ok := ctx.bound[e]; ok {
			return ph
		}
	}

	n := len(ctx.params) + 1
	name := "p" + strconv.Itoa(n)
	ctx.params = append(ctx.params, types.Param{Name: name, Value: v})

	var ph string
	switch ctx.profile.Placeholder {
	case dialect.PlaceholderDollar:
		ph = "$" + strconv.Itoa(n)
	case dialect.PlaceholderQuestion:
		ph = "?"
	case dialect.PlaceholderNamed:
		ph = ":" + name
	case dialect.PlaceholderAt:
		ph = "@" + name
	}
	ctx.bound[e] = ph
	return ph
}

func (ctx *renderContext) renderColumn(e *Expr) {
	col, _ := e.Column()
	if col.Table != "" {
		ctx.sql.WriteString(ctx.quoteIdentifier(col.Table))
		ctx.sql.WriteString(".")
	}
	ctx.sql.WriteString(ctx.quoteIdentifier(col.Name))
}

// quoteIdentifier quotes an identifier in the dialect's style, escaping
// embedded quote characters by doubling.
func (ctx *renderContext) quoteIdentifier(name string) string {
	switch ctx.profile.Quote {
	case dialect.QuoteBacktick:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case dialect.QuoteBracket:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

func (ctx *renderContext) renderBinary(e *Expr) error {
	if err := ctx.renderOperand(e.Operand(0)); err != nil {
		return err
	}
	ctx.sql.WriteString(" ")
	ctx.sql.WriteString(types.OperatorSymbol(e.Kind()))
	ctx.sql.WriteString(" ")
	return ctx.renderOperand(e.Operand(1))
}

// renderOperand renders a child in operand position, parenthesizing
// nested infix operators so the emitted text is precedence-safe.
func (ctx *renderContext) renderOperand(e *Expr) error {
	if ctx.infixOperator(e.Kind()) {
		ctx.sql.WriteString("(")
		if err := ctx.render(e); err != nil {
			return err
		}
		ctx.sql.WriteString(")")
		return nil
	}
	return ctx.render(e)
}

// renderNegOperand parenthesizes operands whose rendering begins with
// its own minus sign: "--" opens a line comment in most dialects.
func (ctx *renderContext) renderNegOperand(e *Expr) error {
	lit, isLit := e.Literal()
	if e.Kind() == types.KindNeg || (isLit && lit.Value.IsNegative() && !ctx.binds(lit)) {
		ctx.sql.WriteString("(")
		if err := ctx.render(e); err != nil {
			return err
		}
		ctx.sql.WriteString(")")
		return nil
	}
	return ctx.renderOperand(e)
}

// binds reports whether a literal renders as a placeholder under the
// profile's literal policy.
func (ctx *renderContext) binds(lit types.LiteralValue) bool {
	return !lit.Inline && ctx.profile.Literals == dialect.BindLiterals
}

// infixOperator reports whether a kind renders with infix syntax under
// this profile. MOD falls back to function-call syntax on dialects
// without the % operator.
func (ctx *renderContext) infixOperator(k types.Kind) bool {
	if k == types.KindMod && ctx.profile.ModFunction {
		return false
	}
	return types.IsOperator(k)
}

// renderFunction classifies the target dialect against the node kind:
// native support emits the dialect's keyword with the operands in
// argument position; otherwise the registered emulation rule builds a
// substitute tree that is rendered under the same context, so nested
// emulations re-classify against the same dialect. With neither path,
// rendering fails naming the kind and the dialect.
func (ctx *renderContext) renderFunction(e *Expr) error {
	k := e.Kind()

	if ctx.profile.Supports(k) {
		ctx.sql.WriteString(ctx.profile.Keyword(k))
		ctx.sql.WriteString("(")
		for i := 0; i < e.Arity(); i++ {
			if i > 0 {
				ctx.sql.WriteString(ctx.profile.ArgSeparator)
			}
			if err := ctx.render(e.Operand(i)); err != nil {
				return err
			}
		}
		ctx.sql.WriteString(")")
		return nil
	}

	rule, ok := render.LookupRule(k, ctx.profile.Family)
	if !ok {
		return render.UnsupportedConstructError{Kind: k, Dialect: ctx.profile.Dialect}
	}

	sub, err := rule(e.Operands())
	if err != nil {
		return render.MalformedEmulationError{Kind: k, Detail: err.Error()}
	}
	return ctx.render(sub)
}
