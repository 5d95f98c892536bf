// Package render holds the dialect-independent rendering machinery shared
// by the engine: the emulation rule table and the rendering error types.
package render

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zoobzio/exprql/dialect"
	"github.com/zoobzio/exprql/internal/types"
)

// Rule builds a substitute expression tree from a node's own operands,
// using only primitives assumed universal (arithmetic, LN, EXP, SQRT,
// plain trigonometry). Rules are pure and total over the kind's valid
// operand domain; degenerate operand values render symbolically and are
// left to the target engine.
type Rule func(operands []*types.Expr) (*types.Expr, error)

// registration pairs a rule with the families it applies to. A nil
// family set means the rule applies to every family lacking native
// support.
type registration struct {
	rule     Rule
	families map[dialect.Family]bool
}

// rules is keyed by node kind. Populated once below, immutable afterwards.
var rules = map[types.Kind]registration{}

// register adds a rule for a kind. With no families the rule is
// unrestricted.
func register(k types.Kind, r Rule, families ...dialect.Family) {
	reg := registration{rule: r}
	if len(families) > 0 {
		reg.families = make(map[dialect.Family]bool, len(families))
		for _, f := range families {
			reg.families[f] = true
		}
	}
	rules[k] = reg
}

// LookupRule returns the emulation rule registered for (kind, family).
func LookupRule(k types.Kind, f dialect.Family) (Rule, bool) {
	reg, ok := rules[k]
	if !ok {
		return nil, false
	}
	if reg.families != nil && !reg.families[f] {
		return nil, false
	}
	return reg.rule, true
}

// mustCall builds a node for rule construction. Rules assemble trees from
// operands already validated by the original node, so a failure here is a
// bug in the rule itself.
func mustCall(k types.Kind, operands ...*types.Expr) *types.Expr {
	e, err := types.NewCall(k, operands...)
	if err != nil {
		panic(MalformedEmulationError{Kind: k, Detail: err.Error()})
	}
	return e
}

// inline builds an integer constant owned by an emulation rule. Rule
// constants are always inlined into SQL text regardless of the dialect's
// literal policy.
func inline(v int64) *types.Expr {
	return types.NewLiteral(decimal.NewFromInt(v), true)
}

func init() {
	// atanh(x) = ln((1 + x) / (1 - x)) / 2
	register(types.KindAtanh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		ratio := mustCall(types.KindDiv,
			mustCall(types.KindAdd, inline(1), x),
			mustCall(types.KindSub, inline(1), x))
		return types.NewCall(types.KindDiv, mustCall(types.KindLn, ratio), inline(2))
	})

	// asinh(x) = ln(x + sqrt(x * x + 1))
	register(types.KindAsinh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		root := mustCall(types.KindSqrt,
			mustCall(types.KindAdd, mustCall(types.KindMul, x, x), inline(1)))
		return types.NewCall(types.KindLn, mustCall(types.KindAdd, x, root))
	})

	// acosh(x) = ln(x + sqrt(x * x - 1))
	register(types.KindAcosh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		root := mustCall(types.KindSqrt,
			mustCall(types.KindSub, mustCall(types.KindMul, x, x), inline(1)))
		return types.NewCall(types.KindLn, mustCall(types.KindAdd, x, root))
	})

	// sinh(x) = (exp(2 * x) - 1) / (2 * exp(x))
	register(types.KindSinh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindSub, expTwice(x), inline(1)),
			mustCall(types.KindMul, inline(2), mustCall(types.KindExp, x)))
	})

	// cosh(x) = (exp(2 * x) + 1) / (2 * exp(x))
	register(types.KindCosh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindAdd, expTwice(x), inline(1)),
			mustCall(types.KindMul, inline(2), mustCall(types.KindExp, x)))
	})

	// tanh(x) = (exp(2 * x) - 1) / (exp(2 * x) + 1)
	register(types.KindTanh, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindSub, expTwice(x), inline(1)),
			mustCall(types.KindAdd, expTwice(x), inline(1)))
	})

	// coth(x) = (exp(2 * x) + 1) / (exp(2 * x) - 1)
	register(types.KindCoth, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindAdd, expTwice(x), inline(1)),
			mustCall(types.KindSub, expTwice(x), inline(1)))
	})

	// cot(x) = cos(x) / sin(x)
	register(types.KindCot, func(ops []*types.Expr) (*types.Expr, error) {
		x := ops[0]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindCos, x), mustCall(types.KindSin, x))
	})

	// log(base, x) = ln(x) / ln(base)
	register(types.KindLog, func(ops []*types.Expr) (*types.Expr, error) {
		base, x := ops[0], ops[1]
		return types.NewCall(types.KindDiv,
			mustCall(types.KindLn, x), mustCall(types.KindLn, base))
	})

	// log10(x) = ln(x) / ln(10)
	register(types.KindLog10, func(ops []*types.Expr) (*types.Expr, error) {
		return types.NewCall(types.KindDiv,
			mustCall(types.KindLn, ops[0]), mustCall(types.KindLn, inline(10)))
	})

	// log2(x) = ln(x) / ln(2)
	register(types.KindLog2, func(ops []*types.Expr) (*types.Expr, error) {
		return types.NewCall(types.KindDiv,
			mustCall(types.KindLn, ops[0]), mustCall(types.KindLn, inline(2)))
	})

	// power(x, y) = exp(ln(x) * y)
	register(types.KindPower, func(ops []*types.Expr) (*types.Expr, error) {
		x, y := ops[0], ops[1]
		return types.NewCall(types.KindExp,
			mustCall(types.KindMul, mustCall(types.KindLn, x), y))
	})

	// pi() = acos(-1)
	register(types.KindPi, func(_ []*types.Expr) (*types.Expr, error) {
		return types.NewCall(types.KindAcos, inline(-1))
	})

	// degrees(x) = x * 180 / pi(); the PI sub-node re-classifies against
	// the same dialect and may itself emulate to acos(-1).
	register(types.KindDegrees, func(ops []*types.Expr) (*types.Expr, error) {
		return types.NewCall(types.KindDiv,
			mustCall(types.KindMul, ops[0], inline(180)),
			mustCall(types.KindPi))
	})

	// radians(x) = x * pi() / 180
	register(types.KindRadians, func(ops []*types.Expr) (*types.Expr, error) {
		return types.NewCall(types.KindDiv,
			mustCall(types.KindMul, ops[0], mustCall(types.KindPi)),
			inline(180))
	})

	// SIGN has no CASE-free rewrite over the universal primitives, so no
	// rule is registered: a dialect without native SIGN reports
	// UnsupportedConstructError.

	if err := validateRules(); err != nil {
		panic(err)
	}
}

// expTwice builds exp(2 * x).
func expTwice(x *types.Expr) *types.Expr {
	return mustCall(types.KindExp, mustCall(types.KindMul, inline(2), x))
}

// validateRules applies every registered rule to sample operands and
// checks the substitute against the original kind's signature. Run once
// at table construction; a failure is fatal.
func validateRules() error {
	for k, reg := range rules {
		if err := checkRule(k, reg.rule); err != nil {
			return err
		}
	}
	return nil
}

// checkRule validates one rule's substitute tree against a kind's
// declared result and operand contract.
func checkRule(k types.Kind, r Rule) error {
	sig, ok := types.SignatureOf(k)
	if !ok {
		return MalformedEmulationError{Kind: k, Detail: "no signature for kind"}
	}
	operands := make([]*types.Expr, sig.Arity)
	for i := range operands {
		operands[i] = types.NewColumn("", fmt.Sprintf("op%d", i+1), sig.Operand)
	}
	sub, err := r(operands)
	if err != nil {
		return MalformedEmulationError{Kind: k, Detail: err.Error()}
	}
	if sub == nil {
		return MalformedEmulationError{Kind: k, Detail: "rule produced no substitute tree"}
	}
	if sub.Type() != sig.Result && !(sub.Type() == types.DataInteger && sig.Result == types.DataNumeric) {
		return MalformedEmulationError{
			Kind:   k,
			Detail: fmt.Sprintf("substitute has result type %s, want %s", sub.Type(), sig.Result),
		}
	}
	return nil
}
