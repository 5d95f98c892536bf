package exprql

import "github.com/zoobzio/exprql/internal/types"

// Equal reports deep structural equality over expression trees: same
// kind, same payload, pairwise-equal operands. Equality is independent
// of object identity and of the dialect that will eventually render the
// trees, so independently constructed identical trees compare equal.
func Equal(a, b *Expr) bool {
	return types.Equal(a, b)
}

// Hash returns a structural hash consistent with Equal, suitable for
// keying caches and deduplicating repeated sub-expressions.
func Hash(e *Expr) uint64 {
	return types.Hash(e)
}
