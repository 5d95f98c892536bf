package types

import "hash/fnv"

// Equal reports deep structural equality: two nodes are equal iff they
// have the same kind, type, payload, and pairwise-equal operands. Object
// identity is irrelevant, so independently built identical trees compare
// equal. Literal values compare by their decimal representation.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.typ != b.typ || len(a.args) != len(b.args) {
		return false
	}
	switch {
	case a.lit != nil:
		if b.lit == nil || a.lit.Inline != b.lit.Inline {
			return false
		}
		if a.lit.Value.String() != b.lit.Value.String() {
			return false
		}
	case a.col != nil:
		if b.col == nil || *a.col != *b.col {
			return false
		}
	}
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal: equal trees hash
// equally, independent of which dialect will eventually render them.
func Hash(e *Expr) uint64 {
	h := fnv.New64a()
	hashInto(h, e)
	return h.Sum64()
}

type hasher interface {
	Write([]byte) (int, error)
}

func hashInto(h hasher, e *Expr) {
	if e == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte(e.kind))
	h.Write([]byte{0})
	h.Write([]byte(e.typ))
	h.Write([]byte{0})
	switch {
	case e.lit != nil:
		h.Write([]byte(e.lit.Value.String()))
		if e.lit.Inline {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{2})
		}
	case e.col != nil:
		h.Write([]byte(e.col.Table))
		h.Write([]byte{0})
		h.Write([]byte(e.col.Name))
	}
	for _, arg := range e.args {
		h.Write([]byte{0xfe})
		hashInto(h, arg)
	}
	h.Write([]byte{0xff})
}
