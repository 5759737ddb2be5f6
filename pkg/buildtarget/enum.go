package buildtarget

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds the edit distance at which Suggest still offers
// a named variant for an unrecognized value.
const maxSuggestDistance = 2

// enum is the table behind one classification domain: the named variants in
// declaration order, each identified by its canonical lowercase string. Any
// string outside the table is the domain's catch-all value.
type enum[T ~string] struct {
	values []T
	order  map[T]int
}

func newEnum[T ~string](values ...T) *enum[T] {
	order := make(map[T]int, len(values))
	for i, v := range values {
		if _, dup := order[v]; dup {
			panic("buildtarget: duplicate canonical string " + string(v))
		}
		if toASCIILower(string(v)) != string(v) {
			panic("buildtarget: canonical string is not lowercase: " + string(v))
		}
		order[v] = i
	}
	return &enum[T]{values: values, order: order}
}

func (e *enum[T]) parse(s string) T {
	v := T(toASCIILower(s))
	if i, ok := e.order[v]; ok {
		return e.values[i]
	}
	return v
}

func (e *enum[T]) known(v T) bool {
	_, ok := e.order[v]
	return ok
}

// compare orders named variants by declaration, then catch-all values by payload.
func (e *enum[T]) compare(a, b T) int {
	ia, aok := e.order[a]
	ib, bok := e.order[b]
	switch {
	case aok && bok:
		return cmp.Compare(ia, ib)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(string(a), string(b))
	}
}

func (e *enum[T]) list() []T {
	return slices.Clone(e.values)
}

func (e *enum[T]) suggest(v T) (T, bool) {
	if v == "" || e.known(v) {
		return v, false
	}

	var best T
	bestDist := maxSuggestDistance + 1
	for _, candidate := range e.values {
		if d := levenshtein.ComputeDistance(string(v), string(candidate)); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist > maxSuggestDistance || bestDist >= len(v) {
		return v, false
	}
	return best, true
}
