package matcher

import "github.com/arthur-debert/dirkeep/pkg/types"

// Set is an OR-combined list of matchers. An entry passes the set if
// any matcher matches it.
//
// A Set carries three-state semantics through its presence: rule
// fields hold *Set, where nil means "absent" (every entry passes) and
// a non-nil Set with no matchers means "deny all". Code that needs
// those semantics goes through Allows.
type Set struct {
	Matchers []Matcher
}

// NewSet builds a Set from the given matchers.
func NewSet(matchers ...Matcher) *Set {
	return &Set{Matchers: matchers}
}

// MatchesAny reports whether at least one matcher in the set matches
// the entry. An empty set matches nothing.
func (s *Set) MatchesAny(name string, kind types.EntryKind) bool {
	if s == nil {
		return false
	}
	for _, m := range s.Matchers {
		if m.Matches(name, kind) {
			return true
		}
	}
	return false
}

// Allows applies the three-state pass-through/deny-all/filter
// semantics: a nil set allows every entry, a present set allows only
// entries matched by at least one of its matchers (so a present-but-
// empty set allows none).
func (s *Set) Allows(name string, kind types.EntryKind) bool {
	if s == nil {
		return true
	}
	return s.MatchesAny(name, kind)
}
