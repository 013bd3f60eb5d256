package mining

// ClosureFilter removes from cmdp[l-1] every Pattern that has a strict
// superset in cmdp[l] with an identical participation-index history (spec
// §4.5): such a pattern's spatial-prevalence profile is perfectly explained
// by its superset, so it is not closed.
//
// Patterns of size 1 are never reported, so the filter is a no-op for
// l <= 2 (for l == 2 the level it would prune is cmdp[1], the singleton
// seeds).
func ClosureFilter(cmdp map[int]PatternSet, l int, history *History) {
	if l <= 2 {
		return
	}

	smaller, ok := cmdp[l-1]
	if !ok {
		return
	}
	larger := cmdp[l]

	for p := range smaller {
		closed := true
		for q := range larger {
			if !p.IsSubsetOf(q) {
				continue
			}
			if history.Equal(p, q) {
				closed = false
				break
			}
		}
		if !closed {
			delete(smaller, p)
		}
	}
}
