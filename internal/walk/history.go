package walk

import "github.com/mesh-intelligence/flaneur/pkg/types"

// visit is one walk state: an intersection and the heading leaving it.
type visit struct {
	pos types.Position
	dir types.Direction
}

// History records the walk states seen so far. A repeated state proves the
// walk will never terminate: the same intersection with the same heading
// replays the same future. One History serves exactly one walk.
type History struct {
	seen map[visit]struct{}
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{seen: make(map[visit]struct{})}
}

// Record notes the state and reports whether it was already present.
// Repeats are not re-added. Revisiting an intersection with a different
// heading is an ordinary, non-repeating state.
func (h *History) Record(pos types.Position, dir types.Direction) bool {
	v := visit{pos: pos, dir: dir}
	if _, ok := h.seen[v]; ok {
		return true
	}
	h.seen[v] = struct{}{}
	return false
}

// Len returns the number of distinct states recorded.
func (h *History) Len() int { return len(h.seen) }
