package session

import "github.com/plankworks/cabd/pkg/model"

// Entry is one immutable point-in-time snapshot on the undo stack. The
// config rides along with the shapes so undoing a structural edit also
// restores the spec that regenerates it.
type Entry struct {
	Shapes      []model.Shape
	Config      model.ModuleConfig
	Description string
}

// History is the append-only undo/redo ledger. Pushing while the cursor is
// not at the end truncates the tail (standard undo discipline).
type History struct {
	entries []Entry
	cursor  int // index of the current entry
}

// NewHistory creates a ledger seeded with the initial state, so the first
// undo has somewhere to land.
func NewHistory(shapes []model.Shape, cfg model.ModuleConfig) *History {
	return &History{
		entries: []Entry{{Shapes: model.CloneShapes(shapes), Config: cfg.Clone(), Description: "initial"}},
	}
}

// Push records a new snapshot after the cursor, truncating any redo tail.
func (h *History) Push(shapes []model.Shape, cfg model.ModuleConfig, description string) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, Entry{
		Shapes:      model.CloneShapes(shapes),
		Config:      cfg.Clone(),
		Description: description,
	})
	h.cursor = len(h.entries) - 1
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }

// Undo steps the cursor back and returns that entry.
func (h *History) Undo() (Entry, bool) {
	if !h.CanUndo() {
		return Entry{}, false
	}
	h.cursor--
	return h.current(), true
}

// Redo steps the cursor forward and returns that entry.
func (h *History) Redo() (Entry, bool) {
	if !h.CanRedo() {
		return Entry{}, false
	}
	h.cursor++
	return h.current(), true
}

// current returns a deep copy of the entry under the cursor so callers can
// never alias ledger state.
func (h *History) current() Entry {
	e := h.entries[h.cursor]
	return Entry{
		Shapes:      model.CloneShapes(e.Shapes),
		Config:      e.Config.Clone(),
		Description: e.Description,
	}
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }
