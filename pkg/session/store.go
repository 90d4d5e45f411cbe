// Package session owns the shared editing state: the config, the derived
// shapes, the selection set, the undo ledger, and the one active drag/resize
// gesture. Every pointer event either fully commits its transition or leaves
// state unchanged.
package session

import (
	"github.com/plankworks/cabd/pkg/geometry"
	"github.com/plankworks/cabd/pkg/layout"
	"github.com/plankworks/cabd/pkg/model"
)

// Mode is the current interaction mode. It gates which gestures pointer-down
// may start.
type Mode string

const (
	ModeSelect Mode = "select"
	ModeMove   Mode = "move"
	ModeResize Mode = "resize"
)

// Store is the single owner of all mutable editing state.
type Store struct {
	cfg       model.ModuleConfig
	origin    geometry.Point
	shapes    []model.Shape
	selection map[string]bool
	history   *History
	mode      Mode

	// The one active gesture; nil when idle. Starting a gesture while one
	// is active is impossible by construction.
	gesture *gesture

	// warnFn surfaces non-blocking advisories (sheet-width violations) to
	// the UI. Optional.
	warnFn func(string)
}

// New creates a store, generates the initial shapes, and seeds the history.
func New(cfg model.ModuleConfig, origin geometry.Point) *Store {
	s := &Store{
		cfg:       cfg.Clamped(),
		origin:    origin,
		selection: make(map[string]bool),
		mode:      ModeMove,
	}
	s.shapes = layout.Generate(s.cfg, s.origin)
	s.history = NewHistory(s.shapes, s.cfg)
	return s
}

// SetWarnFunc installs the advisory callback.
func (s *Store) SetWarnFunc(fn func(string)) { s.warnFn = fn }

func (s *Store) warn(msg string) {
	if s.warnFn != nil {
		s.warnFn(msg)
	}
}

// Config returns a deep copy of the current config.
func (s *Store) Config() model.ModuleConfig { return s.cfg.Clone() }

// Shapes returns the live shape slice. Callers treat it as read-only; the
// store replaces it wholesale on regeneration.
func (s *Store) Shapes() []model.Shape { return s.shapes }

// Origin returns the drawing origin the shapes were generated at.
func (s *Store) Origin() geometry.Point { return s.origin }

// Mode returns the current interaction mode.
func (s *Store) Mode() Mode { return s.mode }

// SetMode switches the interaction mode. An active gesture is rolled back
// first so the mode change can never strand a half-applied drag.
func (s *Store) SetMode(m Mode) {
	if s.gesture != nil {
		s.rollback()
	}
	s.mode = m
}

// SetConfig replaces the config wholesale, regenerates, and records history.
func (s *Store) SetConfig(cfg model.ModuleConfig) {
	if s.gesture != nil {
		s.rollback()
	}
	s.cfg = cfg.Clamped()
	s.regenerate()
	s.history.Push(s.shapes, s.cfg, "edit config")
}

// regenerate rebuilds the shape set from the current config. Shapes are
// replaced wholesale, never patched.
func (s *Store) regenerate() {
	s.shapes = layout.Generate(s.cfg, s.origin)
}

// === SELECTION ===

// Select adds a shape ID to the selection set.
func (s *Store) Select(id string) { s.selection[id] = true }

// ClearSelection empties the selection set.
func (s *Store) ClearSelection() { s.selection = make(map[string]bool) }

// IsSelected reports whether a shape is selected.
func (s *Store) IsSelected(id string) bool { return s.selection[id] }

// SelectedIDs returns the selected shape IDs in shape declaration order.
func (s *Store) SelectedIDs() []string {
	var out []string
	for _, sh := range s.shapes {
		if s.selection[sh.ID] {
			out = append(out, sh.ID)
		}
	}
	return out
}

// === HISTORY ===

// History exposes the ledger for inspection (CanUndo/CanRedo in toolbars).
func (s *Store) History() *History { return s.history }

// Undo restores the previous snapshot. No-op when at the beginning.
func (s *Store) Undo() bool {
	if s.gesture != nil {
		s.rollback()
	}
	e, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.shapes = e.Shapes
	s.cfg = e.Config
	return true
}

// Redo restores the next snapshot. No-op when at the end.
func (s *Store) Redo() bool {
	if s.gesture != nil {
		s.rollback()
	}
	e, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.shapes = e.Shapes
	s.cfg = e.Config
	return true
}
