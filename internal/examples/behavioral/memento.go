package behavioral

import (
	"errors"

	"patternlab/internal/output"
)

// ErrNothingToUndo is returned by History.Undo when no snapshot is left.
var ErrNothingToUndo = errors.New("nothing to undo")

// Snapshot is an opaque editor state.
type Snapshot struct {
	content string
	cursor  int
}

// Editor is the originator whose state is saved and restored.
type Editor struct {
	content string
	cursor  int
}

// Type inserts text at the cursor and moves the cursor past it.
func (e *Editor) Type(text string) {
	e.content = e.content[:e.cursor] + text + e.content[e.cursor:]
	e.cursor += len(text)
}

// Content returns the current text.
func (e *Editor) Content() string { return e.content }

// Save captures the current state.
func (e *Editor) Save() Snapshot {
	return Snapshot{content: e.content, cursor: e.cursor}
}

// Restore replaces the current state with s.
func (e *Editor) Restore(s Snapshot) {
	e.content = s.content
	e.cursor = s.cursor
}

// History is the caretaker holding snapshots without inspecting them.
type History struct {
	snapshots []Snapshot
}

// Push records a snapshot.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
}

// Undo restores the most recent snapshot into editor.
func (h *History) Undo(editor *Editor) error {
	if len(h.snapshots) == 0 {
		return ErrNothingToUndo
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	editor.Restore(last)
	return nil
}

func demoMemento(p *output.Printer) error {
	editor := &Editor{}
	history := &History{}

	for _, word := range []string{"Dear customer,", " your refund", " was denied."} {
		history.Push(editor.Save())
		editor.Type(word)
		p.Linef("typed: %q", editor.Content())
	}

	for range 3 {
		if err := history.Undo(editor); err != nil {
			return err
		}
		p.Linef("undo: %q", editor.Content())
	}

	if err := history.Undo(editor); err != nil {
		p.Warning(err.Error())
	}
	return nil
}
