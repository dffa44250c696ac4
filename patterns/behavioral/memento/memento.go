// Package memento captures an editor's text so it can be restored later
// without exposing the editor's internals to the caretaker.
package memento

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sghaida/patterns/demo"
)

// EditorMemento is an opaque snapshot of an Editor.
type EditorMemento struct {
	text string
}

// Editor is the originator.
type Editor struct {
	Text string
}

// CreateMemento snapshots the current text.
func (e *Editor) CreateMemento() EditorMemento { return EditorMemento{text: e.Text} }

// Restore replaces the text with the snapshot in m.
func (e *Editor) Restore(m EditorMemento) { e.Text = m.text }

// IndexOutOfRangeError is returned by History.Get for an index that was
// never recorded. Asking for one is a caller bug.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e IndexOutOfRangeError) Error() string {
	return "memento: index " + strconv.Itoa(e.Index) + " out of range [0," + strconv.Itoa(e.Len) + ")"
}

// History is the caretaker; it stores mementos in save order.
type History struct {
	mementos []EditorMemento
}

// Save appends m to the history.
func (h *History) Save(m EditorMemento) { h.mementos = append(h.mementos, m) }

// Len is the number of saved mementos.
func (h *History) Len() int { return len(h.mementos) }

// Get returns the memento saved at index.
func (h *History) Get(index int) (EditorMemento, error) {
	if index < 0 || index >= len(h.mementos) {
		return EditorMemento{}, IndexOutOfRangeError{Index: index, Len: len(h.mementos)}
	}
	return h.mementos[index], nil
}

// Demo saves two versions of a text and restores the first.
var Demo = demo.Define("memento", demo.Behavioral,
	"Capture and restore an object's state without exposing it",
	func(w io.Writer) error {
		history := &History{}
		editor := &Editor{Text: "Initial text"}

		history.Save(editor.CreateMemento())

		editor.Text = "Edited text"
		history.Save(editor.CreateMemento())

		fmt.Fprintf(w, "Current text: %s\n", editor.Text)

		m, err := history.Get(0)
		if err != nil {
			return err
		}
		editor.Restore(m)
		fmt.Fprintf(w, "Restored text: %s\n", editor.Text)
		return nil
	})
