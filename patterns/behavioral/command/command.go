// Package command wraps editor operations in objects so they can be
// executed later and undone in reverse order.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/sghaida/patterns/demo"
)

// Command is an undoable operation.
type Command interface {
	Execute()
	Undo()
}

// Clipboard holds the text moved between commands.
type Clipboard struct {
	Content string
}

// TextEditor is the receiver all commands act on.
type TextEditor struct {
	content string
}

// NewTextEditor returns an editor holding initial.
func NewTextEditor(initial string) *TextEditor {
	return &TextEditor{content: initial}
}

// Content is the current text.
func (e *TextEditor) Content() string { return e.content }

// Cut removes the last character and returns it.
func (e *TextEditor) Cut() string {
	if e.content == "" {
		return ""
	}
	r := []rune(e.content)
	last := string(r[len(r)-1])
	e.content = string(r[:len(r)-1])
	return last
}

// Copy returns the whole content.
func (e *TextEditor) Copy() string { return e.content }

// Write appends text.
func (e *TextEditor) Write(text string) { e.content += text }

// Delete removes text if the content ends with it.
func (e *TextEditor) Delete(text string) { e.content = strings.TrimSuffix(e.content, text) }

// CutCommand moves the editor's text into the clipboard.
type CutCommand struct {
	Editor    *TextEditor
	Clipboard *Clipboard
}

// Execute cuts the editor's text into the clipboard.
func (c *CutCommand) Execute() { c.Clipboard.Content = c.Editor.Cut() }

// Undo writes the cut text back into the editor.
func (c *CutCommand) Undo() {
	c.Editor.Write(c.Clipboard.Content)
	c.Clipboard.Content = ""
}

// CopyCommand copies the editor's text into the clipboard.
type CopyCommand struct {
	Editor    *TextEditor
	Clipboard *Clipboard
}

// Execute and Undo fill and clear the clipboard.
func (c *CopyCommand) Execute() { c.Clipboard.Content = c.Editor.Copy() }
func (c *CopyCommand) Undo()    { c.Clipboard.Content = "" }

// PasteCommand appends the clipboard content to the editor.
type PasteCommand struct {
	Editor    *TextEditor
	Clipboard *Clipboard
}

// Execute appends the clipboard; Undo removes it again.
func (c *PasteCommand) Execute() { c.Editor.Write(c.Clipboard.Content) }
func (c *PasteCommand) Undo()    { c.Editor.Delete(c.Clipboard.Content) }

// Invoker executes commands and remembers them for Undo.
type Invoker struct {
	history []Command
}

// Execute runs cmd and pushes it on the history.
func (i *Invoker) Execute(cmd Command) {
	i.history = append(i.history, cmd)
	cmd.Execute()
}

// Undo reverts the most recent command. With an empty history it does nothing.
func (i *Invoker) Undo() {
	n := len(i.history)
	if n == 0 {
		return
	}
	last := i.history[n-1]
	i.history = i.history[:n-1]
	last.Undo()
}

// Len is the number of commands that can still be undone.
func (i *Invoker) Len() int { return len(i.history) }

// Demo cuts, copies and pastes "Baeldung", then undoes the paste.
var Demo = demo.Define("command", demo.Behavioral,
	"Encapsulate editor operations as undoable command objects",
	func(w io.Writer) error {
		clipboard := &Clipboard{}
		editor := NewTextEditor("Baeldung")
		invoker := &Invoker{}

		invoker.Execute(&CutCommand{Editor: editor, Clipboard: clipboard})
		invoker.Execute(&CopyCommand{Editor: editor, Clipboard: clipboard})
		invoker.Execute(&PasteCommand{Editor: editor, Clipboard: clipboard})
		fmt.Fprintln(w, editor.Content())

		invoker.Undo()
		fmt.Fprintln(w, editor.Content())
		return nil
	})
