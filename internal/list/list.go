// Package list holds the in-memory task list: the ordered tasks, the
// input buffer for a new task, and the interaction mode.
package list

import "errors"

// ErrOutOfRange reports a task index with no task behind it.
var ErrOutOfRange = errors.New("task index out of range")

// Mode selects how input is interpreted.
type Mode int

const (
	// ModeNormal handles navigation and the quit key.
	ModeNormal Mode = iota
	// ModeInput composes a new task in the input buffer.
	ModeInput
	// ModeUpdate applies character edits to an existing task's text.
	ModeUpdate
)

// Task is one to-do entry. ID always equals the task's position in the
// list; deletes renumber the tail to keep it that way.
type Task struct {
	ID      int    `json:"id"`
	Text    string `json:"text"`
	Done    bool   `json:"done"`
	Editing bool   `json:"-"`
}

// List owns the task slice, the input buffer and its cursor, and the mode.
// All operations are synchronous and report bad indices via ErrOutOfRange
// instead of panicking.
type List struct {
	tasks  []Task
	input  []rune
	cursor int
	mode   Mode
}

// New builds a list from loaded tasks. IDs are renumbered and edit flags
// cleared, so stale stored values cannot break the positional invariant.
func New(tasks []Task) *List {
	l := &List{tasks: tasks}
	for i := range l.tasks {
		l.tasks[i].ID = i
		l.tasks[i].Editing = false
	}
	return l
}

// Tasks returns the backing slice in display order.
func (l *List) Tasks() []Task { return l.tasks }

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Mode returns the current interaction mode.
func (l *List) Mode() Mode { return l.mode }

// SetMode switches the interaction mode.
func (l *List) SetMode(m Mode) { l.mode = m }

// Input returns the in-progress text for a new task.
func (l *List) Input() string { return string(l.input) }

// Cursor returns the input buffer cursor as a rune index in [0, len].
func (l *List) Cursor() int { return l.cursor }

// Add appends a new task built from the input buffer and clears the
// buffer. Empty text is accepted and produces a blank task.
func (l *List) Add() {
	l.tasks = append(l.tasks, Task{ID: len(l.tasks), Text: string(l.input)})
	l.input = l.input[:0]
	l.cursor = 0
}

// Delete removes the task at index and renumbers every later task so ID
// equals position again.
func (l *List) Delete(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrOutOfRange
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	for i := index; i < len(l.tasks); i++ {
		l.tasks[i].ID = i
	}
	return nil
}

// Toggle flips the done flag of the task at index.
func (l *List) Toggle(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrOutOfRange
	}
	l.tasks[index].Done = !l.tasks[index].Done
	return nil
}

// BeginEdit marks the task at index as the edit target, clearing the flag
// on every other task, and switches to ModeUpdate.
func (l *List) BeginEdit(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return ErrOutOfRange
	}
	for i := range l.tasks {
		l.tasks[i].Editing = i == index
	}
	l.mode = ModeUpdate
	return nil
}

// EndEdit clears every edit flag and returns to ModeNormal.
func (l *List) EndEdit() {
	for i := range l.tasks {
		l.tasks[i].Editing = false
	}
	l.mode = ModeNormal
}

// EditingIndex returns the index of the task being edited, or -1.
func (l *List) EditingIndex() int {
	for i := range l.tasks {
		if l.tasks[i].Editing {
			return i
		}
	}
	return -1
}

// AppendEditRune appends one rune to the text of the task being edited.
// No-op when no task is marked.
func (l *List) AppendEditRune(r rune) {
	if i := l.EditingIndex(); i >= 0 {
		l.tasks[i].Text += string(r)
	}
}

// BackspaceEdit removes the last rune from the text of the task being
// edited. Works on rune boundaries so multi-byte text is never split.
func (l *List) BackspaceEdit() {
	i := l.EditingIndex()
	if i < 0 {
		return
	}
	runes := []rune(l.tasks[i].Text)
	if len(runes) == 0 {
		return
	}
	l.tasks[i].Text = string(runes[:len(runes)-1])
}

// InsertRune inserts one rune into the input buffer at the cursor and
// advances the cursor past it.
func (l *List) InsertRune(r rune) {
	l.input = append(l.input[:l.cursor], append([]rune{r}, l.input[l.cursor:]...)...)
	l.cursor++
}

// DeleteBeforeCursor removes the rune left of the cursor and retreats the
// cursor. No-op at the start of the buffer.
func (l *List) DeleteBeforeCursor() {
	if l.cursor == 0 {
		return
	}
	l.input = append(l.input[:l.cursor-1], l.input[l.cursor:]...)
	l.cursor--
}

// MoveCursor shifts the cursor by delta, clamped to [0, len(buffer)].
func (l *List) MoveCursor(delta int) {
	l.cursor = clamp(l.cursor+delta, 0, len(l.input))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
