// Package imui is a small immediate-mode widget layer. Every frame is drawn
// from scratch: open a frame, emit labels and list rows top to bottom, close
// the frame. Nothing is retained between frames.
//
// Calls made in the wrong order (a list inside a list, a list row outside a
// list, a label before Begin) are programming errors and panic with a
// *ContractError.
package imui

import "fmt"

// Emphasis is the visual style of a row.
type Emphasis int

const (
	Regular Emphasis = iota
	Highlighted
)

func (e Emphasis) String() string {
	if e == Highlighted {
		return "highlighted"
	}
	return "regular"
}

// Surface is the terminal capability the renderer draws on.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// Move places the write cursor at row, col.
	Move(row, col int)
	// Write draws text at the write cursor in the given emphasis.
	Write(text string, e Emphasis)
}

// State is the renderer's position in the frame lifecycle.
type State int

const (
	StateIdle State = iota
	StateFrameOpen
	StateListOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFrameOpen:
		return "frame open"
	case StateListOpen:
		return "list open"
	default:
		return "unknown"
	}
}

// ContractError is the panic value for an operation called in a state that
// does not allow it.
type ContractError struct {
	Op    string
	State State
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("imui: %s not allowed while %s", e.Op, e.State)
}

// UI tracks the write cursor and the open list context for one surface.
type UI struct {
	surface  Surface
	state    State
	row      int
	col      int
	selected int
}

// New returns an idle UI drawing on s.
func New(s Surface) *UI {
	return &UI{surface: s}
}

// State returns the current lifecycle state.
func (u *UI) State() State {
	return u.state
}

// Cursor returns the row and column the next label will be drawn at.
func (u *UI) Cursor() (row, col int) {
	return u.row, u.col
}

func (u *UI) require(op string, allowed ...State) {
	for _, s := range allowed {
		if u.state == s {
			return
		}
	}
	panic(&ContractError{Op: op, State: u.state})
}

// Begin opens a frame with the write cursor at row, col.
func (u *UI) Begin(row, col int) {
	u.require("Begin", StateIdle)
	u.row = row
	u.col = col
	u.state = StateFrameOpen
}

// Label draws text at the cursor and advances one row.
func (u *UI) Label(text string, e Emphasis) {
	u.require("Label", StateFrameOpen, StateListOpen)
	u.surface.Move(u.row, u.col)
	u.surface.Write(text, e)
	u.row++
}

// BeginList opens a list context whose row at index selected is drawn
// highlighted. Lists do not nest.
func (u *UI) BeginList(selected int) {
	u.require("BeginList", StateFrameOpen)
	u.selected = selected
	u.state = StateListOpen
}

// ListElement draws one list row, highlighted iff index is the selected
// index of the open list. It reports whether the row was highlighted.
func (u *UI) ListElement(text string, index int) bool {
	u.require("ListElement", StateListOpen)

	highlighted := index == u.selected
	e := Regular
	if highlighted {
		e = Highlighted
	}
	u.Label(text, e)
	return highlighted
}

// EndList closes the open list context.
func (u *UI) EndList() {
	u.require("EndList", StateListOpen)
	u.state = StateFrameOpen
}

// End closes the frame.
func (u *UI) End() {
	u.require("End", StateFrameOpen)
	u.state = StateIdle
}
