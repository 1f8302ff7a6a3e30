// Package form is the modal state machine every screen drives: which dialog
// is open, which entity it targets, and the draft buffer being edited.
// Field values stay strings while typing; coercion to canonical types only
// happens at submit, and a coercion failure blocks the network call.
package form

import "fmt"

// Mode is the modal state of one screen.
type Mode int

const (
	Idle Mode = iota
	Adding
	Editing
	ConfirmingDelete
	Submitting
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	case ConfirmingDelete:
		return "confirming-delete"
	case Submitting:
		return "submitting"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Draft is the in-progress copy of an entity's fields, as typed.
type Draft map[string]string

func (d Draft) clone() Draft {
	next := make(Draft, len(d))
	for k, v := range d {
		next[k] = v
	}
	return next
}

// Controller mediates open/close transitions for add, edit and delete
// dialogs. The zero value is an idle controller.
type Controller struct {
	mode     Mode
	resumeTo Mode // modal state to fall back to when a submit fails
	target   uint
	draft    Draft
}

// Mode returns the current modal state.
func (c *Controller) Mode() Mode { return c.mode }

// Target returns the identifier of the entity being edited or deleted.
func (c *Controller) Target() uint { return c.target }

// Field returns one draft field's current value.
func (c *Controller) Field(name string) string { return c.draft[name] }

// Draft returns the live draft buffer.
func (c *Controller) Draft() Draft { return c.draft }

// OpenAdd enters Adding with a fresh draft seeded from defaults.
func (c *Controller) OpenAdd(defaults Draft) {
	c.mode = Adding
	c.target = 0
	c.draft = defaults.clone()
}

// OpenEdit enters Editing targeting the given entity, with the draft
// populated from its current (stringified) field values.
func (c *Controller) OpenEdit(target uint, fields Draft) {
	c.mode = Editing
	c.target = target
	c.draft = fields.clone()
}

// OpenDelete enters ConfirmingDelete targeting the given entity.
func (c *Controller) OpenDelete(target uint) {
	c.mode = ConfirmingDelete
	c.target = target
	c.draft = nil
}

// SetField updates one field in the draft buffer. No validation happens
// here; bad input is only rejected at submit.
func (c *Controller) SetField(name, value string) {
	if c.draft == nil {
		c.draft = Draft{}
	}
	c.draft[name] = value
}

// BeginSubmit moves a modal state into Submitting. It reports false when
// no dialog is open, so a stray submit from an idle screen does nothing.
func (c *Controller) BeginSubmit() bool {
	switch c.mode {
	case Adding, Editing, ConfirmingDelete:
		c.resumeTo = c.mode
		c.mode = Submitting
		return true
	default:
		return false
	}
}

// Finish resolves a Submitting state: back to Idle on success (draft
// discarded), back to the originating dialog on failure so the user's
// input survives the error.
func (c *Controller) Finish(ok bool) {
	if c.mode != Submitting {
		return
	}
	if ok {
		c.reset()
		return
	}
	c.mode = c.resumeTo
}

// Fail is Finish(false) for errors raised before Submitting was entered,
// e.g. a draft that does not coerce. Keeps the dialog open either way.
func (c *Controller) Fail() { c.Finish(false) }

// Cancel closes an open dialog, discarding the draft. While Submitting it
// is a no-op: an in-flight submit resolves only through Finish, so its
// outcome always finds the dialog it left. No network call is ever made
// from here.
func (c *Controller) Cancel() {
	if c.mode == Submitting {
		return
	}
	c.reset()
}

func (c *Controller) reset() {
	c.mode = Idle
	c.resumeTo = Idle
	c.target = 0
	c.draft = nil
}
