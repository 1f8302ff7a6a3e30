package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
)

func TestOpenAddResetsDraft(t *testing.T) {
	var c form.Controller
	c.OpenAdd(form.Draft{"name": "", "price": ""})

	assert.Equal(t, form.Adding, c.Mode())
	assert.Equal(t, uint(0), c.Target())
	assert.Equal(t, "", c.Field("name"))

	c.SetField("name", "Aspirin")
	assert.Equal(t, "Aspirin", c.Field("name"))
}

func TestOpenEditPopulatesDraftFromEntity(t *testing.T) {
	var c form.Controller
	c.OpenEdit(7, form.Draft{"price": "9.99"})

	assert.Equal(t, form.Editing, c.Mode())
	assert.Equal(t, uint(7), c.Target())
	assert.Equal(t, "9.99", c.Field("price"))
}

func TestDraftIsCopiedNotShared(t *testing.T) {
	seed := form.Draft{"name": "original"}
	var c form.Controller
	c.OpenEdit(1, seed)
	c.SetField("name", "changed")
	assert.Equal(t, "original", seed["name"])
}

func TestCancelDiscardsEverything(t *testing.T) {
	var c form.Controller
	c.OpenEdit(7, form.Draft{"price": "9.99"})
	c.SetField("price", "12.50")

	c.Cancel()

	assert.Equal(t, form.Idle, c.Mode())
	assert.Equal(t, uint(0), c.Target())
	assert.Equal(t, "", c.Field("price"))
}

func TestSubmitLifecycle(t *testing.T) {
	var c form.Controller
	c.OpenEdit(7, form.Draft{"price": "12.50"})

	require.True(t, c.BeginSubmit())
	assert.Equal(t, form.Submitting, c.Mode())

	c.Finish(true)
	assert.Equal(t, form.Idle, c.Mode())
}

func TestFailedSubmitReturnsToOriginatingDialog(t *testing.T) {
	var c form.Controller
	c.OpenAdd(form.Draft{"stock": "10"})

	require.True(t, c.BeginSubmit())
	c.Finish(false)

	assert.Equal(t, form.Adding, c.Mode(), "failure keeps the dialog open")
	assert.Equal(t, "10", c.Field("stock"), "failure keeps the user's input")
}

func TestCancelIgnoredWhileSubmitting(t *testing.T) {
	var c form.Controller
	c.OpenEdit(7, form.Draft{"stock": "8"})
	require.True(t, c.BeginSubmit())

	c.Cancel()
	assert.Equal(t, form.Submitting, c.Mode(), "an in-flight submit cannot be cancelled")

	c.Finish(false)
	assert.Equal(t, form.Editing, c.Mode(), "the outcome still finds its dialog")
	assert.Equal(t, "8", c.Field("stock"))
}

func TestBeginSubmitFromIdleIsRejected(t *testing.T) {
	var c form.Controller
	assert.False(t, c.BeginSubmit())
	assert.Equal(t, form.Idle, c.Mode())
}

func TestOpenDeleteTargetsEntity(t *testing.T) {
	var c form.Controller
	c.OpenDelete(42)
	assert.Equal(t, form.ConfirmingDelete, c.Mode())
	assert.Equal(t, uint(42), c.Target())
}
