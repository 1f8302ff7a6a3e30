package screens

import (
	"context"

	"github.com/abcpharmacy/backoffice-golang/internal/form"
)

// Commit is the network half of a staged submit. A screen's StageSubmit
// returns one after coercing the draft and moving the form to Submitting.
// The commit is safe to run off the goroutine that owns the screen: it
// touches neither the form nor the rows, only the API client. It returns
// the fold to apply once back on the owning goroutine.
type Commit func(context.Context) (func(), error)

// Resolve finishes a staged submit with the commit's outcome. On success
// the fold runs and the dialog closes; on failure the dialog reopens with
// the user's draft intact. Call it on the goroutine that owns the screen.
func Resolve(f *form.Controller, apply func(), err error) error {
	if err != nil {
		f.Finish(false)
		return err
	}
	if apply != nil {
		apply()
	}
	f.Finish(true)
	return nil
}
