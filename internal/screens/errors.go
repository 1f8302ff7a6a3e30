// Package screens contains one controller per dashboard screen. Each
// controller owns its collection exclusively, loads it through the API
// client and the join layer, and folds confirmed mutations back in with
// the collection reducers. Nothing here renders; the TUI reads rows and
// modal state and calls back in on user actions.
package screens

import (
	"fmt"
	"log"
)

// FetchError wraps a failed list/get call. The screen keeps whatever it was
// already showing and the cause goes to the log, not to the user.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch failed: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed create/update/delete. The dialog stays open,
// the collection is untouched and Message is shown to the user.
type MutationError struct {
	Message string
	Err     error
}

func (e *MutationError) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }
func (e *MutationError) Unwrap() error { return e.Err }

func fetchFailed(err error) error {
	log.Printf("fetch failed: %v", err)
	return &FetchError{Err: err}
}

func mutationFailed(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return &MutationError{Message: message, Err: err}
}
