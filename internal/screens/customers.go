package screens

import (
	"context"
	"fmt"

	"github.com/abcpharmacy/backoffice-golang/internal/api"
	"github.com/abcpharmacy/backoffice-golang/internal/collection"
	"github.com/abcpharmacy/backoffice-golang/internal/form"
	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

// Customers is the customer management screen: list, add, edit, delete.
type Customers struct {
	client *api.Client

	Form form.Controller
	rows []models.Customer
}

// NewCustomers builds the customers screen controller.
func NewCustomers(client *api.Client) *Customers {
	return &Customers{client: client}
}

// Rows returns the customers currently displayed.
func (s *Customers) Rows() []models.Customer { return s.rows }

// Fetch retrieves the customer list without touching the screen's state,
// so it can run off the goroutine that owns the screen.
func (s *Customers) Fetch(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.client.ListCustomers(ctx)
	if err != nil {
		return nil, fetchFailed(err)
	}
	return customers, nil
}

// Apply replaces the displayed rows with a fetched list.
func (s *Customers) Apply(rows []models.Customer) { s.rows = rows }

// Load is Fetch and Apply in one step, for callers without an event loop.
// On failure the previous rows stay.
func (s *Customers) Load(ctx context.Context) error {
	rows, err := s.Fetch(ctx)
	if err != nil {
		return err
	}
	s.Apply(rows)
	return nil
}

// OpenAdd opens the add dialog with an empty draft.
func (s *Customers) OpenAdd() {
	s.Form.OpenAdd(form.Draft{"name": "", "email": "", "phone": ""})
}

// OpenEdit opens the edit dialog with the draft populated from the row.
func (s *Customers) OpenEdit(c models.Customer) {
	s.Form.OpenEdit(c.ID, form.Draft{
		"name":  c.Name,
		"email": c.Email,
		"phone": c.Phone,
	})
}

// OpenDelete opens the delete confirmation for the row.
func (s *Customers) OpenDelete(c models.Customer) {
	s.Form.OpenDelete(c.ID)
}

// StageSubmit reads the open dialog's draft and moves the form to
// Submitting. The returned commit performs only the API call; hand its
// outcome to Resolve on the goroutine that owns the screen. A nil commit
// means no dialog was open.
func (s *Customers) StageSubmit() (Commit, error) {
	switch s.Form.Mode() {
	case form.Adding:
		input := s.draftInput()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			created, err := s.client.CreateCustomer(ctx, input)
			if err != nil {
				return nil, mutationFailed("Failed to add customer", err)
			}
			return func() { s.rows = collection.Insert(s.rows, created) }, nil
		}, nil

	case form.Editing:
		input := s.draftInput()
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			updated, err := s.client.UpdateCustomer(ctx, target, input)
			if err != nil {
				return nil, mutationFailed("Failed to update customer", err)
			}
			return func() { s.rows = collection.Replace(s.rows, updated) }, nil
		}, nil

	case form.ConfirmingDelete:
		target := s.Form.Target()
		s.Form.BeginSubmit()
		return func(ctx context.Context) (func(), error) {
			if err := s.client.DeleteCustomer(ctx, target); err != nil {
				return nil, mutationFailed(fmt.Sprintf("Failed to delete customer %d", target), err)
			}
			return func() { s.rows = collection.Remove(s.rows, target) }, nil
		}, nil
	}
	return nil, nil
}

// Submit stages, commits and resolves in one call, for callers without an
// event loop. Only a confirmed success folds the result into the rows.
func (s *Customers) Submit(ctx context.Context) error {
	commit, err := s.StageSubmit()
	if err != nil || commit == nil {
		return err
	}
	apply, err := commit(ctx)
	return Resolve(&s.Form, apply, err)
}

// draftInput carries the draft over as-is: customers have no numeric
// fields, and shape validation happens at the client boundary.
func (s *Customers) draftInput() api.CustomerInput {
	return api.CustomerInput{
		Name:  s.Form.Field("name"),
		Email: s.Form.Field("email"),
		Phone: s.Form.Field("phone"),
	}
}
