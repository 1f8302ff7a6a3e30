package models

// Customer mirrors the pharmacy API's customer resource.
// The server marshals entities with Go's default (PascalCase) field names,
// so the wire tags here must stay PascalCase.
type Customer struct {
	ID    uint   `json:"ID"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
}

// Key returns the primary identifier used by collection reducers.
func (c Customer) Key() uint { return c.ID }
