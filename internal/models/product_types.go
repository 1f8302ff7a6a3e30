package models

// Product mirrors the pharmacy API's product resource.
type Product struct {
	ID       uint    `json:"ID"`
	Name     string  `json:"Name"`
	Category string  `json:"Category"`
	Price    float64 `json:"Price"`
}

// Key returns the primary identifier used by collection reducers.
func (p Product) Key() uint { return p.ID }
