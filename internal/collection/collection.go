// Package collection holds the pure reducers that fold a confirmed mutation
// result into a screen's in-memory slice. Nothing here talks to the network;
// callers must only invoke these after the corresponding API call succeeded.
package collection

// Keyed is any entity with a primary identifier.
type Keyed interface {
	Key() uint
}

// Insert appends created to the collection. If an element with the same
// identifier is already present, that element is replaced instead, so a
// double-submitted create cannot produce duplicate rows.
func Insert[T Keyed](list []T, created T) []T {
	for i, item := range list {
		if item.Key() == created.Key() {
			next := make([]T, len(list))
			copy(next, list)
			next[i] = created
			return next
		}
	}
	next := make([]T, 0, len(list)+1)
	next = append(next, list...)
	return append(next, created)
}

// Replace substitutes the element whose identifier matches updated's.
// When no element matches, the collection is returned unchanged.
func Replace[T Keyed](list []T, updated T) []T {
	for i, item := range list {
		if item.Key() == updated.Key() {
			next := make([]T, len(list))
			copy(next, list)
			next[i] = updated
			return next
		}
	}
	return list
}

// Remove filters out the element with the given identifier.
// When no element matches, the collection is returned unchanged.
func Remove[T Keyed](list []T, id uint) []T {
	for i, item := range list {
		if item.Key() == id {
			next := make([]T, 0, len(list)-1)
			next = append(next, list[:i]...)
			return append(next, list[i+1:]...)
		}
	}
	return list
}
