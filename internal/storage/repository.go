package storage

import "fmt"

// Identifiable is implemented by values that can live in a Repository.
type Identifiable interface {
	EntityID() string
}

// Repository keeps a list of T under a single key of a Store.
// Every operation reads and rewrites the whole list; it is meant for small
// collections such as saved game state.
type Repository[T Identifiable] struct {
	store *Store
	key   string
}

// NewRepository creates a repository that persists under key.
func NewRepository[T Identifiable](store *Store, key string) *Repository[T] {
	return &Repository[T]{store: store, key: key}
}

// Key returns the store key the repository writes to.
func (r *Repository[T]) Key() string {
	return r.key
}

// FindAll returns every stored item in saved order.
// A missing or unreadable list yields an empty slice.
func (r *Repository[T]) FindAll() ([]T, error) {
	var items []T
	ok, err := r.store.Get(r.key, &items)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []T{}, nil
	}
	return items, nil
}

// FindByID returns the item with the given ID.
// The boolean is false if no such item exists.
func (r *Repository[T]) FindByID(id string) (T, bool, error) {
	var zero T

	items, err := r.FindAll()
	if err != nil {
		return zero, false, err
	}

	for _, item := range items {
		if item.EntityID() == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Save replaces the item with the same ID in place, or appends it.
func (r *Repository[T]) Save(item T) error {
	items, err := r.FindAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := r.store.Set(r.key, items); err != nil {
		return fmt.Errorf("repository %s: %w", r.key, err)
	}
	return nil
}

// Delete removes the item with the given ID, if present.
func (r *Repository[T]) Delete(id string) error {
	items, err := r.FindAll()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}

	if err := r.store.Set(r.key, kept); err != nil {
		return fmt.Errorf("repository %s: %w", r.key, err)
	}
	return nil
}

// ReplaceAll overwrites the stored list with items.
func (r *Repository[T]) ReplaceAll(items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := r.store.Set(r.key, items); err != nil {
		return fmt.Errorf("repository %s: %w", r.key, err)
	}
	return nil
}
