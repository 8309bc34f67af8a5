package core

// Rate is the distance every entity drifts per elapsed millisecond, on both axes.
const Rate = 0.01

// Entity is a simulated object with a stable identifier and a 2D position.
type Entity struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// EntityID returns the entity's identifier.
// It lets entities be stored in a storage.Repository.
func (e Entity) EntityID() string {
	return e.ID
}

// EntityStore is an ordered collection of entities keyed by ID.
// Enumeration order is insertion order: replacing an entity keeps its slot,
// new IDs are appended. Entities never leave the store by reference, callers
// always receive copies.
//
// EntityStore is not safe for concurrent use. It is meant to be driven from
// a single loop callback.
type EntityStore struct {
	entities []Entity
	index    map[string]int // ID -> position in entities
}

// NewEntityStore creates an empty entity store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		index: make(map[string]int),
	}
}

// Add inserts the entity or replaces the one stored under the same ID.
func (s *EntityStore) Add(e Entity) {
	if i, ok := s.index[e.ID]; ok {
		s.entities[i] = e
		return
	}
	s.index[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
}

// Remove deletes the entity with the given ID.
// Removing an unknown ID is a no-op.
func (s *EntityStore) Remove(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}

	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]
	delete(s.index, id)

	// Shift indices of everything that moved down
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j].ID] = j
	}
}

// Get returns a copy of the entity with the given ID.
// The boolean is false if no such entity exists.
func (s *EntityStore) Get(id string) (Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entity{}, false
	}
	return s.entities[i], true
}

// All returns a snapshot of every stored entity in insertion order.
// The returned slice is never shared with the store.
func (s *EntityStore) All() []Entity {
	snapshot := make([]Entity, len(s.entities))
	copy(snapshot, s.entities)
	return snapshot
}

// Len returns the number of stored entities.
func (s *EntityStore) Len() int {
	return len(s.entities)
}

// Update advances every entity by deltaMillis*Rate on both axes.
func (s *EntityStore) Update(deltaMillis float64) {
	step := deltaMillis * Rate
	for i := range s.entities {
		s.entities[i].X += step
		s.entities[i].Y += step
	}
}
