package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Stock is a single store entry.
type Stock struct {
	Item     string
	Quantity int
}

// Store maps item names to quantities on hand and keeps insertion order.
// Re-setting an existing item keeps its original position.
type Store struct {
	entries *orderedmap.OrderedMap[string, int]
}

func NewStore() *Store {
	return &Store{entries: orderedmap.New[string, int]()}
}

// NewStoreFrom builds a store from stocks in the given order. Later
// duplicates overwrite earlier quantities.
func NewStoreFrom(stocks ...Stock) *Store {
	s := NewStore()
	for _, st := range stocks {
		s.Set(st.Item, st.Quantity)
	}
	return s
}

func (s *Store) init() {
	if s.entries == nil {
		s.entries = orderedmap.New[string, int]()
	}
}

func (s *Store) Get(item string) (int, bool) {
	if s == nil || s.entries == nil {
		return 0, false
	}
	return s.entries.Get(item)
}

func (s *Store) Has(item string) bool {
	_, ok := s.Get(item)
	return ok
}

func (s *Store) Set(item string, quantity int) {
	s.init()
	s.entries.Set(item, quantity)
}

func (s *Store) Delete(item string) {
	if s == nil || s.entries == nil {
		return
	}
	s.entries.Delete(item)
}

func (s *Store) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// Items returns a snapshot of the entries in insertion order.
func (s *Store) Items() []Stock {
	items := make([]Stock, 0, s.Len())
	if s.Len() == 0 {
		return items
	}
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, Stock{Item: pair.Key, Quantity: pair.Value})
	}
	return items
}

func (s *Store) Clone() *Store {
	return NewStoreFrom(s.Items()...)
}

// Equal reports whether both stores hold the same quantities. Order is
// not compared.
func (s *Store) Equal(other *Store) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, st := range s.Items() {
		q, ok := other.Get(st.Item)
		if !ok || q != st.Quantity {
			return false
		}
	}
	return true
}

func (s *Store) MarshalJSON() ([]byte, error) {
	s.init()
	return s.entries.MarshalJSON()
}

func (s *Store) UnmarshalJSON(data []byte) error {
	entries := orderedmap.New[string, int]()
	if err := entries.UnmarshalJSON(data); err != nil {
		return err
	}
	s.entries = entries
	return nil
}
