package dog

import (
	"iter"
	"slices"
)

// Collection is an ordered, immutable set of registry records.
// Every call to All starts a new traversal from the first record.
type Collection struct {
	dogs []Dog
}

// NewCollection creates a Collection from a non-empty slice of dogs.
// The slice is copied, later changes to it do not affect the Collection.
func NewCollection(dogs []Dog) (*Collection, error) {
	if len(dogs) == 0 {
		return nil, EmptyDatasetError()
	}
	res := &Collection{dogs: slices.Clone(dogs)}
	return res, nil
}

// FromRows converts CSV rows to dogs and creates a Collection out of them.
func FromRows(rows []map[string]string) (*Collection, error) {
	dogs := make([]Dog, 0, len(rows))
	for _, row := range rows {
		d, err := FromRow(row)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, d)
	}
	return NewCollection(dogs)
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.dogs)
}

// All returns a fresh iterator over all records in their original order.
func (c *Collection) All() iter.Seq[Dog] {
	return slices.Values(c.dogs)
}

// Filter returns records that satisfy all predicates, in original order.
func (c *Collection) Filter(preds ...func(Dog) bool) []Dog {
	return slices.Collect(Filter(c.All(), preds...))
}

// Filter yields only the dogs from seq that satisfy all predicates.
func Filter(seq iter.Seq[Dog], preds ...func(Dog) bool) iter.Seq[Dog] {
	return func(yield func(Dog) bool) {
		for d := range seq {
			if !matches(d, preds) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

func matches(d Dog, preds []func(Dog) bool) bool {
	for _, p := range preds {
		if !p(d) {
			return false
		}
	}
	return true
}

// ByName matches dogs with exactly the given name.
func ByName(name string) func(Dog) bool {
	return func(d Dog) bool { return d.Name == name }
}

// BySex matches dogs of the given sex.
func BySex(s Sex) func(Dog) bool {
	return func(d Dog) bool { return d.Sex == s }
}

// ByRecordYear matches dogs recorded in the given year.
// Zero year matches every dog.
func ByRecordYear(year int) func(Dog) bool {
	return func(d Dog) bool { return year == 0 || d.RecordYear == year }
}
