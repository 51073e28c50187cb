// Package lookup finds registry records by the name of a dog.
package lookup

import (
	"github.com/gnames/wuff/pkg/dog"
)

// Status tells how a lookup ended.
type Status int

const (
	// Found means at least one dog matched the name and the year.
	Found Status = iota
	// NoName means no dog in the registry has the name.
	NoName
	// NoYear means dogs with the name exist, but not in the target year.
	NoYear
)

// String returns a human-readable Status.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoName:
		return "no result for name"
	case NoYear:
		return "no result for year"
	default:
		return "unknown"
	}
}

// MarshalText renders Status as text in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result of a lookup. Empty results are not errors.
type Result struct {
	Status Status    `json:"status"`
	Name   string    `json:"name"`
	Year   int       `json:"year,omitempty"`
	Dogs   []dog.Dog `json:"dogs"`
}

// Find returns dogs with exactly the given name recorded in the given year.
// If year is zero, the latest record year of the name is used.
func Find(c *dog.Collection, name string, year int) Result {
	res := Result{Name: name, Dogs: []dog.Dog{}}

	matches := c.Filter(dog.ByName(name))
	if len(matches) == 0 {
		res.Status = NoName
		return res
	}

	res.Year = year
	if res.Year == 0 {
		for _, v := range matches {
			res.Year = max(res.Year, v.RecordYear)
		}
	}

	for _, v := range matches {
		if v.RecordYear == res.Year {
			res.Dogs = append(res.Dogs, v)
		}
	}
	if len(res.Dogs) == 0 {
		res.Status = NoYear
		return res
	}

	res.Status = Found
	return res
}
