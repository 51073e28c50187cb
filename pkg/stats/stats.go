// Package stats computes aggregate statistics over registry records.
package stats

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/gnames/wuff/pkg/dog"
)

// TopLimit is the size of every ranking of names.
const TopLimit = 10

// NameCount is the number of dogs that share a name.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes a set of registry records.
type Stats struct {
	// Year is the record year the statistics are limited to,
	// zero if all years were used.
	Year int `json:"year,omitempty"`

	NameLongest  string `json:"nameLongest"`
	NameShortest string `json:"nameShortest"`

	TopNamesMale    []NameCount `json:"topNamesMale"`
	TopNamesFemale  []NameCount `json:"topNamesFemale"`
	TopNamesOverall []NameCount `json:"topNamesOverall"`

	DogCountMale    int `json:"dogCountMale"`
	DogCountFemale  int `json:"dogCountFemale"`
	DogCountOverall int `json:"dogCountOverall"`

	// FirstYear and LastYear are the earliest and latest record years
	// seen. Zero FirstYear means no records were used.
	FirstYear int `json:"firstYear,omitempty"`
	LastYear  int `json:"lastYear,omitempty"`
}

// HasData is false when no named dog matched the year filter.
func (s Stats) HasData() bool {
	return s.FirstYear != 0
}

// Analyze computes statistics of dogs, limited to the record year if it is
// not zero. Dogs without a known name are skipped completely.
//
// Ties of name lengths keep the first dog encountered. Ties of name counts
// keep the order in which names were first seen.
func Analyze(dogs iter.Seq[dog.Dog], year int) Stats {
	res := Stats{Year: year}
	var hasShortest bool
	male := newTally()
	female := newTally()

	for d := range dog.Filter(dogs, dog.ByRecordYear(year)) {
		if d.IsUnnamed() {
			continue
		}

		l := utf8.RuneCountInString(d.Name)
		if l > utf8.RuneCountInString(res.NameLongest) {
			res.NameLongest = d.Name
		}
		if !hasShortest || l < utf8.RuneCountInString(res.NameShortest) {
			res.NameShortest = d.Name
			hasShortest = true
		}

		if res.FirstYear == 0 || d.RecordYear < res.FirstYear {
			res.FirstYear = d.RecordYear
		}
		if d.RecordYear > res.LastYear {
			res.LastYear = d.RecordYear
		}

		switch d.Sex {
		case dog.Male:
			male.add(d.Name, d.Count)
			res.DogCountMale += d.Count
		case dog.Female:
			female.add(d.Name, d.Count)
			res.DogCountFemale += d.Count
		}
	}

	res.DogCountOverall = res.DogCountMale + res.DogCountFemale
	res.TopNamesMale = top(male.counts)
	res.TopNamesFemale = top(female.counts)
	res.TopNamesOverall = top(
		slices.Concat(res.TopNamesMale, res.TopNamesFemale),
	)
	return res
}

// tally sums counts per name and remembers the order names appeared in.
type tally struct {
	idx    map[string]int
	counts []NameCount
}

func newTally() *tally {
	return &tally{idx: make(map[string]int)}
}

func (t *tally) add(name string, count int) {
	if i, ok := t.idx[name]; ok {
		t.counts[i].Count += count
		return
	}
	t.idx[name] = len(t.counts)
	t.counts = append(t.counts, NameCount{Name: name, Count: count})
}

// top returns at most TopLimit names with the largest counts.
func top(ncs []NameCount) []NameCount {
	res := slices.Clone(ncs)
	slices.SortStableFunc(res, func(a, b NameCount) int {
		return b.Count - a.Count
	})
	if len(res) > TopLimit {
		res = res[:TopLimit]
	}
	return res
}
