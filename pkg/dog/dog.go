// Package dog contains the model of the Zürich dog names registry:
// a single record (Dog) and a re-iterable ordered Collection of records.
package dog

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
)

// Column names of the registry CSV file.
const (
	FieldName       = "HundenameText"
	FieldSex        = "SexHundCd"
	FieldBirthYear  = "GebDatHundJahr"
	FieldRecordYear = "StichtagDatJahr"
	FieldCount      = "AnzHunde"
)

// UnknownName is used by the registry when the name of a dog
// was not recorded.
const UnknownName = "?"

// Sex of a dog.
type Sex int

const (
	Male Sex = iota + 1
	Female
)

// Sexes lists all sexes in a fixed order.
var Sexes = []Sex{Male, Female}

// String returns "m" for males and "f" for females.
func (s Sex) String() string {
	switch s {
	case Male:
		return "m"
	case Female:
		return "f"
	default:
		return "?"
	}
}

// MarshalText makes Sex render as "m" or "f" in JSON.
func (s Sex) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSex converts the registry code of a sex ("1" or "2").
func ParseSex(code string) (Sex, error) {
	switch strings.TrimSpace(code) {
	case "1":
		return Male, nil
	case "2":
		return Female, nil
	default:
		return 0, InvalidValueError(
			FieldSex, code, errors.New("sex code must be 1 or 2"),
		)
	}
}

// Dog is one row of the registry. Count dogs share the same name, sex,
// birth year and record year.
type Dog struct {
	Name       string `json:"name"`
	Sex        Sex    `json:"sex"`
	BirthYear  int    `json:"birthYear"`
	RecordYear int    `json:"recordYear"`
	Count      int    `json:"count"`
}

// IsUnnamed is true if the registry does not know the name of the dog.
func (d Dog) IsUnnamed() bool {
	return d.Name == UnknownName
}

// FromRow creates a Dog from a CSV row keyed by column name.
// All five registry columns are required, other columns are ignored.
func FromRow(row map[string]string) (Dog, error) {
	var res Dog
	fields := []string{
		FieldName, FieldSex, FieldBirthYear, FieldRecordYear, FieldCount,
	}
	for _, v := range fields {
		if _, ok := row[v]; !ok {
			return res, MissingFieldError(v)
		}
	}

	sex, err := ParseSex(row[FieldSex])
	if err != nil {
		return res, err
	}

	birthYear, err := parseInt(FieldBirthYear, row[FieldBirthYear])
	if err != nil {
		return res, err
	}

	recordYear, err := parseInt(FieldRecordYear, row[FieldRecordYear])
	if err != nil {
		return res, err
	}

	count, err := parseInt(FieldCount, row[FieldCount])
	if err != nil {
		return res, err
	}
	if count < 1 {
		return res, InvalidValueError(
			FieldCount, row[FieldCount], errors.New("count must be positive"),
		)
	}

	res = Dog{
		Name:       gnlib.FixUtf8(row[FieldName]),
		Sex:        sex,
		BirthYear:  birthYear,
		RecordYear: recordYear,
		Count:      count,
	}
	return res, nil
}

func parseInt(field, s string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, InvalidValueError(field, s, err)
	}
	return res, nil
}
