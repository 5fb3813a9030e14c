// file: internal/models/item.go
// version: 2.0.0
// guid: bc113005-a3bc-418d-8c7a-4dca03bedfc9

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Kind identifies the variant of a library item
type Kind string

const (
	KindPhysical Kind = "physical"
	KindDigital  Kind = "digital"
)

var (
	ErrNotAvailable    = errors.New("book is not available")
	ErrAlreadyReturned = errors.New("book has already been returned")
	ErrInvalidPages    = errors.New("page count must be a positive number")
	ErrInvalidYear     = errors.New("publication year is out of range")
	ErrUnknownKind     = errors.New("unknown book type")
)

// Item is the behaviour shared by physical and digital books.
type Item interface {
	ID() string
	Title() string
	Author() string
	Year() int
	Kind() Kind
	Available() bool
	// DisplayInfo renders every field, one per line.
	DisplayInfo() string
	// String renders a one-line summary.
	String() string
}

// record holds the fields common to every item
type record struct {
	id     string
	title  string
	author string
	year   int
}

func newRecord(title, author string, year int) record {
	return record{
		id:     ulid.Make().String(),
		title:  strings.TrimSpace(title),
		author: strings.TrimSpace(author),
		year:   year,
	}
}

func (r record) ID() string     { return r.id }
func (r record) Title() string  { return r.title }
func (r record) Author() string { return r.author }
func (r record) Year() int      { return r.year }

// ParseKind maps user input to a Kind. Accepts the full words, their first
// letter, or the menu numbers 1 and 2.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical", "p", "1":
		return KindPhysical, nil
	case "digital", "d", "2":
		return KindDigital, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ValidateYear checks a publication year against the configured upper bound
func ValidateYear(year, maxYear int) error {
	if year > maxYear {
		return fmt.Errorf("%w: %d is after %d", ErrInvalidYear, year, maxYear)
	}
	return nil
}

// AvailabilityLabel is the human readable availability state
func AvailabilityLabel(available bool) string {
	if available {
		return "Available"
	}
	return "Not available"
}

func writeField(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "\n  %-14s %v", label+":", value)
}
