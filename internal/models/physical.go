// file: internal/models/physical.go
// version: 1.0.0
// guid: 90f55cf4-b53f-463f-916d-7424305c4f6e

package models

import (
	"fmt"
	"math"
	"strings"
)

// PhysicalBook is a printed book that can be borrowed and returned
type PhysicalBook struct {
	record
	pages     int
	available bool
}

// NewPhysicalBook creates an available physical book
func NewPhysicalBook(title, author string, year, pages int) (*PhysicalBook, error) {
	if pages <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPages, pages)
	}
	return &PhysicalBook{
		record:    newRecord(title, author, year),
		pages:     pages,
		available: true,
	}, nil
}

func (b *PhysicalBook) Kind() Kind      { return KindPhysical }
func (b *PhysicalBook) Available() bool { return b.available }
func (b *PhysicalBook) Pages() int      { return b.pages }

// Borrow moves the book from available to unavailable.
func (b *PhysicalBook) Borrow() error {
	if !b.available {
		return fmt.Errorf("%w: '%s'", ErrNotAvailable, b.title)
	}
	b.available = false
	return nil
}

// Return moves the book from unavailable back to available.
func (b *PhysicalBook) Return() error {
	if b.available {
		return fmt.Errorf("%w: '%s'", ErrAlreadyReturned, b.title)
	}
	b.available = true
	return nil
}

// AdjustPages adds delta pages. A negative delta is rejected when it would
// leave the book with zero or fewer pages. A positive delta always applies
// and saturates at math.MaxInt.
func (b *PhysicalBook) AdjustPages(delta int) error {
	switch {
	case delta < 0 && delta <= -b.pages:
		return fmt.Errorf("%w: adjusting %d pages by %d", ErrInvalidPages, b.pages, delta)
	case delta > 0 && b.pages > math.MaxInt-delta:
		b.pages = math.MaxInt
	default:
		b.pages += delta
	}
	return nil
}

func (b *PhysicalBook) DisplayInfo() string {
	var sb strings.Builder
	sb.WriteString("Book details:")
	writeField(&sb, "Title", b.title)
	writeField(&sb, "Author", b.author)
	writeField(&sb, "Year", b.year)
	writeField(&sb, "Pages", b.pages)
	writeField(&sb, "Availability", AvailabilityLabel(b.available))
	return sb.String()
}

func (b *PhysicalBook) String() string {
	return fmt.Sprintf("Book '%s' by %s, %d, %d pages", b.title, b.author, b.year, b.pages)
}
