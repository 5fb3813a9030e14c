// file: internal/models/digital.go
// version: 1.0.0
// guid: 3f389759-b853-4fde-9302-52f966555ac2

package models

import (
	"fmt"
	"strings"
)

// DigitalBook is an electronic book. It is always available and has no
// borrow/return cycle.
type DigitalBook struct {
	record
	format string
}

// NewDigitalBook creates a digital book in the given file format (PDF, EPUB, ...)
func NewDigitalBook(title, author string, year int, format string) *DigitalBook {
	return &DigitalBook{
		record: newRecord(title, author, year),
		format: strings.TrimSpace(format),
	}
}

func (b *DigitalBook) Kind() Kind      { return KindDigital }
func (b *DigitalBook) Available() bool { return true }
func (b *DigitalBook) Format() string  { return b.format }

// Download renders the download notice. It does not change the book.
func (b *DigitalBook) Download() string {
	return fmt.Sprintf("'%s' by %s, %d, available for download as %s", b.title, b.author, b.year, b.format)
}

func (b *DigitalBook) DisplayInfo() string {
	var sb strings.Builder
	sb.WriteString("E-book details:")
	writeField(&sb, "Title", b.title)
	writeField(&sb, "Author", b.author)
	writeField(&sb, "Year", b.year)
	writeField(&sb, "Format", b.format)
	writeField(&sb, "Availability", AvailabilityLabel(true))
	return sb.String()
}

func (b *DigitalBook) String() string {
	return fmt.Sprintf("E-book '%s' by %s, %d, format: %s", b.title, b.author, b.year, b.format)
}
