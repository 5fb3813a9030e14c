// file: internal/models/item_test.go
// version: 1.0.0
// guid: 8d5d116f-e663-4385-8e9b-0acdf8973e79

package models

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPhysicalBook tests construction and validation of physical books
func TestNewPhysicalBook(t *testing.T) {
	// Arrange & Act
	book, err := NewPhysicalBook("  B1 ", "Author", 2000, 100)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "B1", book.Title())
	assert.Equal(t, "Author", book.Author())
	assert.Equal(t, 2000, book.Year())
	assert.Equal(t, 100, book.Pages())
	assert.Equal(t, KindPhysical, book.Kind())
	assert.True(t, book.Available())
	assert.Len(t, book.ID(), 26, "expected a ULID")
}

func TestNewPhysicalBookRejectsPages(t *testing.T) {
	for _, pages := range []int{0, -1, -250} {
		book, err := NewPhysicalBook("B1", "Author", 2000, pages)
		assert.Nil(t, book)
		assert.ErrorIs(t, err, ErrInvalidPages)
	}
}

func TestItemIDsAreUnique(t *testing.T) {
	a, err := NewPhysicalBook("Same", "Author", 2000, 10)
	require.NoError(t, err)
	b := NewDigitalBook("Same", "Author", 2000, "PDF")
	assert.NotEqual(t, a.ID(), b.ID())
}

// TestBorrowReturnCycle tests the physical book state machine
func TestBorrowReturnCycle(t *testing.T) {
	book, err := NewPhysicalBook("B1", "Author", 2000, 100)
	require.NoError(t, err)

	require.NoError(t, book.Borrow())
	assert.False(t, book.Available())

	err = book.Borrow()
	assert.ErrorIs(t, err, ErrNotAvailable)
	assert.False(t, book.Available(), "failed borrow must not change state")

	require.NoError(t, book.Return())
	assert.True(t, book.Available())

	err = book.Return()
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	assert.True(t, book.Available(), "failed return must not change state")
}

func TestAdjustPages(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		want    int
		wantErr bool
	}{
		{name: "add pages", start: 100, delta: 25, want: 125},
		{name: "zero delta", start: 100, delta: 0, want: 100},
		{name: "remove some", start: 100, delta: -40, want: 60},
		{name: "leave one page", start: 100, delta: -99, want: 1},
		{name: "remove all", start: 100, delta: -100, want: 100, wantErr: true},
		{name: "remove more than all", start: 100, delta: -150, want: 100, wantErr: true},
		{name: "largest positive delta", start: 100, delta: math.MaxInt, want: math.MaxInt},
		{name: "saturates at max", start: math.MaxInt - 5, delta: 10, want: math.MaxInt},
		{name: "smallest negative delta", start: 100, delta: math.MinInt, want: 100, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			book, err := NewPhysicalBook("B1", "Author", 2000, tc.start)
			require.NoError(t, err)

			err = book.AdjustPages(tc.delta)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPages) {
					t.Fatalf("expected ErrInvalidPages, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if book.Pages() != tc.want {
				t.Fatalf("expected %d pages, got %d", tc.want, book.Pages())
			}
		})
	}
}

func TestPhysicalBookRendering(t *testing.T) {
	book, err := NewPhysicalBook("B1", "Author", 2000, 100)
	require.NoError(t, err)

	assert.Equal(t, "Book 'B1' by Author, 2000, 100 pages", book.String())

	info := book.DisplayInfo()
	for _, want := range []string{"B1", "Author", "2000", "100", "Available"} {
		assert.Contains(t, info, want)
	}

	require.NoError(t, book.Borrow())
	assert.Contains(t, book.DisplayInfo(), "Not available")
}

func TestDigitalBookRendering(t *testing.T) {
	// Arrange
	book := NewDigitalBook("T1", "A1", 2020, "PDF")

	// Act
	summary := book.String()
	download := book.Download()
	info := book.DisplayInfo()

	// Assert
	for _, s := range []string{summary, download, info} {
		for _, want := range []string{"T1", "A1", "2020", "PDF"} {
			if !strings.Contains(s, want) {
				t.Errorf("expected %q to contain %q", s, want)
			}
		}
	}
	if strings.Contains(info, "Pages") {
		t.Errorf("digital book details should not list pages: %q", info)
	}
	if !book.Available() {
		t.Error("digital books are always available")
	}
	if book.Kind() != KindDigital {
		t.Errorf("expected kind %q, got %q", KindDigital, book.Kind())
	}
}

func TestSummariesDifferByKind(t *testing.T) {
	physical, err := NewPhysicalBook("T", "A", 2000, 10)
	require.NoError(t, err)
	digital := NewDigitalBook("T", "A", 2000, "EPUB")

	assert.NotEqual(t, physical.String(), digital.String())
	assert.True(t, strings.HasPrefix(physical.String(), "Book "))
	assert.True(t, strings.HasPrefix(digital.String(), "E-book "))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{input: "physical", want: KindPhysical},
		{input: "  Physical ", want: KindPhysical},
		{input: "p", want: KindPhysical},
		{input: "1", want: KindPhysical},
		{input: "DIGITAL", want: KindDigital},
		{input: "d", want: KindDigital},
		{input: "2", want: KindDigital},
		{input: "audio", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseKind(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrUnknownKind, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestItemInterface(t *testing.T) {
	physical, err := NewPhysicalBook("B1", "Author", 2000, 100)
	require.NoError(t, err)

	items := []Item{physical, NewDigitalBook("T1", "A1", 2020, "PDF")}
	assert.Equal(t, KindPhysical, items[0].Kind())
	assert.Equal(t, KindDigital, items[1].Kind())
}

func TestValidateYear(t *testing.T) {
	assert.NoError(t, ValidateYear(2024, 2024))
	assert.NoError(t, ValidateYear(1605, 2024))
	assert.ErrorIs(t, ValidateYear(2025, 2024), ErrInvalidYear)
}
