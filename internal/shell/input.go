// file: internal/shell/input.go
// version: 1.0.0
// guid: e1535375-efeb-44bf-a653-06114686f70d

package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jdfalk/library-catalog/internal/models"
)

// Choice is a menu entry
type Choice int

const (
	ChoiceExit Choice = iota
	ChoiceAdd
	ChoiceBorrow
	ChoiceReturn
	ChoiceDownload
	ChoiceShow
	ChoiceList
	ChoiceCount
	ChoiceDescribe
)

var (
	ErrInvalidChoice = errors.New("invalid menu choice")
	ErrNotNumber     = errors.New("not a whole number")
)

// ParseChoice maps a menu selection to a Choice
func ParseChoice(s string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(ChoiceExit) || n > int(ChoiceDescribe) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
	return Choice(n), nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return n, nil
}

// ParseYear parses a publication year no later than maxYear
func ParseYear(s string, maxYear int) (int, error) {
	year, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if err := models.ValidateYear(year, maxYear); err != nil {
		return 0, err
	}
	return year, nil
}

// ParsePages parses a positive page count
func ParsePages(s string) (int, error) {
	pages, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if pages <= 0 {
		return 0, fmt.Errorf("%w: got %d", models.ErrInvalidPages, pages)
	}
	return pages, nil
}
