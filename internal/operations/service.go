// file: internal/operations/service.go
// version: 1.0.0
// guid: 7857d6ff-a95e-48d9-999a-3ae65a842934

package operations

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/metrics"
	"github.com/jdfalk/library-catalog/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// suggestionLimit caps the "Did you mean" list on lookup misses
const suggestionLimit = 3

// AddRequest carries already-parsed fields for a new item
type AddRequest struct {
	Kind   models.Kind
	Title  string
	Author string
	Year   int
	Pages  int    // physical only
	Format string // digital only
}

// Service runs user operations against a catalog
type Service struct {
	catalog *catalog.Catalog
	printer *message.Printer
	maxYear int
}

// NewService creates a service. lang selects number formatting for counts
// and page totals; maxYear bounds publication years accepted by Add.
func NewService(c *catalog.Catalog, lang language.Tag, maxYear int) *Service {
	return &Service{
		catalog: c,
		printer: message.NewPrinter(lang),
		maxYear: maxYear,
	}
}

// Catalog returns the underlying catalog
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// run wraps an operation with metrics and logging
func (s *Service) run(opType Type, fn func() Result) Result {
	start := time.Now()
	metrics.IncOperationStarted(string(opType))

	res := fn()
	res.Type = opType

	if res.OK() {
		metrics.IncOperationCompleted(string(opType))
	} else {
		metrics.IncOperationFailed(string(opType), string(res.Status))
	}
	metrics.ObserveOperationDuration(string(opType), time.Since(start))
	metrics.SetBooks(s.catalog.Len())
	metrics.SetAvailablePhysical(s.catalog.AvailablePhysical())

	log.Printf("[INFO] Operation %s finished with status %s", opType, res.Status)
	return res
}

func ok(msg string) Result       { return Result{Status: StatusOK, Message: msg} }
func rejected(msg string) Result { return Result{Status: StatusRejected, Message: msg} }

// lookupFailure turns a catalog lookup error into a result
func (s *Service) lookupFailure(title string, err error, wrongKind string) Result {
	if errors.Is(err, catalog.ErrWrongKind) {
		return rejected(wrongKind)
	}
	msg := fmt.Sprintf("Book '%s' not found.", title)
	if suggestions := s.catalog.Suggest(title, suggestionLimit); len(suggestions) > 0 {
		quoted := make([]string, len(suggestions))
		for i, t := range suggestions {
			quoted[i] = "'" + t + "'"
		}
		msg += " Did you mean: " + strings.Join(quoted, ", ") + "?"
	}
	return Result{Status: StatusNotFound, Message: msg}
}

// Add creates a new item and appends it to the catalog
func (s *Service) Add(req AddRequest) Result {
	return s.run(TypeAdd, func() Result {
		if err := models.ValidateYear(req.Year, s.maxYear); err != nil {
			return rejected(fmt.Sprintf("Cannot add '%s': %v.", req.Title, err))
		}

		var item models.Item
		switch req.Kind {
		case models.KindPhysical:
			book, err := models.NewPhysicalBook(req.Title, req.Author, req.Year, req.Pages)
			if err != nil {
				return rejected(fmt.Sprintf("Cannot add '%s': %v.", req.Title, err))
			}
			item = book
		case models.KindDigital:
			item = models.NewDigitalBook(req.Title, req.Author, req.Year, req.Format)
		default:
			return rejected(fmt.Sprintf("Cannot add '%s': %v %q.", req.Title, models.ErrUnknownKind, req.Kind))
		}

		s.catalog.Add(item)
		if item.Kind() == models.KindDigital {
			return ok(fmt.Sprintf("Digital book '%s' added to the library.", item.Title()))
		}
		return ok(fmt.Sprintf("Physical book '%s' added to the library.", item.Title()))
	})
}

// Borrow lends out the first physical book with the title
func (s *Service) Borrow(title string) Result {
	return s.run(TypeBorrow, func() Result {
		book, err := s.catalog.Borrow(title)
		switch {
		case err == nil:
			return ok(fmt.Sprintf("You borrowed '%s'.", book.Title()))
		case errors.Is(err, models.ErrNotAvailable):
			return rejected(fmt.Sprintf("You cannot borrow '%s' because it is not available.", title))
		default:
			return s.lookupFailure(title, err, fmt.Sprintf("'%s' is a digital book and cannot be borrowed.", title))
		}
	})
}

// Return brings back the first physical book with the title
func (s *Service) Return(title string) Result {
	return s.run(TypeReturn, func() Result {
		book, err := s.catalog.Return(title)
		switch {
		case err == nil:
			return ok(fmt.Sprintf("'%s' has been returned.", book.Title()))
		case errors.Is(err, models.ErrAlreadyReturned):
			return rejected(fmt.Sprintf("'%s' has already been returned.", title))
		default:
			return s.lookupFailure(title, err, fmt.Sprintf("'%s' is a digital book and cannot be returned.", title))
		}
	})
}

// Download renders the download notice for the first digital book with the title
func (s *Service) Download(title string) Result {
	return s.run(TypeDownload, func() Result {
		book, err := s.catalog.FindDigital(title)
		if err != nil {
			return s.lookupFailure(title, err, fmt.Sprintf("'%s' is a physical book and cannot be downloaded.", title))
		}
		return ok(fmt.Sprintf("%s\nDigital book '%s' downloaded.", book.Download(), book.Title()))
	})
}

// Show renders the full details of the first item with the title
func (s *Service) Show(title string) Result {
	return s.run(TypeShow, func() Result {
		item, err := s.catalog.Find(title)
		if err != nil {
			return s.lookupFailure(title, err, "")
		}
		return ok(item.DisplayInfo())
	})
}

// Describe renders the one-line summary of the first item with the title
func (s *Service) Describe(title string) Result {
	return s.run(TypeDescribe, func() Result {
		item, err := s.catalog.Find(title)
		if err != nil {
			return s.lookupFailure(title, err, "")
		}
		return ok(item.String())
	})
}

// List renders every item in insertion order
func (s *Service) List() Result {
	return s.run(TypeList, func() Result {
		items := s.catalog.Items()
		if len(items) == 0 {
			return ok("The library has no books.")
		}
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = item.String()
		}
		return ok(strings.Join(lines, "\n"))
	})
}

// Count reports the number of available physical books
func (s *Service) Count() Result {
	return s.run(TypeCount, func() Result {
		return ok(s.printer.Sprintf("Available physical books: %d", s.catalog.AvailablePhysical()))
	})
}

// AdjustPages adds delta pages to the first physical book with the title
func (s *Service) AdjustPages(title string, delta int) Result {
	return s.run(TypeAdjustPages, func() Result {
		book, err := s.catalog.AdjustPages(title, delta)
		switch {
		case err == nil:
			return ok(s.printer.Sprintf("'%s' now has %d pages.", book.Title(), book.Pages()))
		case errors.Is(err, models.ErrInvalidPages):
			return rejected(s.printer.Sprintf("Cannot adjust '%s' by %d pages, it has %d pages and must keep at least one.", title, delta, book.Pages()))
		default:
			return s.lookupFailure(title, err, fmt.Sprintf("'%s' is a digital book and has no pages.", title))
		}
	})
}
