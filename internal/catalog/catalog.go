// file: internal/catalog/catalog.go
// version: 1.0.0
// guid: c1934be5-5d77-4324-a208-f753d6674c25

package catalog

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrNotFound  = errors.New("book not found")
	ErrWrongKind = errors.New("book is of a different type")
)

// maxTypos is the edit distance under which a title is offered as a suggestion
const maxTypos = 2

// Catalog is the ordered, append-only collection of library items.
// Not safe for concurrent use.
type Catalog struct {
	items []models.Item
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{}
}

// Add appends an item. Duplicate titles are accepted; lookups keep
// returning the first one.
func (c *Catalog) Add(item models.Item) {
	if _, err := c.Find(item.Title()); err == nil {
		log.Printf("[WARN] Title '%s' already exists, lookups will return the earlier item", item.Title())
	}
	c.items = append(c.items, item)
	log.Printf("[INFO] Added %s book '%s' (%s)", item.Kind(), item.Title(), item.ID())
}

// Items returns the items in insertion order
func (c *Catalog) Items() []models.Item {
	out := make([]models.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int { return len(c.items) }

// Titles returns every title in insertion order
func (c *Catalog) Titles() []string {
	titles := make([]string, 0, len(c.items))
	for _, item := range c.items {
		titles = append(titles, item.Title())
	}
	return titles
}

// Find returns the first item with the exact title
func (c *Catalog) Find(title string) (models.Item, error) {
	for _, item := range c.items {
		if item.Title() == title {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrNotFound, title)
}

// findKind returns the first item of the given kind with the title. When the
// title only exists for the other kind the error is ErrWrongKind.
func (c *Catalog) findKind(title string, kind models.Kind) (models.Item, error) {
	otherKind := false
	for _, item := range c.items {
		if item.Title() != title {
			continue
		}
		if item.Kind() == kind {
			return item, nil
		}
		otherKind = true
	}
	if otherKind {
		return nil, fmt.Errorf("%w: '%s' is not a %s book", ErrWrongKind, title, kind)
	}
	return nil, fmt.Errorf("%w: '%s'", ErrNotFound, title)
}

// FindPhysical returns the first physical book with the title
func (c *Catalog) FindPhysical(title string) (*models.PhysicalBook, error) {
	item, err := c.findKind(title, models.KindPhysical)
	if err != nil {
		return nil, err
	}
	return item.(*models.PhysicalBook), nil
}

// FindDigital returns the first digital book with the title
func (c *Catalog) FindDigital(title string) (*models.DigitalBook, error) {
	item, err := c.findKind(title, models.KindDigital)
	if err != nil {
		return nil, err
	}
	return item.(*models.DigitalBook), nil
}

// Borrow marks the first physical book with the title as unavailable.
// The book is returned alongside precondition errors so callers can report on it.
func (c *Catalog) Borrow(title string) (*models.PhysicalBook, error) {
	book, err := c.FindPhysical(title)
	if err != nil {
		return nil, err
	}
	if err := book.Borrow(); err != nil {
		return book, err
	}
	return book, nil
}

// Return marks the first physical book with the title as available again.
func (c *Catalog) Return(title string) (*models.PhysicalBook, error) {
	book, err := c.FindPhysical(title)
	if err != nil {
		return nil, err
	}
	if err := book.Return(); err != nil {
		return book, err
	}
	return book, nil
}

// AdjustPages adds delta pages to the first physical book with the title.
func (c *Catalog) AdjustPages(title string, delta int) (*models.PhysicalBook, error) {
	book, err := c.FindPhysical(title)
	if err != nil {
		return nil, err
	}
	if err := book.AdjustPages(delta); err != nil {
		return book, err
	}
	return book, nil
}

// AvailablePhysical counts the available physical books. It is computed from
// the items on every call, so it also reflects transitions made directly on
// a *models.PhysicalBook.
func (c *Catalog) AvailablePhysical() int {
	n := 0
	for _, item := range c.items {
		if item.Kind() == models.KindPhysical && item.Available() {
			n++
		}
	}
	return n
}

// Suggest returns up to limit titles that look like the given one, closest first.
func (c *Catalog) Suggest(title string, limit int) []string {
	query := strings.TrimSpace(title)
	if query == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		title    string
		distance int
	}
	seen := make(map[string]bool)
	var found []candidate

	titles := c.Titles()
	for _, r := range fuzzy.RankFindFold(query, titles) {
		if !seen[r.Target] {
			seen[r.Target] = true
			found = append(found, candidate{title: r.Target, distance: r.Distance})
		}
	}
	lowered := strings.ToLower(query)
	for _, t := range titles {
		if seen[t] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(lowered, strings.ToLower(t)); d <= maxTypos {
			seen[t] = true
			found = append(found, candidate{title: t, distance: d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})
	if len(found) > limit {
		found = found[:limit]
	}
	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.title)
	}
	return out
}
