package location

import (
	"strings"

	"appointment-finder/internal/pkg/errs"
)

// LocationID identifies one bookable provider location. Opaque to this service.
type LocationID string

func NewLocationID(s string) (LocationID, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", errs.Mark(errs.New("empty location id"), errs.ErrInvalidLocationID)
	}
	return LocationID(t), nil
}

func (id LocationID) String() string { return string(id) }

// Mapping is one row of the postal code table.
type Mapping struct {
	PostalCode PostalCode
	LocationID LocationID
}

// Table is an immutable postal code <-> location index. Build it once with
// NewTable and share it; lookups never mutate it.
type Table struct {
	byPostalCode map[PostalCode][]LocationID
	byLocation   map[LocationID][]PostalCode
	rows         int
}

func NewTable(rows []Mapping) *Table {
	t := &Table{
		byPostalCode: make(map[PostalCode][]LocationID),
		byLocation:   make(map[LocationID][]PostalCode),
		rows:         len(rows),
	}
	for _, r := range rows {
		t.byPostalCode[r.PostalCode] = appendUnique(t.byPostalCode[r.PostalCode], r.LocationID)
		t.byLocation[r.LocationID] = appendUnique(t.byLocation[r.LocationID], r.PostalCode)
	}
	return t
}

// Resolve returns the locations registered under code in table order.
// An unknown code yields an empty slice.
func (t *Table) Resolve(code PostalCode) []LocationID {
	return append([]LocationID{}, t.byPostalCode[code]...)
}

// ResolveInverse returns the postal codes a location is registered under.
func (t *Table) ResolveInverse(id LocationID) []PostalCode {
	return append([]PostalCode{}, t.byLocation[id]...)
}

// Rows is the number of rows the table was built from, duplicates included.
func (t *Table) Rows() int { return t.rows }

func (t *Table) PostalCodes() int { return len(t.byPostalCode) }

func appendUnique[T comparable](s []T, v T) []T {
	for _, existing := range s {
		if existing == v {
			return s
		}
	}
	return append(s, v)
}
