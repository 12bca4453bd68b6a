package location

import (
	"strconv"
	"strings"

	"appointment-finder/internal/pkg/errs"
)

// PostalCode is numeric so that "06510" and "6510" join to the same table rows.
type PostalCode int

// ParsePostalCode accepts plain and ZIP+4 ("65109-1234") forms.
func ParsePostalCode(s string) (PostalCode, error) {
	v := strings.TrimSpace(s)
	if base, _, ok := strings.Cut(v, "-"); ok {
		v = base
	}
	if v == "" {
		return 0, errs.Mark(errs.New("empty postal code"), errs.ErrInvalidPostalCode)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errs.Mark(errs.Newf("postal code %q is not numeric", s), errs.ErrInvalidPostalCode)
	}
	return PostalCode(n), nil
}

func (p PostalCode) String() string { return strconv.Itoa(int(p)) }

// DominantPostalCode returns the most frequent parseable value in raw.
// Frequency ties go to the value encountered first. Unparseable values are skipped.
func DominantPostalCode(raw []string) (PostalCode, bool) {
	counts := make(map[PostalCode]int, len(raw))
	var order []PostalCode
	for _, s := range raw {
		code, err := ParsePostalCode(s)
		if err != nil {
			continue
		}
		if _, seen := counts[code]; !seen {
			order = append(order, code)
		}
		counts[code]++
	}
	if len(order) == 0 {
		return 0, false
	}

	best := order[0]
	for _, code := range order[1:] {
		if counts[code] > counts[best] {
			best = code
		}
	}
	return best, true
}
