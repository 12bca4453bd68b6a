//go:build unit || e2e

package builder

import (
	"fmt"
	"strings"

	"appointment-finder/internal/domain/location"
)

// MappingBuilder assembles postal code table rows in insertion order.
type MappingBuilder struct {
	rows []location.Mapping
}

func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{}
}

// WithDefaults adds the rows used across the handler and usecase tests:
// 94107 -> loc-a, loc-b; 94110 -> loc-b, loc-c; 10001 -> loc-d.
func (b *MappingBuilder) WithDefaults() *MappingBuilder {
	return b.
		Add(94107, "loc-a", "loc-b").
		Add(94110, "loc-b", "loc-c").
		Add(10001, "loc-d")
}

func (b *MappingBuilder) Add(code int, ids ...string) *MappingBuilder {
	for _, id := range ids {
		b.rows = append(b.rows, location.Mapping{
			PostalCode: location.PostalCode(code),
			LocationID: location.LocationID(id),
		})
	}
	return b
}

func (b *MappingBuilder) Rows() []location.Mapping {
	return append([]location.Mapping{}, b.rows...)
}

func (b *MappingBuilder) BuildTable() *location.Table {
	return location.NewTable(b.rows)
}

// BuildCSV renders the rows as a mapping file with the given header.
func (b *MappingBuilder) BuildCSV(header ...string) string {
	if len(header) == 0 {
		header = []string{"zip_code", "location_id"}
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\n")
	for _, r := range b.rows {
		cols := make([]string, len(header))
		for i, h := range header {
			switch h {
			case "zip_code":
				cols[i] = r.PostalCode.String()
			case "location_id":
				cols[i] = r.LocationID.String()
			default:
				cols[i] = fmt.Sprintf("%s-%d", h, i)
			}
		}
		sb.WriteString(strings.Join(cols, ","))
		sb.WriteString("\n")
	}
	return sb.String()
}
