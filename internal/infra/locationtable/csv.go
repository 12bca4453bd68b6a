package locationtable

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"appointment-finder/internal/domain/location"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/pkg/errs"
)

const (
	columnPostalCode = "zip_code"
	columnLocationID = "location_id"
)

// LoadCSV reads the mapping file at path.
func LoadCSV(path string, logger *slog.Logger) (*location.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(logger, infra.KindSource, "failed to open location table "+path, err), errs.ErrLocationTableUnavailable)
	}
	defer f.Close()

	return ReadCSV(f, logger)
}

// ReadCSV parses a header-led CSV with zip_code and location_id columns.
// Column order is free and extra columns are ignored. Rows that do not parse
// are skipped with a warning.
func ReadCSV(r io.Reader, logger *slog.Logger) (*location.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errs.Mark(infra.WrapGatewayErr(logger, infra.KindDecode, "failed to read location table header", err), errs.ErrLocationTableUnavailable)
	}

	postalIdx, locationIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case columnPostalCode:
			postalIdx = i
		case columnLocationID:
			locationIdx = i
		}
	}
	if postalIdx < 0 || locationIdx < 0 {
		return nil, errs.Mark(
			errs.Newf("location table header %v lacks %s or %s", header, columnPostalCode, columnLocationID),
			errs.ErrLocationTableUnavailable,
		)
	}

	var rows []location.Mapping
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("skipping unreadable location table row", "line", line, "error", err)
			continue
		}
		if len(record) <= postalIdx || len(record) <= locationIdx {
			logger.Warn("skipping short location table row", "line", line)
			continue
		}

		mapping, err := toMapping(record[postalIdx], record[locationIdx])
		if err != nil {
			logger.Warn("skipping invalid location table row", "line", line, "error", err)
			continue
		}
		rows = append(rows, mapping)
	}

	return location.NewTable(rows), nil
}

func toMapping(rawPostalCode, rawLocationID string) (location.Mapping, error) {
	code, err := location.ParsePostalCode(rawPostalCode)
	if err != nil {
		return location.Mapping{}, err
	}
	id, err := location.NewLocationID(rawLocationID)
	if err != nil {
		return location.Mapping{}, err
	}
	return location.Mapping{PostalCode: code, LocationID: id}, nil
}
