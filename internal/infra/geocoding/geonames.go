package geocoding

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"

	"appointment-finder/internal/domain/geo"
	"appointment-finder/internal/infra"
	"appointment-finder/internal/pkg/errs"

	"github.com/dhconnelly/rtreego"
	"github.com/umahmood/haversine"
)

const (
	geoNamesFields  = 12
	kmPerDegreeLat  = 111.0
	pointSideDegree = 0.0001
)

type postalCentroid struct {
	rect    rtreego.Rect
	zipCode string
	lat     float64
	lon     float64
}

func (p *postalCentroid) Bounds() rtreego.Rect {
	return p.rect
}

// GeoNames reverse-geocodes offline against a GeoNames postal code dump
// (tab separated, 12 columns, e.g. US.txt from download.geonames.org/export/zip).
type GeoNames struct {
	tree     *rtreego.Rtree
	radiusKm float64
	size     int
}

func LoadGeoNames(path string, radiusKm float64, logger *slog.Logger) (*GeoNames, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, infra.WrapGatewayErr(logger, infra.KindSource, "failed to open geonames file "+path, err)
	}
	defer f.Close()

	return NewGeoNames(f, radiusKm, logger)
}

func NewGeoNames(r io.Reader, radiusKm float64, logger *slog.Logger) (*GeoNames, error) {
	if radiusKm <= 0 {
		return nil, errs.Newf("geonames search radius must be positive, got %v", radiusKm)
	}

	// dim = 2 (lon, lat), min/max children per node
	tree := rtreego.NewTree(2, 25, 50)

	csvReader := csv.NewReader(r)
	csvReader.Comma = '\t'
	csvReader.FieldsPerRecord = geoNamesFields
	csvReader.LazyQuotes = true

	size := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Debug("skipping unreadable geonames record", "error", err)
			continue
		}

		zipCode := record[1]
		lat, err := strconv.ParseFloat(record[9], 64)
		if err != nil {
			logger.Debug("skipping geonames record with invalid latitude", "zip_code", zipCode)
			continue
		}
		lon, err := strconv.ParseFloat(record[10], 64)
		if err != nil {
			logger.Debug("skipping geonames record with invalid longitude", "zip_code", zipCode)
			continue
		}

		rect, err := rtreego.NewRect(rtreego.Point{lon, lat}, []float64{pointSideDegree, pointSideDegree})
		if err != nil {
			continue
		}
		tree.Insert(&postalCentroid{rect: rect, zipCode: zipCode, lat: lat, lon: lon})
		size++
	}

	if size == 0 {
		return nil, errs.New("geonames file contains no usable postal codes")
	}

	return &GeoNames{tree: tree, radiusKm: radiusKm, size: size}, nil
}

func (g *GeoNames) RequiresCredential() bool { return false }

func (g *GeoNames) Size() int { return g.size }

// PostalCodes lists the distinct postal codes whose centroid lies within the
// search radius, nearest first.
func (g *GeoNames) PostalCodes(ctx context.Context, coord geo.Coordinate, _ string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dLat := g.radiusKm / kmPerDegreeLat
	dLon := 180.0
	if cos := math.Cos(coord.Latitude() * math.Pi / 180); cos > 0.01 {
		dLon = min(dLat/cos, 180)
	}

	type candidate struct {
		zipCode string
		km      float64
	}
	origin := haversine.Coord{Lat: coord.Latitude(), Lon: coord.Longitude()}

	var candidates []candidate
	seen := make(map[*postalCentroid]struct{})
	for _, rect := range searchRects(coord.Longitude(), coord.Latitude(), dLon, dLat) {
		for _, item := range g.tree.SearchIntersect(rect) {
			c := item.(*postalCentroid)
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			_, km := haversine.Distance(origin, haversine.Coord{Lat: c.lat, Lon: c.lon})
			if km <= g.radiusKm {
				candidates = append(candidates, candidate{zipCode: c.zipCode, km: km})
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].km < candidates[j].km })

	seenCode := make(map[string]struct{}, len(candidates))
	codes := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seenCode[c.zipCode]; dup {
			continue
		}
		seenCode[c.zipCode] = struct{}{}
		codes = append(codes, c.zipCode)
	}
	return codes, nil
}

// searchRects covers lon±dLon, lat±dLat inside [-180, 180] x [-90, 90]. A
// window crossing the antimeridian is split in two.
func searchRects(lon, lat, dLon, dLat float64) []rtreego.Rect {
	minLat := max(lat-dLat, -90)
	maxLat := min(lat+dLat, 90)

	type span struct{ from, to float64 }
	var spans []span
	switch minLon, maxLon := lon-dLon, lon+dLon; {
	case dLon >= 180:
		spans = []span{{-180, 180}}
	case minLon < -180:
		spans = []span{{minLon + 360, 180}, {-180, maxLon}}
	case maxLon > 180:
		spans = []span{{minLon, 180}, {-180, maxLon - 360}}
	default:
		spans = []span{{minLon, maxLon}}
	}

	rects := make([]rtreego.Rect, 0, len(spans))
	for _, sp := range spans {
		r, err := rtreego.NewRect(rtreego.Point{sp.from, minLat}, []float64{sp.to - sp.from, maxLat - minLat})
		if err != nil {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}
