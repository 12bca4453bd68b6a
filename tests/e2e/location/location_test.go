//go:build e2e

package location_test

import (
	"net/http"
	"testing"

	"appointment-finder/internal/handler/dto/response"
	"appointment-finder/tests/common/builder"
	"appointment-finder/tests/common/dbtest"
	"appointment-finder/tests/common/httptest"
	"appointment-finder/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LocationSuite struct {
	e2e.SharedSuite
}

func TestLocationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LocationSuite))
}

func (s *LocationSuite) TestLookups() {
	s.Run("Normal case: postgres rows load in insertion order", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().
			WithDefaults().
			Add(94107, "loc-a").
			Rows())
		require.Equal(t, 6, dbtest.CountMappings(t, s.DB))
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/postal-codes/94107/locations", nil)
		var byCode response.PostalCodeLocationsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &byCode)

		want := response.PostalCodeLocationsResponse{PostalCode: 94107, LocationIDs: []string{"loc-a", "loc-b"}}
		if diff := cmp.Diff(want, byCode); diff != "" {
			t.Errorf("forward lookup mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, router, http.MethodGet, "/api/locations/loc-b/postal-codes", nil)
		var byLocation response.LocationPostalCodesResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &byLocation)

		wantInverse := response.LocationPostalCodesResponse{LocationID: "loc-b", PostalCodes: []int{94107, 94110}}
		if diff := cmp.Diff(wantInverse, byLocation); diff != "" {
			t.Errorf("inverse lookup mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: unknown postal code yields an empty list", func() {
		t := s.T()

		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/postal-codes/99999/locations", nil)

		require.Equal(t, http.StatusOK, w.Code)
		httptest.AssertJSONBody(t, w, `{"postal_code":99999,"location_ids":[]}`)
	})

	s.Run("Error case: malformed postal code", func() {
		t := s.T()

		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/api/postal-codes/abc/locations", nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid postal code")
	})
}
