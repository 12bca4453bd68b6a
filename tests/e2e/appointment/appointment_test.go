//go:build e2e

package appointment_test

import (
	"net/http"
	"testing"

	"appointment-finder/tests/common/builder"
	"appointment-finder/tests/common/dbtest"
	"appointment-finder/tests/common/httptest"
	"appointment-finder/tests/common/testutil"
	"appointment-finder/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const nextURL = "/api/appointments/next"

type AppointmentSuite struct {
	e2e.SharedSuite
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AppointmentSuite))
}

func sfQuery() map[string]any {
	c := builder.SanFrancisco()
	return map[string]any{"lat": c.Latitude(), "lng": c.Longitude()}
}

func (s *AppointmentSuite) TestNextAvailable() {
	url := testutil.QueryURL(nextURL, sfQuery())

	s.Run("Normal case: locations tied for the earliest slot are returned in table order", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().
			Add(94107, "loc-a", "loc-b", "loc-c").
			Add(94110, "loc-d").
			Rows())
		s.Geocoder.SetPostalCodes("94107", "94110", "94107")
		s.Scheduler.
			Slots("loc-a", 3000, 1000).
			Slots("loc-b", 1000).
			Fail("loc-c", http.StatusInternalServerError)
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-e2e"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertJSONBody(t, w, `{"appointments":[
			{"location_id":"loc-a","appointment_time":1000},
			{"location_id":"loc-b","appointment_time":1000}
		]}`)
		assert.ElementsMatch(t, []string{"loc-a", "loc-b", "loc-c"}, s.Scheduler.Calls())
		assert.Equal(t, []string{"AIza-e2e"}, s.Geocoder.Keys())
	})

	s.Run("Normal case: no availability renders an empty list", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().Add(94107, "loc-a", "loc-b").Rows())
		s.Geocoder.SetPostalCodes("94107")
		s.Scheduler.Slots("loc-a").Fail("loc-b", http.StatusServiceUnavailable)
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-e2e"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertJSONBody(t, w, `{"appointments":[]}`)
	})

	s.Run("Normal case: unregistered postal code renders an empty list without scheduling calls", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().Add(10001, "loc-z").Rows())
		s.Geocoder.SetPostalCodes("94107")
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-e2e"))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.AssertJSONBody(t, w, `{"appointments":[]}`)
		assert.Empty(t, s.Scheduler.Calls())
	})

	s.Run("Normal case: query outcomes are exported as metrics", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().Add(94107, "loc-a", "loc-b").Rows())
		s.Geocoder.SetPostalCodes("94107")
		s.Scheduler.Slots("loc-a", 1000).Slots("loc-b")
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-e2e"))
		require.Equal(t, http.StatusOK, w.Code)

		m := httptest.PerformRequest(t, router, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, m.Code)
		assert.Contains(t, m.Body.String(), `appointment_finder_location_queries_total{outcome="scheduled"} 1`)
		assert.Contains(t, m.Body.String(), `appointment_finder_location_queries_total{outcome="empty"} 1`)
		assert.Contains(t, m.Body.String(), `appointment_finder_searches_total{result="available"} 1`)
	})

	s.Run("Error case: no postal code for coordinate", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().WithDefaults().Rows())
		s.Geocoder.SetStatus("ZERO_RESULTS")
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-e2e"))

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No postal code found for coordinate")
		assert.Empty(t, s.Scheduler.Calls())
	})

	s.Run("Error case: geocoding service rejects the key", func() {
		t := s.T()

		dbtest.InsertMappings(t, s.DB, builder.NewMappingBuilder().WithDefaults().Rows())
		s.Geocoder.SetStatus("REQUEST_DENIED")
		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, httptest.WithKey("AIza-bad"))

		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Geocoding service unavailable")
	})

	s.Run("Error case: missing geocoding key", func() {
		t := s.T()

		router := s.StartRouter(t)

		w := httptest.PerformRequest(t, router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Geocoding key required")
		assert.Empty(t, s.Geocoder.Keys())
	})

	s.Run("Error case: coordinate out of range", func() {
		t := s.T()

		router := s.StartRouter(t)
		bad := testutil.QueryURL(nextURL, sfQuery(), testutil.Field("lat", 91))

		w := httptest.PerformRequest(t, router, http.MethodGet, bad, httptest.WithKey("AIza-e2e"))

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid coordinate")
	})
}
