package api

import (
	"errors"
	"net/http"

	reqdto "appointment-finder/internal/handler/dto/request"
	resdto "appointment-finder/internal/handler/dto/response"
	"appointment-finder/internal/handler/httperr"
	"appointment-finder/internal/pkg/errs"
	"appointment-finder/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GeocodingKeyHeader carries the caller's geocoding credential.
const GeocodingKeyHeader = "X-Geocoding-Key"

type AppointmentHandler struct {
	finder usecase.FinderUseCase
}

func NewAppointmentHandler(finder usecase.FinderUseCase) *AppointmentHandler {
	return &AppointmentHandler{finder: finder}
}

// @Summary Earliest appointment near a coordinate
// @Description Reverse geocodes the coordinate, queries every location registered under its postal code and returns those tied for the earliest slot
// @Tags appointments
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param X-Geocoding-Key header string false "Geocoding API key"
// @Success 200 {object} resdto.AppointmentsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /appointments/next [get]
func (h *AppointmentHandler) NextAvailable(c *gin.Context) {
	var q reqdto.NextAppointmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	coord, err := q.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coordinate", nil)
		return
	}

	result, err := h.finder.FindEarliest(c.Request.Context(), coord, c.GetHeader(GeocodingKeyHeader))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCredentialRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Geocoding key required", gin.H{"header": GeocodingKeyHeader})
		case errors.Is(err, errs.ErrGeoLookup):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No postal code found for coordinate", nil)
		case errors.Is(err, errs.ErrGeocodingService):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Geocoding service unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	res, err := resdto.FromRecords(result.Appointments)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
