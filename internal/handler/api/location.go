package api

import (
	"net/http"

	reqdto "appointment-finder/internal/handler/dto/request"
	resdto "appointment-finder/internal/handler/dto/response"
	"appointment-finder/internal/handler/httperr"
	"appointment-finder/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locations usecase.LocationUseCase
}

func NewLocationHandler(locations usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// @Summary Locations for a postal code
// @Tags locations
// @Produce json
// @Param code path string true "Postal code"
// @Success 200 {object} resdto.PostalCodeLocationsResponse
// @Failure 400 {object} httperr.Response
// @Router /postal-codes/{code}/locations [get]
func (h *LocationHandler) ByPostalCode(c *gin.Context) {
	var uri reqdto.PostalCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	code, err := uri.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid postal code", nil)
		return
	}

	ids := h.locations.LocationsByPostalCode(c.Request.Context(), code)
	c.JSON(http.StatusOK, resdto.FromLocationIDs(code, ids))
}

// @Summary Postal codes a location is registered under
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.LocationPostalCodesResponse
// @Failure 400 {object} httperr.Response
// @Router /locations/{id}/postal-codes [get]
func (h *LocationHandler) PostalCodes(c *gin.Context) {
	var uri reqdto.LocationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := uri.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid location id", nil)
		return
	}

	codes := h.locations.PostalCodesByLocation(c.Request.Context(), id)
	c.JSON(http.StatusOK, resdto.FromPostalCodes(id, codes))
}
