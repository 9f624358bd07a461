package handler

import (
	"errors"
	"net/http"

	"github.com/yvonnejhao/Travel-Planner/internal/api/models"
	"github.com/yvonnejhao/Travel-Planner/internal/api/response"
	"github.com/yvonnejhao/Travel-Planner/internal/geocoding"
)

// GeocodeHandler handles geocoding endpoints.
type GeocodeHandler struct {
	geocoder geocoding.Geocoder
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(geocoder geocoding.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Geocode handles GET /v1/geocode?address= - resolve a place name to coordinates.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		response.BadRequest(w, r, "address query parameter is required", []models.FieldError{
			{Field: "address", Message: "is required"},
		})
		return
	}

	loc, err := h.geocoder.Geocode(r.Context(), address)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoResults) {
			response.NotFound(w, r, "no results for address "+address)
			return
		}
		response.BadGateway(w, r, "geocoding provider request failed")
		return
	}

	response.JSON(w, r, http.StatusOK, models.GeocodeResponse{
		Address:          address,
		FormattedAddress: loc.FormattedAddress,
		Position:         models.Point{Lat: loc.Lat, Lng: loc.Lng},
	})
}
