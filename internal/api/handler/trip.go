package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yvonnejhao/Travel-Planner/internal/api/models"
	"github.com/yvonnejhao/Travel-Planner/internal/api/response"
	"github.com/yvonnejhao/Travel-Planner/internal/trip"
)

// TripHandler handles trip endpoints.
type TripHandler struct {
	service *trip.Service
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(service *trip.Service) *TripHandler {
	return &TripHandler{service: service}
}

// ListTrips handles GET /v1/trips - list saved trips.
// Supports optional user and location query filters.
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	filter := trip.Filter{
		User:     r.URL.Query().Get("user"),
		Location: r.URL.Query().Get("location"),
	}

	trips, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.InternalError(w, r, "failed to list trips")
		return
	}

	response.JSON(w, r, http.StatusOK, trips)
}

// CountTrips handles GET /v1/trips/count - total number of saved trips.
func (h *TripHandler) CountTrips(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Count(r.Context())
	if err != nil {
		response.InternalError(w, r, "failed to count trips")
		return
	}

	response.JSON(w, r, http.StatusOK, models.TripCountResponse{TotalTrips: count})
}

// CreateTrip handles POST /v1/trips - save a new trip.
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var input models.TripCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.service.Create(r.Context(), &input)
	if err != nil {
		var valErr *trip.ValidationError
		if errors.As(err, &valErr) {
			response.BadRequest(w, r, "trip validation failed", valErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to save trip")
		return
	}

	location := fmt.Sprintf("/v1/trips/%s", created.ID)
	response.Created(w, r, location, created)
}

// DeleteTrip handles DELETE /v1/trips/{tripId} - delete a saved trip.
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")
	if tripID == "" {
		response.BadRequest(w, r, "tripId is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), tripID); err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, r, "no trip found with id "+tripID)
			return
		}
		response.InternalError(w, r, "failed to delete trip")
		return
	}

	response.JSON(w, r, http.StatusOK, nil)
}
