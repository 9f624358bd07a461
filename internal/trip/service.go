package trip

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yvonnejhao/Travel-Planner/internal/api/models"
)

// Validation constants.
const (
	MaxUserLength         = 120
	MaxLocationNameLength = 200
)

// Service provides trip operations.
type Service struct {
	repo Repository
}

// NewService creates a new trip service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List retrieves trips matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.Trip, error) {
	trips, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]models.Trip, 0, len(trips))
	for _, t := range trips {
		items = append(items, s.toAPITrip(t))
	}
	return items, nil
}

// Count returns the total number of stored trips.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Create validates and persists a new trip.
func (s *Service) Create(ctx context.Context, input *models.TripCreateRequest) (*models.Trip, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	locations := make([]Location, 0, len(input.Locations))
	for _, loc := range input.Locations {
		locations = append(locations, Location{
			Name:     loc.Name,
			Position: Point{Lat: loc.Position.Lat, Lng: loc.Position.Lng},
		})
	}

	var legs []Leg
	for _, leg := range input.RouteDetails {
		legs = append(legs, Leg{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			Distance:        leg.Distance,
			Duration:        leg.Duration,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			StartLocation:   Point{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			EndLocation:     Point{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		})
	}

	t := &Trip{
		ID:            "trp_" + uuid.New().String()[:22],
		User:          input.User,
		Locations:     locations,
		RouteDetails:  legs,
		TotalDistance: input.TotalDistance,
		TotalDuration: input.TotalDuration,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	result := s.toAPITrip(t)
	return &result, nil
}

// Delete removes a trip by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return ErrTripNotFound
		}
		return err
	}
	return nil
}

// validateCreateInput validates the create trip input.
func (s *Service) validateCreateInput(input *models.TripCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.User == "" {
		errs = append(errs, models.FieldError{Field: "user", Message: "is required"})
	} else if len(input.User) > MaxUserLength {
		errs = append(errs, models.FieldError{Field: "user", Message: "must be at most 120 characters"})
	}

	if len(input.Locations) == 0 {
		errs = append(errs, models.FieldError{Field: "locations", Message: "must contain at least one location"})
	}
	for i, loc := range input.Locations {
		errs = append(errs, s.validateLocation(&loc, "locations", i)...)
	}

	return errs
}

// validateLocation validates a single trip location.
func (s *Service) validateLocation(loc *models.TripLocation, prefix string, index int) []models.FieldError {
	var errs []models.FieldError

	field := func(name string) string {
		return prefix + "[" + strconv.Itoa(index) + "]." + name
	}

	if loc.Name == "" {
		errs = append(errs, models.FieldError{Field: field("name"), Message: "is required"})
	} else if len(loc.Name) > MaxLocationNameLength {
		errs = append(errs, models.FieldError{Field: field("name"), Message: "must be at most 200 characters"})
	}

	if loc.Position.Lat < -90 || loc.Position.Lat > 90 {
		errs = append(errs, models.FieldError{
			Field:   field("position.lat"),
			Message: "must be between -90 and 90",
		})
	}
	if loc.Position.Lng < -180 || loc.Position.Lng > 180 {
		errs = append(errs, models.FieldError{
			Field:   field("position.lng"),
			Message: "must be between -180 and 180",
		})
	}

	return errs
}

// toAPITrip converts a domain Trip to an API Trip.
func (s *Service) toAPITrip(t *Trip) models.Trip {
	locations := make([]models.TripLocation, 0, len(t.Locations))
	for _, loc := range t.Locations {
		locations = append(locations, models.TripLocation{
			Name:     loc.Name,
			Position: models.Point{Lat: loc.Position.Lat, Lng: loc.Position.Lng},
		})
	}

	var legs []models.RouteLeg
	for _, leg := range t.RouteDetails {
		legs = append(legs, models.RouteLeg{
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
			Distance:        leg.Distance,
			Duration:        leg.Duration,
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			StartLocation:   models.Point{Lat: leg.StartLocation.Lat, Lng: leg.StartLocation.Lng},
			EndLocation:     models.Point{Lat: leg.EndLocation.Lat, Lng: leg.EndLocation.Lng},
		})
	}

	return models.Trip{
		ID:            t.ID,
		User:          t.User,
		Locations:     locations,
		RouteDetails:  legs,
		TotalDistance: t.TotalDistance,
		TotalDuration: t.TotalDuration,
		CreatedAt:     models.Timestamp(t.CreatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
