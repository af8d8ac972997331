package services

import (
	"petlink_backend/internal/geo"
	"petlink_backend/internal/models"
	"petlink_backend/internal/repositories"
	"petlink_backend/pkg/apperrors"
)

// NearestShelter pairs the selected shelter with its distance to the
// queried point.
type NearestShelter struct {
	Shelter    *models.Shelter
	DistanceKm float64
}

// LocatorService picks the shelter responsible for a report location.
type LocatorService interface {
	// FindNearestShelter returns the approved shelter with coordinates that
	// is closest to the given point, with the computed distance in km. Ties
	// keep the earliest-created shelter. Returns ErrNoShelterAvailable when
	// no shelter is eligible.
	FindNearestShelter(latitude, longitude float64) (*NearestShelter, error)
}

type locatorService struct {
	shelterRepo repositories.ShelterRepository
}

func NewLocatorService(shelterRepo repositories.ShelterRepository) LocatorService {
	return &locatorService{shelterRepo: shelterRepo}
}

func (s *locatorService) FindNearestShelter(latitude, longitude float64) (*NearestShelter, error) {
	if !geo.ValidCoordinates(latitude, longitude) {
		return nil, apperrors.ErrInvalidCoordinates
	}

	shelters, err := s.shelterRepo.FindApproved()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	var nearest *models.Shelter
	var nearestDist float64

	// Candidates arrive in creation order; the strict comparison keeps the
	// first of equidistant shelters, so repeated calls pick the same one.
	for i := range shelters {
		shelter := &shelters[i]
		if !shelter.HasCoordinates() {
			continue
		}

		dist := geo.Distance(latitude, longitude, *shelter.Latitude, *shelter.Longitude)
		if nearest == nil || dist < nearestDist {
			nearest = shelter
			nearestDist = dist
		}
	}

	if nearest == nil {
		return nil, apperrors.ErrNoShelterAvailable
	}
	return &NearestShelter{Shelter: nearest, DistanceKm: nearestDist}, nil
}
