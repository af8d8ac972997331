package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petlink_backend/internal/models"
	"petlink_backend/pkg/apperrors"
)

func TestFindNearestShelter_PicksClosest(t *testing.T) {
	repo := newFakeShelterRepo()
	repo.addShelter("Far", models.ShelterStatusApproved, ptrFloat(52.0), ptrFloat(13.0))
	near := repo.addShelter("Near", models.ShelterStatusApproved, ptrFloat(43.24), ptrFloat(76.89))
	repo.addShelter("Farther", models.ShelterStatusApproved, ptrFloat(40.0), ptrFloat(-74.0))

	svc := NewLocatorService(repo)

	// Point right next to the Almaty shelter.
	nearest, err := svc.FindNearestShelter(43.25, 76.9)
	require.NoError(t, err)
	assert.Equal(t, near.ID, nearest.Shelter.ID)
	// 0.01 degrees of both lat and lng at 43°N is roughly 1.4 km.
	assert.InDelta(t, 1.38, nearest.DistanceKm, 0.1)
}

func TestFindNearestShelter_SkipsIneligible(t *testing.T) {
	repo := newFakeShelterRepo()
	// Closest by coordinates, but still pending.
	repo.addShelter("Pending", models.ShelterStatusPending, ptrFloat(43.25), ptrFloat(76.9))
	// Approved but has no coordinates.
	repo.addShelter("Blind", models.ShelterStatusApproved, nil, nil)
	approved := repo.addShelter("Approved", models.ShelterStatusApproved, ptrFloat(51.1), ptrFloat(71.4))

	svc := NewLocatorService(repo)

	nearest, err := svc.FindNearestShelter(43.25, 76.9)
	require.NoError(t, err)
	assert.Equal(t, approved.ID, nearest.Shelter.ID)
	assert.Greater(t, nearest.DistanceKm, 0.0)
}

func TestFindNearestShelter_TieKeepsEarliestCreated(t *testing.T) {
	repo := newFakeShelterRepo()
	first := repo.addShelter("First", models.ShelterStatusApproved, ptrFloat(10.0), ptrFloat(10.0))
	repo.addShelter("Second", models.ShelterStatusApproved, ptrFloat(10.0), ptrFloat(10.0))

	svc := NewLocatorService(repo)

	// Same answer on every call, not whichever the map iteration favors.
	for i := 0; i < 5; i++ {
		nearest, err := svc.FindNearestShelter(10.5, 10.5)
		require.NoError(t, err)
		assert.Equal(t, first.ID, nearest.Shelter.ID)
	}
}

func TestFindNearestShelter_NoneAvailable(t *testing.T) {
	repo := newFakeShelterRepo()
	repo.addShelter("Pending", models.ShelterStatusPending, ptrFloat(43.25), ptrFloat(76.9))
	repo.addShelter("Blind", models.ShelterStatusApproved, nil, nil)

	svc := NewLocatorService(repo)

	_, err := svc.FindNearestShelter(43.25, 76.9)
	assert.ErrorIs(t, err, apperrors.ErrNoShelterAvailable)
}

func TestFindNearestShelter_EmptyTable(t *testing.T) {
	svc := NewLocatorService(newFakeShelterRepo())

	_, err := svc.FindNearestShelter(43.25, 76.9)
	assert.ErrorIs(t, err, apperrors.ErrNoShelterAvailable)
}

func TestFindNearestShelter_InvalidCoordinates(t *testing.T) {
	repo := newFakeShelterRepo()
	repo.addShelter("Approved", models.ShelterStatusApproved, ptrFloat(10.0), ptrFloat(10.0))

	svc := NewLocatorService(repo)

	_, err := svc.FindNearestShelter(91.0, 10.0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)

	_, err = svc.FindNearestShelter(10.0, -181.0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCoordinates)
}

func TestFindNearestShelter_RepoFailureIsNotNoShelter(t *testing.T) {
	repo := newFakeShelterRepo()
	repo.failWith = errors.New("connection refused")

	svc := NewLocatorService(repo)

	_, err := svc.FindNearestShelter(43.25, 76.9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNoShelterAvailable)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
}
