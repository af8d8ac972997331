package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petlink_backend/internal/models"
	"petlink_backend/internal/services/dto"
	"petlink_backend/pkg/apperrors"
)

type shelterServiceFixture struct {
	shelterRepo      *fakeShelterRepo
	userRepo         *fakeUserRepo
	notificationRepo *fakeNotificationRepo
	notification     NotificationService
	svc              ShelterService
}

func newShelterServiceFixture() *shelterServiceFixture {
	shelterRepo := newFakeShelterRepo()
	userRepo := newFakeUserRepo()
	notificationRepo := newFakeNotificationRepo()
	notification := NewNotificationService(notificationRepo)

	return &shelterServiceFixture{
		shelterRepo:      shelterRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notification:     notification,
		svc:              NewShelterService(shelterRepo, userRepo, notification),
	}
}

func validShelterRequest() *dto.RegisterShelterRequest {
	return &dto.RegisterShelterRequest{
		Name:      "Haven",
		Email:     "haven@shelters.test",
		Latitude:  ptrFloat(43.24),
		Longitude: ptrFloat(76.89),
	}
}

func TestRegisterShelter_NotifiesEachAdmin(t *testing.T) {
	f := newShelterServiceFixture()
	adminA := f.userRepo.addUser("Alice", models.UserRoleAdmin)
	adminB := f.userRepo.addUser("Bob", models.UserRoleAdmin)
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	shelter, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ShelterStatusPending, shelter.Status)

	require.Len(t, f.notificationRepo.notifications, 2)
	recipients := []string{}
	for _, n := range f.notificationRepo.notifications {
		assert.Equal(t, models.RecipientKindAdmin, n.RecipientKind)
		assert.Equal(t, NotificationTypeShelterStatus, n.Type)
		require.NotNil(t, n.RecipientID)
		recipients = append(recipients, *n.RecipientID)
	}
	assert.ElementsMatch(t, []string{adminA.ID, adminB.ID}, recipients)
}

func TestRegisterShelter_AdminCanReadAndClearTheFeed(t *testing.T) {
	f := newShelterServiceFixture()
	admin := f.userRepo.addUser("Alice", models.UserRoleAdmin)
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	_, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)

	list, err := f.notification.GetNotifications(admin.ID, models.RecipientKindAdmin)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, int64(1), list.UnreadCount)

	read, err := f.notification.MarkAsRead(admin.ID, list.Notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	count, err := f.notification.GetUnreadCount(admin.ID, models.RecipientKindAdmin)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRegisterShelter_OneRequestPerUser(t *testing.T) {
	f := newShelterServiceFixture()
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	_, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)

	_, err = f.svc.RegisterShelter(requester.ID, validShelterRequest())
	assert.ErrorIs(t, err, apperrors.ErrShelterAlreadyExists)
}

func TestReviewShelter_ApprovePromotesRequesterAndNotifies(t *testing.T) {
	f := newShelterServiceFixture()
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	shelter, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)

	reviewed, err := f.svc.ReviewShelter(shelter.ID, &dto.ReviewShelterRequest{
		Approve: true, Note: "welcome aboard",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ShelterStatusApproved, reviewed.Status)

	promoted, err := f.userRepo.FindByID(requester.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleShelterAdmin, promoted.Role)

	// The decision lands in the requester's feed with a queued email.
	last := f.notificationRepo.notifications[len(f.notificationRepo.notifications)-1]
	assert.Equal(t, models.RecipientKindUser, last.RecipientKind)
	require.NotNil(t, last.RecipientID)
	assert.Equal(t, requester.ID, *last.RecipientID)
	require.NotEmpty(t, f.notificationRepo.outboxes)
	assert.Equal(t, "haven@shelters.test", f.notificationRepo.outboxes[len(f.notificationRepo.outboxes)-1].Recipient)
}

func TestReviewShelter_RejectKeepsUserRole(t *testing.T) {
	f := newShelterServiceFixture()
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	shelter, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)

	reviewed, err := f.svc.ReviewShelter(shelter.ID, &dto.ReviewShelterRequest{Approve: false})
	require.NoError(t, err)
	assert.Equal(t, models.ShelterStatusRejected, reviewed.Status)

	user, err := f.userRepo.FindByID(requester.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Role)
}

func TestReviewShelter_SecondReviewConflicts(t *testing.T) {
	f := newShelterServiceFixture()
	requester := f.userRepo.addUser("Dana", models.UserRoleUser)

	shelter, err := f.svc.RegisterShelter(requester.ID, validShelterRequest())
	require.NoError(t, err)

	_, err = f.svc.ReviewShelter(shelter.ID, &dto.ReviewShelterRequest{Approve: true})
	require.NoError(t, err)

	_, err = f.svc.ReviewShelter(shelter.ID, &dto.ReviewShelterRequest{Approve: false})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode)
}
