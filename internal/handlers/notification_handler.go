package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petlink_backend/internal/middleware"
	"petlink_backend/internal/models"
	"petlink_backend/internal/services"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
	shelterService      services.ShelterService
}

func NewNotificationHandler(
	base *BaseHandler,
	notificationService services.NotificationService,
	shelterService services.ShelterService,
) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		shelterService:      shelterService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.GetNotifications)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.PUT("/:notificationId/read", h.MarkAsRead)
	}
}

// resolveRecipient maps the request to a notification feed. Users read their
// own feed; a shelter admin asking for kind=shelter reads the shelter feed.
// Admin rows are addressed per admin user, so kind=admin is self-scoping:
// anyone else asking for it just gets an empty feed.
func (h *NotificationHandler) resolveRecipient(c *gin.Context, userID string) (string, string, bool) {
	kind := c.DefaultQuery("kind", models.RecipientKindUser)

	switch kind {
	case models.RecipientKindUser, models.RecipientKindAdmin:
		return userID, kind, true
	case models.RecipientKindShelter:
		shelter, err := h.shelterService.GetMyShelter(userID)
		if err != nil {
			h.HandleServiceError(c, err)
			return "", "", false
		}
		return shelter.ID, kind, true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown recipient kind"})
		return "", "", false
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	recipientID, kind, ok := h.resolveRecipient(c, userID)
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetNotifications(recipientID, kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	recipientID, kind, ok := h.resolveRecipient(c, userID)
	if !ok {
		return
	}

	count, err := h.notificationService.GetUnreadCount(recipientID, kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	// Shelter feed entries belong to the shelter, not the admin user.
	recipientID := userID
	if c.Query("kind") == models.RecipientKindShelter {
		id, _, ok := h.resolveRecipient(c, userID)
		if !ok {
			return
		}
		recipientID = id
	}

	notification, err := h.notificationService.MarkAsRead(recipientID, c.Param("notificationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
