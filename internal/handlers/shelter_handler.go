package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petlink_backend/internal/middleware"
	"petlink_backend/internal/models"
	"petlink_backend/internal/services"
	"petlink_backend/internal/services/dto"
)

type ShelterHandler struct {
	*BaseHandler
	shelterService services.ShelterService
}

func NewShelterHandler(base *BaseHandler, shelterService services.ShelterService) *ShelterHandler {
	return &ShelterHandler{
		BaseHandler:    base,
		shelterService: shelterService,
	}
}

func (h *ShelterHandler) RegisterRoutes(r *gin.RouterGroup) {
	shelters := r.Group("/shelters")
	{
		shelters.GET("", h.GetApprovedShelters)
		shelters.GET("/:shelterId", h.GetShelter)
	}

	authed := r.Group("/shelters")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.RegisterShelter)
		authed.GET("/my", h.GetMyShelter)
	}

	admin := r.Group("/admin/shelters")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/pending", h.GetPendingShelters)
		admin.PUT("/:shelterId/review", h.ReviewShelter)
	}
}

func (h *ShelterHandler) GetApprovedShelters(c *gin.Context) {
	shelters, err := h.shelterService.GetApprovedShelters()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shelters)
}

func (h *ShelterHandler) GetShelter(c *gin.Context) {
	shelter, err := h.shelterService.GetShelter(c.Param("shelterId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shelter)
}

func (h *ShelterHandler) RegisterShelter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RegisterShelterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	shelter, err := h.shelterService.RegisterShelter(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shelter)
}

func (h *ShelterHandler) GetMyShelter(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	shelter, err := h.shelterService.GetMyShelter(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shelter)
}

func (h *ShelterHandler) GetPendingShelters(c *gin.Context) {
	shelters, err := h.shelterService.GetPendingShelters()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shelters)
}

func (h *ShelterHandler) ReviewShelter(c *gin.Context) {
	var req dto.ReviewShelterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	shelter, err := h.shelterService.ReviewShelter(c.Param("shelterId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, shelter)
}
