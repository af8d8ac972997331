package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petlink_backend/internal/middleware"
	"petlink_backend/internal/models"
	"petlink_backend/internal/services"
	"petlink_backend/internal/services/dto"
)

type AdoptionHandler struct {
	*BaseHandler
	adoptionService services.AdoptionService
}

func NewAdoptionHandler(base *BaseHandler, adoptionService services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{
		BaseHandler:     base,
		adoptionService: adoptionService,
	}
}

func (h *AdoptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	adoptions := r.Group("/adoptions")
	adoptions.Use(middleware.AuthMiddleware())
	{
		adoptions.POST("", h.CreateAdoption)
		adoptions.GET("/my", h.GetMyAdoptions)
		adoptions.GET("/:adoptionId", h.GetAdoption)
		adoptions.GET("/:adoptionId/history", h.GetHistory)
		adoptions.PUT("/:adoptionId/status", h.ReviewAdoption)
	}

	shelter := r.Group("/adoptions")
	shelter.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(models.UserRoleShelterAdmin),
	)
	{
		shelter.GET("/shelter", h.GetShelterAdoptions)
	}
}

func (h *AdoptionHandler) CreateAdoption(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdoptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	adoption, err := h.adoptionService.CreateAdoption(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, adoption)
}

func (h *AdoptionHandler) GetMyAdoptions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	adoptions, err := h.adoptionService.GetMyAdoptions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, adoptions)
}

func (h *AdoptionHandler) GetShelterAdoptions(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	adoptions, err := h.adoptionService.GetShelterAdoptions(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, adoptions)
}

func (h *AdoptionHandler) GetAdoption(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	adoption, err := h.adoptionService.GetAdoption(c.Param("adoptionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, adoption)
}

func (h *AdoptionHandler) GetHistory(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	history, err := h.adoptionService.GetHistory(c.Param("adoptionId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *AdoptionHandler) ReviewAdoption(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReviewAdoptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	adoption, err := h.adoptionService.ReviewAdoption(userID, c.Param("adoptionId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, adoption)
}
