package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petlink_backend/internal/middleware"
	"petlink_backend/internal/services"
	"petlink_backend/internal/services/dto"
)

type AnimalHandler struct {
	*BaseHandler
	animalService services.AnimalService
}

func NewAnimalHandler(base *BaseHandler, animalService services.AnimalService) *AnimalHandler {
	return &AnimalHandler{
		BaseHandler:   base,
		animalService: animalService,
	}
}

func (h *AnimalHandler) RegisterRoutes(r *gin.RouterGroup) {
	animals := r.Group("/animals")
	{
		animals.GET("", h.SearchAnimals)
		animals.GET("/breeds", h.GetBreeds)
		animals.GET("/:animalId", h.GetAnimal)
	}

	authed := r.Group("/animals")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", h.CreateAnimal)
		authed.PUT("/:animalId", h.UpdateAnimal)
		authed.DELETE("/:animalId", h.DeactivateAnimal)
	}
}

func (h *AnimalHandler) SearchAnimals(c *gin.Context) {
	var req dto.SearchAnimalsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	animals, err := h.animalService.SearchAnimals(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, animals)
}

func (h *AnimalHandler) GetBreeds(c *gin.Context) {
	breeds, err := h.animalService.GetBreeds(c.Query("species"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breeds": breeds})
}

func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	animal, err := h.animalService.GetAnimal(c.Param("animalId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, animal)
}

func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnimalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	animal, err := h.animalService.CreateAnimal(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, animal)
}

func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAnimalRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	animal, err := h.animalService.UpdateAnimal(userID, c.Param("animalId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, animal)
}

func (h *AnimalHandler) DeactivateAnimal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.animalService.DeactivateAnimal(userID, c.Param("animalId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Animal listing deactivated"})
}
