package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petlink_backend/internal/middleware"
	"petlink_backend/internal/models"
	"petlink_backend/internal/services"
	"petlink_backend/internal/services/dto"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		// Anonymous submissions are allowed.
		reports.POST("", middleware.OptionalAuthMiddleware(), h.CreateReport)
		reports.GET("/open", h.GetOpenReports)
		reports.GET("/:reportId", h.GetReport)
		reports.GET("/:reportId/history", h.GetHistory)
	}

	authed := r.Group("/reports")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/my", h.GetMyReports)
	}

	status := r.Group("/reports")
	status.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleShelterAdmin, models.UserRoleAdmin),
	)
	{
		status.PUT("/:reportId/status", h.UpdateStatus)
	}
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID := h.GetOptionalUserID(c)

	report, err := h.reportService.CreateReport(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) GetOpenReports(c *gin.Context) {
	reports, err := h.reportService.GetOpenReports()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) GetMyReports(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reports, err := h.reportService.GetMyReports(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Param("reportId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetHistory(c *gin.Context) {
	history, err := h.reportService.GetHistory(c.Param("reportId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateReportStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	report, err := h.reportService.UpdateStatus(userID, c.Param("reportId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
