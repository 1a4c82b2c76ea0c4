package handlers

import (
	"net/http"

	"sms-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AreaHandler handles HTTP requests for coverage area operations
type AreaHandler struct {
	areaService *service.AreaService
}

// NewAreaHandler creates a new area handler
func NewAreaHandler(areaService *service.AreaService) *AreaHandler {
	return &AreaHandler{
		areaService: areaService,
	}
}

// CreateArea handles POST /areas
// @Summary Create an area
// @Description Create a coverage area with an optional initial roster of numbers
// @Tags areas
// @Accept json
// @Produce json
// @Param area body service.CreateAreaRequest true "Area data"
// @Success 201 {object} service.AreaResponse "Area created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Area already exists"
// @Router /areas [post]
func (h *AreaHandler) CreateArea(c *gin.Context) {
	var req service.CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.areaService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListAreas handles GET /areas
// @Summary List areas
// @Description Get all coverage areas with their rosters
// @Tags areas
// @Produce json
// @Success 200 {object} map[string]interface{} "Areas retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /areas [get]
func (h *AreaHandler) ListAreas(c *gin.Context) {
	areas, err := h.areaService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas, "total": len(areas)})
}

// AppendNumbers handles POST /areas/:name/numbers
// @Summary Append numbers to an area
// @Description Append phone numbers to an existing area's roster
// @Tags areas
// @Accept json
// @Produce json
// @Param name path string true "Area name"
// @Param numbers body service.AppendNumbersRequest true "Numbers to append"
// @Success 200 {object} map[string]string "Numbers appended"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Area not found"
// @Router /areas/{name}/numbers [post]
func (h *AreaHandler) AppendNumbers(c *gin.Context) {
	var req service.AppendNumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.areaService.AppendNumbers(c.Param("name"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Numbers appended successfully"})
}
