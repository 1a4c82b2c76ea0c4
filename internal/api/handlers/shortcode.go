package handlers

import (
	"net/http"
	"strconv"

	"sms-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShortCodeHandler handles HTTP requests for shortcode operations
type ShortCodeHandler struct {
	scService *service.ShortCodeService
}

// NewShortCodeHandler creates a new shortcode handler
func NewShortCodeHandler(scService *service.ShortCodeService) *ShortCodeHandler {
	return &ShortCodeHandler{
		scService: scService,
	}
}

// CreateShortCode handles POST /shortcodes
// @Summary Register a shortcode
// @Description Register a dialing shortcode for an organization
// @Tags shortcodes
// @Accept json
// @Produce json
// @Param shortcode body service.CreateShortCodeRequest true "Shortcode data"
// @Success 201 {object} service.ShortCodeResponse "Shortcode created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Shortcode already registered"
// @Router /shortcodes [post]
func (h *ShortCodeHandler) CreateShortCode(c *gin.Context) {
	var req service.CreateShortCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.scService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListShortCodes handles GET /shortcodes
// @Summary List shortcodes
// @Description Get all shortcodes with pagination, or an organization's shortcodes when organization_id is given
// @Tags shortcodes
// @Produce json
// @Param organization_id query string false "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShortCodeListResponse "Shortcodes retrieved"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Router /shortcodes [get]
func (h *ShortCodeHandler) ListShortCodes(c *gin.Context) {
	if orgParam := c.Query("organization_id"); orgParam != "" {
		orgID, err := uuid.Parse(orgParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID"})
			return
		}
		codes, err := h.scService.GetByOrganizationID(orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"short_codes": codes, "total": len(codes)})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.scService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetShortCode handles GET /shortcodes/:code
// @Summary Get a shortcode
// @Description Get a shortcode by its dialing code
// @Tags shortcodes
// @Produce json
// @Param code path string true "Shortcode"
// @Success 200 {object} service.ShortCodeResponse "Shortcode found"
// @Failure 404 {object} ErrorResponse "Shortcode not found"
// @Router /shortcodes/{code} [get]
func (h *ShortCodeHandler) GetShortCode(c *gin.Context) {
	resp, err := h.scService.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LinkDocumentRequest represents the request to point a shortcode at a document
type LinkDocumentRequest struct {
	DocumentID uuid.UUID `json:"document_id" binding:"required"`
}

// LinkDocument handles POST /shortcodes/:code/documents
// @Summary Link a document to a shortcode
// @Description Point a shortcode at an onboarded document; the newest link wins for routing
// @Tags shortcodes
// @Accept json
// @Produce json
// @Param code path string true "Shortcode"
// @Param link body LinkDocumentRequest true "Document to link"
// @Success 200 {object} map[string]string "Document linked"
// @Failure 400 {object} ErrorResponse "Document belongs to a different organization"
// @Failure 404 {object} ErrorResponse "Shortcode or document not found"
// @Failure 409 {object} ErrorResponse "Link already exists"
// @Router /shortcodes/{code}/documents [post]
func (h *ShortCodeHandler) LinkDocument(c *gin.Context) {
	var req LinkDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.scService.LinkDocument(c.Param("code"), req.DocumentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document linked successfully"})
}

// DeleteShortCode handles DELETE /shortcodes/:id
// @Summary Delete a shortcode
// @Description Remove a shortcode and its document links
// @Tags shortcodes
// @Produce json
// @Param code path string true "Shortcode ID"
// @Success 200 {object} map[string]string "Shortcode deleted"
// @Failure 404 {object} ErrorResponse "Shortcode not found"
// @Router /shortcodes/{id} [delete]
func (h *ShortCodeHandler) DeleteShortCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shortcode ID"})
		return
	}

	if err := h.scService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shortcode deleted successfully"})
}
