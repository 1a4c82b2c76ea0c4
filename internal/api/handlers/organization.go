package handlers

import (
	"io"
	"net/http"
	"strconv"

	"sms-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploaded files are read fully into memory for chunking; 25 MB covers
// any realistic text extraction of an SMS-answerable document.
const maxUploadBytes = 25 << 20

// OrganizationHandler handles HTTP requests for organization operations
type OrganizationHandler struct {
	orgService        *service.OrganizationService
	docService        *service.DocumentService
	onboardingService *service.OnboardingService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(
	orgService *service.OrganizationService,
	docService *service.DocumentService,
	onboardingService *service.OnboardingService,
) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:        orgService,
		docService:        docService,
		onboardingService: onboardingService,
	}
}

// CreateOrganization handles POST /organizations
// @Summary Register an organization
// @Description Register a new organization with a hashed password
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Organization created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Organization already exists"
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.orgService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetOrganization handles GET /organizations/:id
// @Summary Get an organization
// @Description Get an organization by its ID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} service.OrganizationResponse "Organization found"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID"})
		return
	}

	resp, err := h.orgService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListOrganizations handles GET /organizations
// @Summary List organizations
// @Description Get all organizations with pagination support
// @Tags organizations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.OrganizationListResponse "Organizations retrieved"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.orgService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOrganizationByEmail handles GET /organizations/by-email/:email
// @Summary Get an organization by email
// @Description Get an organization by its registered email address
// @Tags organizations
// @Produce json
// @Param email path string true "Organization email"
// @Success 200 {object} service.OrganizationResponse "Organization found"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Router /organizations/by-email/{email} [get]
func (h *OrganizationHandler) GetOrganizationByEmail(c *gin.Context) {
	resp, err := h.orgService.GetByEmail(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LoginRequest represents the credentials for organization login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /organizations/login
// @Summary Authenticate an organization
// @Description Check an organization's email and password
// @Tags organizations
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} service.OrganizationResponse "Authenticated"
// @Failure 400 {object} ErrorResponse "Invalid credentials"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Router /organizations/login [post]
func (h *OrganizationHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.orgService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListDocuments handles GET /organizations/:id/documents
// @Summary List an organization's documents
// @Description Get the onboarded documents of an organization with pagination
// @Tags documents
// @Produce json
// @Param id path string true "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse "Documents retrieved"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Router /organizations/{id}/documents [get]
func (h *OrganizationHandler) ListDocuments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.docService.GetByOrganizationID(id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadDocument handles POST /organizations/:id/documents
// @Summary Onboard a document
// @Description Upload a document's extracted text, index it for retrieval and optionally link a shortcode
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Organization ID"
// @Param file formData file true "Extracted document text"
// @Param short_code formData string false "Shortcode to link to the document"
// @Param description formData string false "Document description"
// @Success 201 {object} service.OnboardingResult "Document onboarded"
// @Success 200 {object} service.OnboardingResult "Document already onboarded"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} service.OnboardingResult "Shortcode held by another organization"
// @Failure 502 {object} service.OnboardingResult "Index or ingestion failure"
// @Router /organizations/{id}/documents [post]
func (h *OrganizationHandler) UploadDocument(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid organization ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "file exceeds the upload size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file: " + err.Error()})
		return
	}

	req := &service.OnboardRequest{
		OrganizationID: orgID,
		FileName:       fileHeader.Filename,
		Content:        string(content),
		ShortCode:      c.PostForm("short_code"),
		Description:    c.PostForm("description"),
	}

	result, err := h.onboardingService.Onboard(c.Request.Context(), req)
	if err != nil && result == nil {
		respondError(c, err)
		return
	}

	c.JSON(onboardingStatus(result), result)
}

// onboardingStatus maps an onboarding outcome onto an HTTP status. The
// result body always carries the outcome so callers can retry precisely.
func onboardingStatus(result *service.OnboardingResult) int {
	switch result.Outcome {
	case service.OutcomeCreated:
		return http.StatusCreated
	case service.OutcomeAlreadyExists:
		return http.StatusOK
	case service.OutcomeFailedLinking:
		return http.StatusConflict
	case service.OutcomeFailedIndexCreation, service.OutcomeFailedIngestion:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// DeleteDocument handles DELETE /documents/:id
// @Summary Delete a document
// @Description Remove a document's metadata and shortcode links
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]string "Document deleted"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (h *OrganizationHandler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid document ID"})
		return
	}

	if err := h.docService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
