package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cornndawwg/icatalyst-production-sub001/internal/domain"
	"github.com/cornndawwg/icatalyst-production-sub001/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	detection       *usecase.DetectionService
	recommendations *usecase.RecommendationService
	tracker         *usecase.AccuracyTracker
}

// NewHandler creates a new HTTP handler
func NewHandler(
	detection *usecase.DetectionService,
	recommendations *usecase.RecommendationService,
	tracker *usecase.AccuracyTracker,
) *Handler {
	return &Handler{
		detection:       detection,
		recommendations: recommendations,
		tracker:         tracker,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "icatalyst-backend",
		"version": "1.0.0",
	})
}

type detectRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
}

// DetectPersona classifies free-form customer text into a persona.
// Empty text is valid and resolves to the low-confidence default persona.
func (h *Handler) DetectPersona(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.detection.DetectPersona(c.Request.Context(), req.Text, req.Context)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPersonas returns registered personas, optionally filtered by type
func (h *Handler) ListPersonas(c *gin.Context) {
	personas, err := h.detection.ListPersonas(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be residential or commercial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"personas": personas})
}

// GetPersona returns one persona config by name
func (h *Handler) GetPersona(c *gin.Context) {
	persona, err := h.detection.GetPersonaConfig(c.Param("name"))
	if err != nil {
		if errors.Is(err, domain.ErrPersonaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, persona)
}

type recommendationRequest struct {
	Persona       string   `json:"persona,omitempty"`
	Text          string   `json:"text,omitempty"`
	Budget        float64  `json:"budget,omitempty"`
	ProjectSize   string   `json:"projectSize,omitempty"`
	PreferredTier string   `json:"preferredTier,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
}

// GenerateRecommendations builds the three tier bundles for a persona,
// detecting the persona from text when it is not given explicitly
func (h *Handler) GenerateRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), usecase.RecommendationRequest{
		Persona:       req.Persona,
		Text:          req.Text,
		Budget:        req.Budget,
		ProjectSize:   req.ProjectSize,
		PreferredTier: req.PreferredTier,
		Requirements:  req.Requirements,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownTier),
			errors.Is(err, domain.ErrPersonaNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCatalogUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

type bulkTestRequest struct {
	Cases []domain.DetectionTestCase `json:"cases" binding:"required"`
}

// RunBulkTest classifies every supplied test case against its expected
// persona and returns the aggregated summary
func (h *Handler) RunBulkTest(c *gin.Context) {
	var req bulkTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: cases are required"})
		return
	}

	summary := h.tracker.RunBulkTest(c.Request.Context(), h.detection, req.Cases)
	c.JSON(http.StatusOK, summary)
}
