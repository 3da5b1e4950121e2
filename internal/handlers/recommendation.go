package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

type RecommendationHandler struct {
	logger       *logrus.Logger
	orchestrator services.RecommendationOrchestratorInterface
	explanations services.ExplanationServiceInterface
}

func NewRecommendationHandler(
	logger *logrus.Logger,
	orchestrator services.RecommendationOrchestratorInterface,
	explanations services.ExplanationServiceInterface,
) *RecommendationHandler {
	return &RecommendationHandler{
		logger:       logger,
		orchestrator: orchestrator,
		explanations: explanations,
	}
}

func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "INVALID_USER_ID", "Invalid user ID format")
	if !ok {
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, errorResponse("INVALID_LIMIT", "limit must be an integer between 1 and 100"))
			return
		}
		limit = parsed
	}

	// Out-of-range alpha falls through to the configured default inside
	// the orchestrator.
	alpha := -1.0
	if alphaStr := c.Query("alpha"); alphaStr != "" {
		parsed, err := strconv.ParseFloat(alphaStr, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			c.JSON(http.StatusBadRequest, errorResponse("INVALID_ALPHA", "alpha must be a number between 0 and 1"))
			return
		}
		alpha = parsed
	}

	strategy := c.DefaultQuery("strategy", "hybrid")

	var (
		results []models.Recommendation
		err     error
	)

	ctx := c.Request.Context()
	switch strategy {
	case "hybrid":
		results, err = h.orchestrator.Hybrid(ctx, userID, limit, alpha)
	case "content":
		results, err = h.orchestrator.ContentBasedOnly(ctx, userID)
	case "collaborative":
		results, err = h.orchestrator.CollaborativeOnly(ctx, userID)
	default:
		c.JSON(http.StatusBadRequest, errorResponse(
			"INVALID_STRATEGY", "strategy must be one of: hybrid, content, collaborative"))
		return
	}

	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"strategy": strategy,
		}).Error("Failed to generate recommendations")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to generate recommendations"))
		return
	}

	if results == nil {
		results = []models.Recommendation{}
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		UserID:          userID,
		Strategy:        strategy,
		Recommendations: results,
		GeneratedAt:     time.Now().UTC(),
	})
}

func (h *RecommendationHandler) Explain(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "INVALID_USER_ID", "Invalid user ID format")
	if !ok {
		return
	}

	movieID, ok := parseIDParam(c, "movieId", "INVALID_MOVIE_ID", "Invalid movie ID format")
	if !ok {
		return
	}

	explanation, err := h.explanations.Explain(c.Request.Context(), userID, movieID)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"movie_id": movieID,
		}).Error("Failed to explain recommendation")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to explain recommendation"))
		return
	}

	c.JSON(http.StatusOK, explanation)
}
