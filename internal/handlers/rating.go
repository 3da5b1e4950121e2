package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

type RatingHandler struct {
	logger   *logrus.Logger
	ratings  services.RatingsServiceInterface
	validate *validator.Validate
}

func NewRatingHandler(logger *logrus.Logger, ratings services.RatingsServiceInterface) *RatingHandler {
	return &RatingHandler{
		logger:   logger,
		ratings:  ratings,
		validate: validator.New(),
	}
}

func (h *RatingHandler) Set(c *gin.Context) {
	var req models.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("VALIDATION_FAILED", validationMessage(err)))
		return
	}

	rating, err := h.ratings.SetRating(c.Request.Context(), req.UserID, req.MovieID, req.Rating)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  req.UserID,
			"movie_id": req.MovieID,
		}).Error("Failed to set rating")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to set rating"))
		return
	}

	c.JSON(http.StatusOK, rating)
}

func (h *RatingHandler) GetByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "INVALID_USER_ID", "Invalid user ID format")
	if !ok {
		return
	}

	ratings, err := h.ratings.GetUserRatings(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load user ratings")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to load ratings"))
		return
	}

	if ratings == nil {
		ratings = []models.Rating{}
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":  userID,
		"ratings": ratings,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	return fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag())
}
