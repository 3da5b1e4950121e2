package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

type ContentHandler struct {
	logger  *logrus.Logger
	content services.ContentServiceInterface
}

func NewContentHandler(logger *logrus.Logger, content services.ContentServiceInterface) *ContentHandler {
	return &ContentHandler{
		logger:  logger,
		content: content,
	}
}

func (h *ContentHandler) GetMovie(c *gin.Context) {
	movieID, ok := parseIDParam(c, "movieId", "INVALID_MOVIE_ID", "Invalid movie ID format")
	if !ok {
		return
	}

	movie, err := h.content.GetMovie(c.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("MOVIE_NOT_FOUND", "Movie not found"))
			return
		}
		h.logger.WithError(err).Error("Failed to load movie")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to load movie"))
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (h *ContentHandler) Search(c *gin.Context) {
	var req models.MovieSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	movies, err := h.content.Search(c.Request.Context(), req)
	if err != nil {
		h.logger.WithError(err).Error("Movie search failed")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Search failed"))
		return
	}

	if movies == nil {
		movies = []models.Movie{}
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": movies,
		"count":  len(movies),
	})
}

func (h *ContentHandler) Genres(c *gin.Context) {
	genres, err := h.content.Genres(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load genres")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to load genres"))
		return
	}

	if genres == nil {
		genres = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres})
}
