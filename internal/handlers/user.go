package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

type UserHandler struct {
	logger *logrus.Logger
	users  services.UsersServiceInterface
}

func NewUserHandler(logger *logrus.Logger, users services.UsersServiceInterface) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_REQUEST", err.Error()))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to create user"))
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId", "INVALID_USER_ID", "Invalid user ID format")
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("USER_NOT_FOUND", "User not found"))
			return
		}
		h.logger.WithError(err).Error("Failed to load user")
		c.JSON(http.StatusInternalServerError, errorResponse("INTERNAL_ERROR", "Failed to load user"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// parseIDParam reads a positive int64 path parameter or writes a 400 and
// reports false.
func parseIDParam(c *gin.Context, name, code, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse(code, message))
		return 0, false
	}
	return id, true
}
