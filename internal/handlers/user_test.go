package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

func userRouter(users *usersStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(testLogger(), users)

	router := gin.New()
	router.POST("/api/v1/users", handler.Create)
	router.GET("/api/v1/users/:userId", handler.Get)
	return router
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("creates and returns the user", func(t *testing.T) {
		users := &usersStub{
			createUser: func(name string) (models.User, error) {
				return models.User{UserID: 1, Name: name, CreatedAt: time.Now()}, nil
			},
		}
		router := userRouter(users)

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/users", models.CreateUserRequest{Name: "alice"})

		require.Equal(t, http.StatusCreated, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, float64(1), body["userId"])
		assert.Equal(t, "alice", body["name"])
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		router := userRouter(&usersStub{})

		recorder := performRequest(t, router, http.MethodPost, "/api/v1/users", map[string]any{})

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, recorder))
	})
}

func TestUserHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		users := &usersStub{
			getUser: func(userID int64) (*models.User, error) {
				return &models.User{UserID: userID, Name: "alice", CreatedAt: time.Now()}, nil
			},
		}
		router := userRouter(users)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/users/1", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "alice", decodeBody(t, recorder)["name"])
	})

	t.Run("missing maps to 404", func(t *testing.T) {
		users := &usersStub{
			getUser: func(userID int64) (*models.User, error) {
				return nil, fmt.Errorf("%w: %d", services.ErrUserNotFound, userID)
			},
		}
		router := userRouter(users)

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/users/999", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "USER_NOT_FOUND", errorCode(t, recorder))
	})

	t.Run("rejects a bad user id", func(t *testing.T) {
		router := userRouter(&usersStub{})

		recorder := performRequest(t, router, http.MethodGet, "/api/v1/users/abc", nil)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
