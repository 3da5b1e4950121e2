package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/flickpick/flickpick/internal/services"
	"github.com/flickpick/flickpick/pkg/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type orchestratorStub struct {
	hybrid        func(userID int64, limit int, alpha float64) ([]models.Recommendation, error)
	contentOnly   func(userID int64) ([]models.Recommendation, error)
	collaborative func(userID int64) ([]models.Recommendation, error)
}

func (s *orchestratorStub) Hybrid(_ context.Context, userID int64, limit int, alpha float64) ([]models.Recommendation, error) {
	return s.hybrid(userID, limit, alpha)
}

func (s *orchestratorStub) ContentBasedOnly(_ context.Context, userID int64) ([]models.Recommendation, error) {
	return s.contentOnly(userID)
}

func (s *orchestratorStub) CollaborativeOnly(_ context.Context, userID int64) ([]models.Recommendation, error) {
	return s.collaborative(userID)
}

type explanationStub struct {
	explain func(userID, movieID int64) (*models.Explanation, error)
}

func (s *explanationStub) Explain(_ context.Context, userID, movieID int64) (*models.Explanation, error) {
	return s.explain(userID, movieID)
}

type ratingsStub struct {
	setRating      func(userID, movieID int64, rating float64) (models.Rating, error)
	getUserRatings func(userID int64) ([]models.Rating, error)
}

func (s *ratingsStub) SetRating(_ context.Context, userID, movieID int64, rating float64) (models.Rating, error) {
	return s.setRating(userID, movieID, rating)
}

func (s *ratingsStub) GetUserRatings(_ context.Context, userID int64) ([]models.Rating, error) {
	return s.getUserRatings(userID)
}

type contentStub struct {
	getMovie func(movieID int64) (*models.Movie, error)
	search   func(req models.MovieSearchRequest) ([]models.Movie, error)
	genres   func() ([]string, error)
}

func (s *contentStub) GetMovie(_ context.Context, movieID int64) (*models.Movie, error) {
	return s.getMovie(movieID)
}

func (s *contentStub) Search(_ context.Context, req models.MovieSearchRequest) ([]models.Movie, error) {
	return s.search(req)
}

func (s *contentStub) Genres(_ context.Context) ([]string, error) {
	return s.genres()
}

type usersStub struct {
	createUser func(name string) (models.User, error)
	getUser    func(userID int64) (*models.User, error)
}

func (s *usersStub) CreateUser(_ context.Context, name string) (models.User, error) {
	return s.createUser(name)
}

func (s *usersStub) GetUser(_ context.Context, userID int64) (*models.User, error) {
	return s.getUser(userID)
}

type healthStub struct {
	status *services.HealthStatus
}

func (s *healthStub) Check(_ context.Context) *services.HealthStatus {
	return s.status
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, recorder)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "response carries no error object")
	code, _ := errObj["code"].(string)
	return code
}
