package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myguide/internal/models/response_models"
	"myguide/pkg/middleware"
	"myguide/pkg/utils"
)

type fakeRecommendationService struct {
	lastUser  string
	lastLimit int
	err       error
}

func (f *fakeRecommendationService) GetRecommendations(ctx context.Context, userID string, limit int) ([]response_models.TripRecommendationResponse, error) {
	f.lastUser, f.lastLimit = userID, limit
	if f.err != nil {
		return nil, f.err
	}
	return []response_models.TripRecommendationResponse{{Title: "Discover Casbah", TripType: "sightseeing"}}, nil
}

func newRecommendationRouter(svc *fakeRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUser)
		c.Next()
	})
	r.GET("/itineraries/recommendations", NewRecommendationController(svc).GetRecommendations)
	return r
}

func TestGetRecommendations(t *testing.T) {
	svc := &fakeRecommendationService{}
	r := newRecommendationRouter(svc)

	w, env := do(r, http.MethodGet, "/itineraries/recommendations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUser, svc.lastUser)
	assert.Equal(t, 5, svc.lastLimit)
	require.Len(t, env.Data, 1)
	assert.Equal(t, "Discover Casbah", env.Data.([]interface{})[0].(map[string]interface{})["title"])

	w, _ = do(r, http.MethodGet, "/itineraries/recommendations?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.lastLimit)

	w, _ = do(r, http.MethodGet, "/itineraries/recommendations?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(r, http.MethodGet, "/itineraries/recommendations?limit=50", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecommendations_Errors(t *testing.T) {
	r := newRecommendationRouter(&fakeRecommendationService{err: utils.ErrDatabaseError})
	w, env := do(r, http.MethodGet, "/itineraries/recommendations", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", env.Status)

	r = newRecommendationRouter(&fakeRecommendationService{err: utils.ErrUnauthorized})
	w, _ = do(r, http.MethodGet, "/itineraries/recommendations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
