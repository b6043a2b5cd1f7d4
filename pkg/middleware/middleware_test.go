package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myguide/pkg/utils"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id")+"|"+c.GetString("Role"))
	})
	return r
}

func get(r http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	manager := utils.NewJWTManager("secret", time.Hour)
	userID := uuid.New()
	token, err := manager.CreateToken(userID, "traveller")
	require.NoError(t, err)

	r := newRouter(JWTAuthMiddleware(manager))

	w := get(r, http.Header{"Authorization": {"Bearer " + token}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String()+"|traveller", w.Body.String())

	w = get(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, http.Header{"Authorization": {"Token " + token}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := utils.NewJWTManager("another-secret", time.Hour)
	forged, err := other.CreateToken(userID, "admin")
	require.NoError(t, err)
	w = get(r, http.Header{"Authorization": {"Bearer " + forged}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	expired, err := utils.NewJWTManager("secret", -time.Minute).CreateToken(userID, "traveller")
	require.NoError(t, err)
	w = get(r, http.Header{"Authorization": {"Bearer " + expired}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	setRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set("Role", role) }
	}

	w := get(newRouter(setRole("admin"), RoleMiddleware("admin")), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(newRouter(setRole("traveller"), RoleMiddleware("admin")), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := newRouter(TraceIDMiddleware())

	w := get(r, nil)
	generated := w.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = get(r, http.Header{"X-Trace-Id": {incoming}})
	assert.Equal(t, incoming, w.Header().Get("X-Trace-ID"))

	w = get(r, http.Header{"X-Trace-Id": {"not-a-uuid"}})
	assert.NotEqual(t, "not-a-uuid", w.Header().Get("X-Trace-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	r := newRouter(CORSMiddleware())

	w := get(r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
