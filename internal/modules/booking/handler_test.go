package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set("identity_id", "id-1")
		c.Set("role", "fan")
	})
	NewHandler(svc).RegisterRoutes(authed)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAdvanceHandler_StepNamesRouteToWizard(t *testing.T) {
	store := newFakeSessionStore()
	r := newTestRouter(NewService(store, new(mockBookingRepo), nil, time.Hour))

	w := postJSON(r, "/book/event-details", `{
		"fields": {"event_name": "Summer Gala", "event_type": "concert", "event_date": "2026-09-12"}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.JSONEq(t, `"requirements"`, string(env.Data["next_step"]))
	assert.NotEqual(t, `""`, string(env.Data["booking_id"]))
}

func TestAdvanceHandler_UnknownStep(t *testing.T) {
	r := newTestRouter(NewService(newFakeSessionStore(), new(mockBookingRepo), nil, time.Hour))

	w := postJSON(r, "/book/checkout", `{"fields": {}}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_STEP", decode(t, w).Error.Code)
}

func TestAdvanceHandler_FieldErrorsKeepFormState(t *testing.T) {
	r := newTestRouter(NewService(newFakeSessionStore(), new(mockBookingRepo), nil, time.Hour))

	w := postJSON(r, "/book/event-details", `{"fields": {"event_type": "concert"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, "required", env.Error.Details["event_name"])
}

func TestAdvanceHandler_UnknownSessionIs404(t *testing.T) {
	r := newTestRouter(NewService(newFakeSessionStore(), new(mockBookingRepo), nil, time.Hour))

	w := postJSON(r, "/book/requirements?bookingId=gone", `{
		"fields": {"venue_id": "venue-1", "guest_count": "10"}
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", decode(t, w).Error.Code)
}
