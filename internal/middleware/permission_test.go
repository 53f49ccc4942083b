package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"goeventcity/internal/domain"
)

// grantTable is a fixed (role, permission) set, mimicking the pure lookup the
// guard consults in production.
type grantTable struct {
	grants map[string]bool
	err    error
	calls  int
}

func (g *grantTable) Exists(_ context.Context, role domain.Role, permission string) (bool, error) {
	g.calls++
	if g.err != nil {
		return false, g.err
	}
	return g.grants[string(role)+"/"+permission], nil
}

func permTestRouter(guard *PermissionGuard, role, permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/venues",
		func(c *gin.Context) { c.Set("role", role) },
		guard.Require(permission),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return r
}

func doPost(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestPermissionGuard_GrantDecides(t *testing.T) {
	table := &grantTable{grants: map[string]bool{
		"venue_manager/manage_venue": true,
	}}
	guard := NewPermissionGuard(table)

	w := doPost(permTestRouter(guard, "venue_manager", "manage_venue"), "/venues")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doPost(permTestRouter(guard, "fan", "manage_venue"), "/venues")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/unauthorized")
}

// Consecutive checks against an unchanged grant table agree.
func TestPermissionGuard_Deterministic(t *testing.T) {
	table := &grantTable{grants: map[string]bool{
		"performer/manage_performer_profile": true,
	}}
	guard := NewPermissionGuard(table)
	r := permTestRouter(guard, "performer", "manage_performer_profile")

	first := doPost(r, "/venues")
	second := doPost(r, "/venues")
	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, 2, table.calls)

	denied := permTestRouter(guard, "fan", "manage_performer_profile")
	assert.Equal(t, doPost(denied, "/venues").Code, doPost(denied, "/venues").Code)
}

func TestPermissionGuard_LookupFailure(t *testing.T) {
	table := &grantTable{err: errors.New("db down")}
	guard := NewPermissionGuard(table)

	w := doPost(permTestRouter(guard, "admin", "manage_venue"), "/venues")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPermissionGuard_MissingRole(t *testing.T) {
	guard := NewPermissionGuard(&grantTable{})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/venues", guard.Require("manage_venue"), func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := doPost(r, "/venues")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
