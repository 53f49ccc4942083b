package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"goeventcity/internal/cache"
	"goeventcity/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	cache   *cache.Cache
}

func NewHandler(service *Service, listingCache *cache.Cache) *Handler {
	return &Handler{service: service, cache: listingCache}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/events", h.ListEvents)
	v1.GET("/events/:id", h.GetEvent)
	v1.GET("/venues", h.ListVenues)
	v1.GET("/performers", h.ListPerformers)
}

// RegisterManageRoutes attaches the event writes. The caller wraps the group
// with JWTAuth plus a role or permission guard.
func (h *Handler) RegisterManageRoutes(manage *gin.RouterGroup) {
	manage.POST("/events", h.CreateEvent)
	manage.PUT("/events/:id", h.UpdateEvent)
}

func (h *Handler) ListEvents(c *gin.Context) {
	limit, offset := pagination(c)

	key := fmt.Sprintf("catalog:events:l=%d:o=%d", limit, offset)
	if raw, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json", raw)
		return
	}

	events, err := h.service.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "EVENT_LIST_FAILED", "Failed to list events")
		return
	}

	h.respondCached(c, key, gin.H{"events": events}, "events")
}

func (h *Handler) GetEvent(c *gin.Context) {
	id := c.Param("id")

	key := "catalog:event:" + id
	if raw, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json", raw)
		return
	}

	e, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EVENT_FETCH_FAILED", "Failed to load event")
		return
	}

	h.respondCached(c, key, gin.H{"event": e}, "events", "event:"+id)
}

func (h *Handler) ListVenues(c *gin.Context) {
	limit, offset := pagination(c)
	venues, err := h.service.ListVenues(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "VENUE_LIST_FAILED", "Failed to list venues")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

func (h *Handler) ListPerformers(c *gin.Context) {
	limit, offset := pagination(c)
	performers, err := h.service.ListPerformers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PERFORMER_LIST_FAILED", "Failed to list performers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"performers": performers})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "EVENT_CREATE_FAILED", "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EVENT_UPDATE_FAILED", "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, e)
}

// respondCached renders the success envelope and stores the exact bytes in
// the listing cache so cache hits are byte-identical to misses.
func (h *Handler) respondCached(c *gin.Context, key string, data any, tags ...string) {
	payload, err := json.Marshal(gin.H{"success": true, "data": data})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ENCODING_FAILED", "Failed to encode response")
		return
	}
	h.cache.Set(c.Request.Context(), key, payload, tags...)
	c.Data(http.StatusOK, "application/json", payload)
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
