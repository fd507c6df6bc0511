package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"routes_api/internal/models"
	"routes_api/internal/store"
)

// RouteController serves the /routes CRUD surface on top of a RouteStore.
type RouteController struct {
	Store store.RouteStore
}

func NewRouteController(s store.RouteStore) *RouteController {
	return &RouteController{Store: s}
}

type createRouteInput struct {
	Flight        *string   `json:"flight"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate time.Time `json:"departure_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
	Capacity      int       `json:"capacity"`
	Description   string    `json:"description"`
}

// CreateRoute inserts a new route. Validation failures come back as 422
// with per-field detail; a reused flight number is a 409.
func (rc *RouteController) CreateRoute(c *gin.Context) {
	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	route := models.Route{
		Flight:        input.Flight,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ArrivalDate:   input.ArrivalDate,
		Capacity:      input.Capacity,
		Description:   input.Description,
	}

	if fields := route.Validate(); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	if err := rc.Store.Create(&route); err != nil {
		if errors.Is(err, store.ErrDuplicateFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "flight number already exists"})
			return
		}
		logrus.WithError(err).Error("CreateRoute: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, route)
}

// ListRoutes returns a page of routes, newest first. The flight query
// parameter narrows the page to an exact flight number match.
func (rc *RouteController) ListRoutes(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	routes, err := rc.Store.List(store.ListFilter{
		Offset: offset,
		Limit:  limit,
		Flight: c.Query("flight"),
	})
	if err != nil {
		logrus.WithError(err).Error("ListRoutes: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, routes)
}

// CountRoutes reports the total number of stored routes.
func (rc *RouteController) CountRoutes(c *gin.Context) {
	count, err := rc.Store.Count()
	if err != nil {
		logrus.WithError(err).Error("CountRoutes: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetRoute returns a single route by UUID.
func (rc *RouteController) GetRoute(c *gin.Context) {
	id, ok := parseRouteID(c)
	if !ok {
		return
	}

	route, err := rc.Store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		} else {
			logrus.WithError(err).Error("GetRoute: query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, route)
}

type updateRouteInput struct {
	Flight        *string    `json:"flight"`
	Origin        *string    `json:"origin"`
	Destination   *string    `json:"destination"`
	DepartureDate *time.Time `json:"departure_date"`
	ArrivalDate   *time.Time `json:"arrival_date"`
	Capacity      *int       `json:"capacity"`
	Description   *string    `json:"description"`
}

func (in *updateRouteInput) empty() bool {
	return in.Flight == nil && in.Origin == nil && in.Destination == nil &&
		in.DepartureDate == nil && in.ArrivalDate == nil &&
		in.Capacity == nil && in.Description == nil
}

// UpdateRoute applies a partial update: only fields present in the payload
// change, and the merged result must still satisfy the create constraints.
func (rc *RouteController) UpdateRoute(c *gin.Context) {
	id, ok := parseRouteID(c)
	if !ok {
		return
	}

	var input updateRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	route, err := rc.Store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		} else {
			logrus.WithError(err).Error("UpdateRoute: fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	applyRouteUpdates(route, &input)

	if fields := route.Validate(); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	if err := rc.Store.Update(route); err != nil {
		if errors.Is(err, store.ErrDuplicateFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "flight number already exists"})
			return
		}
		logrus.WithError(err).Error("UpdateRoute: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, route)
}

// DeleteRoute removes a route. Deleting an unknown id is an explicit 404,
// not a silent no-op.
func (rc *RouteController) DeleteRoute(c *gin.Context) {
	id, ok := parseRouteID(c)
	if !ok {
		return
	}

	if err := rc.Store.Delete(id); err != nil {
		if errors.Is(err, store.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		} else {
			logrus.WithError(err).Error("DeleteRoute: delete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ResetRoutes truncates the table. Development-only.
func (rc *RouteController) ResetRoutes(c *gin.Context) {
	if err := rc.Store.Reset(); err != nil {
		logrus.WithError(err).Error("ResetRoutes: truncate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "all routes deleted"})
}

// applyRouteUpdates copies the provided fields onto the stored route.
func applyRouteUpdates(route *models.Route, input *updateRouteInput) {
	if input.Flight != nil {
		route.Flight = input.Flight
	}
	if input.Origin != nil {
		route.Origin = *input.Origin
	}
	if input.Destination != nil {
		route.Destination = *input.Destination
	}
	if input.DepartureDate != nil {
		route.DepartureDate = *input.DepartureDate
	}
	if input.ArrivalDate != nil {
		route.ArrivalDate = *input.ArrivalDate
	}
	if input.Capacity != nil {
		route.Capacity = *input.Capacity
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
}

// parseRouteID reads the :id path parameter; a malformed UUID is rejected
// with 400 before any query runs.
func parseRouteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route ID"})
		return uuid.Nil, false
	}
	return id, true
}
