package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/geo"
	"github.com/steveyiyo/guide-backend/pkg/types"
)

// MapsHandler serves the map helpers used by the trip planner page.
type MapsHandler struct {
	Geocoder geo.Geocoder
	Router   geo.Router
	ORSKey   string
}

func NewMapsHandler(g geo.Geocoder, r geo.Router, orsKey string) *MapsHandler {
	return &MapsHandler{Geocoder: g, Router: r, ORSKey: orsKey}
}

// MapKey hands the routing key to the browser map.
//
// @Summary  Routing key for the browser map
// @Tags     maps
// @Produce  json
// @Success  200  {object}  types.MapKeyResp
// @Failure  500  {object}  types.ErrorResp
// @Router   /api/map-key [get]
func (h *MapsHandler) MapKey(c *gin.Context) {
	if h.ORSKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ORS_API_KEY not configured"})
		return
	}
	c.JSON(http.StatusOK, types.MapKeyResp{ORSKey: h.ORSKey})
}

// Route computes a driving route. It degrades to a straight line, so it
// only fails on bad input.
//
// @Summary  Driving route between two points
// @Tags     maps
// @Accept   json
// @Produce  json
// @Param    request  body      types.RouteReq  true  "[lng, lat] start and end"
// @Success  200      {object}  geo.Route
// @Failure  400      {object}  types.ErrorResp
// @Router   /api/route [post]
func (h *MapsHandler) Route(c *gin.Context) {
	var req types.RouteReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Start) < 2 || len(req.End) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start and end coordinates required"})
		return
	}
	start := geo.Point{req.Start[0], req.Start[1]}
	end := geo.Point{req.End[0], req.End[1]}
	c.JSON(http.StatusOK, h.Router.Route(c.Request.Context(), start, end))
}

// Geocode resolves a place name within the configured locality.
//
// @Summary  Geocode a place
// @Tags     maps
// @Produce  json
// @Param    q    query     string  true  "Place name"
// @Success  200  {object}  geo.Location
// @Failure  400  {object}  types.ErrorResp
// @Failure  404  {object}  types.ErrorResp
// @Router   /api/geocode [get]
func (h *MapsHandler) Geocode(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'q' parameter"})
		return
	}
	loc := h.Geocoder.Geocode(c.Request.Context(), q)
	if loc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// Places geocodes every place named in a list such as "Howrah Bridge,
// Park Street and Kalighat". Unresolved names are left out.
//
// @Summary  Geocode several places
// @Tags     maps
// @Produce  json
// @Param    q    query     string  true  "Comma or 'and' separated place names"
// @Success  200  {object}  types.PlacesResp
// @Failure  400  {object}  types.ErrorResp
// @Failure  404  {object}  types.ErrorResp
// @Router   /api/places [get]
func (h *MapsHandler) Places(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'q' parameter"})
		return
	}
	places := geo.Places(c.Request.Context(), h.Geocoder, q)
	if len(places) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, types.PlacesResp{Places: places})
}
