package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"monastery/internal/explorer"
	"monastery/internal/filter"
	"monastery/internal/mapview"
	"monastery/internal/models/request_models"
	"monastery/internal/models/response_models"
	"monastery/pkg/utils"
)

// DefaultNearbyRadiusKm applies when radius_km is omitted.
const DefaultNearbyRadiusKm = 20.0

type MonasteryController struct {
	explorer *explorer.Explorer
	logger   *zap.Logger
}

func NewMonasteryController(explorer *explorer.Explorer, logger *zap.Logger) *MonasteryController {
	return &MonasteryController{explorer: explorer, logger: logger}
}

// ListMonasteries godoc
// @Summary List monasteries
// @Description Filter the catalog by category, region and search text without moving the shared map
// @Tags Monasteries
// @Produce json
// @Param category query string false "Category or all"
// @Param region query string false "Region or all"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {object} utils.APIResponse{data=explorer.View}
// @Router /api/monasteries [get]
func (m *MonasteryController) ListMonasteries(c *gin.Context) {
	var criteria filter.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	view, err := m.explorer.Query(criteria)
	if err != nil {
		m.handleExplorerError(c, err)
		return
	}

	utils.RespondSuccess(c, view, view.Feedback)
}

// ApplyFilter godoc
// @Summary Apply a filter to the map
// @Description Redraw the shared map markers for the given criteria
// @Tags Monasteries
// @Accept json
// @Produce json
// @Param request body filter.Criteria true "Filter criteria"
// @Success 200 {object} utils.APIResponse{data=explorer.View}
// @Failure 400 {object} utils.APIResponse
// @Router /api/monasteries/filter [post]
func (m *MonasteryController) ApplyFilter(c *gin.Context) {
	var criteria filter.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := m.explorer.ApplyFilter(criteria)
	if err != nil {
		m.handleExplorerError(c, err)
		return
	}

	utils.RespondSuccess(c, view, view.Feedback)
}

// CurrentView godoc
// @Summary Current map state
// @Description The last applied filter with its markers and viewport
// @Tags Monasteries
// @Produce json
// @Success 200 {object} utils.APIResponse{data=explorer.View}
// @Router /api/monasteries/current [get]
func (m *MonasteryController) CurrentView(c *gin.Context) {
	view, err := m.explorer.Current()
	if err != nil {
		m.handleExplorerError(c, err)
		return
	}

	utils.RespondSuccess(c, view, view.Feedback)
}

// MapFeatures godoc
// @Summary Map markers as GeoJSON
// @Tags Monasteries
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/monasteries/map [get]
func (m *MonasteryController) MapFeatures(c *gin.Context) {
	fc := m.explorer.FeatureCollection()
	data, err := fc.MarshalJSON()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// FilterOptions godoc
// @Summary Selector values
// @Description Distinct categories and regions, in catalog order
// @Tags Monasteries
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.FilterOptions}
// @Router /api/monasteries/filters [get]
func (m *MonasteryController) FilterOptions(c *gin.Context) {
	cat := m.explorer.Catalog()
	utils.RespondSuccess(c, response_models.FilterOptions{
		Categories: cat.Categories(),
		Regions:    cat.Regions(),
		Wildcard:   filter.Any,
	}, "Filter options fetched successfully")
}

// GetMonastery godoc
// @Summary Monastery detail
// @Tags Monasteries
// @Produce json
// @Param name query string true "Exact monastery name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/monasteries/detail [get]
func (m *MonasteryController) GetMonastery(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'name' is required")
		return
	}

	record, ok := m.explorer.Catalog().Lookup(name)
	if !ok {
		utils.HandleServiceError(c, utils.ErrMonasteryNotFound)
		return
	}

	popup := mapview.NewPopup(record, m.explorer.DetailPage())
	utils.RespondSuccess(c, gin.H{
		"record":     record,
		"detail_url": popup.DetailURL,
		"map_url":    popup.MapURL,
	}, "Monastery fetched successfully")
}

// MarkerRecord godoc
// @Summary Resolve a map marker
// @Description Look up the monastery behind a marker currently on the shared map
// @Tags Monasteries
// @Produce json
// @Param id path int true "Marker id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/monasteries/markers/{id} [get]
func (m *MonasteryController) MarkerRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid marker id")
		return
	}

	record, ok := m.explorer.MarkerRecord(mapview.MarkerID(id))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, "Marker not on the map")
		return
	}

	utils.RespondSuccess(c, record, "")
}

// NearbyMonasteries godoc
// @Summary Monasteries near a point
// @Tags Monasteries
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius_km query number false "Radius in kilometres" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/monasteries/nearby [get]
func (m *MonasteryController) NearbyMonasteries(c *gin.Context) {
	var req request_models.NearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lon are required")
		return
	}
	if req.RadiusKm <= 0 {
		req.RadiusKm = DefaultNearbyRadiusKm
	}

	nearby := m.explorer.Catalog().Nearby(req.Latitude, req.Longitude, req.RadiusKm)
	utils.RespondSuccess(c, nearby, filter.FeedbackText(len(nearby)))
}

func (m *MonasteryController) handleExplorerError(c *gin.Context, err error) {
	if errors.Is(err, mapview.ErrNotInitialized) {
		m.logger.Warn("map requested before start", zap.String("trace_id", c.GetString("trace_id")))
		utils.RespondError(c, http.StatusServiceUnavailable, "Map is not ready")
		return
	}
	utils.HandleServiceError(c, err)
}
