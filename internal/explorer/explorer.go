// Package explorer is the application context behind the map page. It owns
// the catalog, the map view and the last filter result, and runs the
// filter -> render -> feedback pipeline.
package explorer

import (
	"sync"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
	"monastery/internal/catalog"
	"monastery/internal/filter"
	"monastery/internal/mapview"
)

// View is a detached snapshot of the explorer after a filter action.
type View struct {
	Criteria filter.Criteria          `json:"criteria"`
	Feedback string                   `json:"feedback"`
	Count    int                      `json:"count"`
	Records  []catalog.LocationRecord `json:"records"`
	Markers  []mapview.Marker         `json:"markers"`
	Viewport mapview.ViewportState    `json:"viewport"`
	// Filtered is false until the first ApplyFilter call.
	Filtered bool `json:"filtered"`
}

type Explorer struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	mapView *mapview.MapView
	result  filter.Result
	logger  *zap.Logger
}

func New(c *catalog.Catalog, opts mapview.Options, logger *zap.Logger) *Explorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explorer{
		catalog: c,
		mapView: mapview.New(c, opts, logger.Named("mapview")),
		logger:  logger,
	}
}

func (e *Explorer) Catalog() *catalog.Catalog { return e.catalog }

// DetailPage is the page marker popups link to.
func (e *Explorer) DetailPage() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mapView.Options().DetailPage
}

// Start initializes the map with the unfiltered catalog and clears any
// previous filter result.
func (e *Explorer) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mapView.Initialize()
	e.result = filter.Result{}
}

// Stop tears the map down. Start may be called again afterwards.
func (e *Explorer) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mapView.Teardown()
	e.result = filter.Result{}
}

// ApplyFilter recomputes the matching records, redraws the markers and
// returns the resulting view. Calls are serialised so two redraws never
// interleave on the marker set.
func (e *Explorer) ApplyFilter(criteria filter.Criteria) (View, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := filter.Apply(e.catalog, criteria)
	if err := e.mapView.Render(result.Records); err != nil {
		return View{}, err
	}
	e.result = result

	e.logger.Debug("filter applied",
		zap.String("category", result.Criteria.Category),
		zap.String("region", result.Criteria.Region),
		zap.String("search", result.Criteria.SearchText),
		zap.Int("count", result.Count()))

	return e.snapshotLocked(), nil
}

// Current returns the view without changing anything.
func (e *Explorer) Current() (View, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mapView.Initialized() {
		return View{}, mapview.ErrNotInitialized
	}
	return e.snapshotLocked(), nil
}

// Query runs a filter and returns the view without touching the shared
// map. Used by read-only API calls that should not move other clients' markers.
func (e *Explorer) Query(criteria filter.Criteria) (View, error) {
	e.mu.Lock()
	state, ok := e.mapView.State()
	opts := e.mapView.Options()
	e.mu.Unlock()
	if !ok {
		return View{}, mapview.ErrNotInitialized
	}

	opts.Center = state.Center
	opts.Zoom = state.Zoom
	scratch := mapview.New(e.catalog, opts, zap.NewNop())
	scratch.Initialize()

	result := filter.Apply(e.catalog, criteria)
	if err := scratch.Render(result.Records); err != nil {
		return View{}, err
	}
	return buildView(result, scratch, true), nil
}

// MarkerRecord resolves a marker on the shared map to its monastery.
func (e *Explorer) MarkerRecord(id mapview.MarkerID) (catalog.LocationRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mapView.RecordFor(id)
}

// FeatureCollection exports the markers currently on the shared map.
func (e *Explorer) FeatureCollection() *geojson.FeatureCollection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mapView.FeatureCollection()
}

func (e *Explorer) snapshotLocked() View {
	result := e.result
	if !result.Applied {
		result = filter.Result{Records: e.catalog.Records(), Criteria: filter.Criteria{}.Normalize()}
	}
	return buildView(result, e.mapView, e.result.Applied)
}

func buildView(result filter.Result, mv *mapview.MapView, filtered bool) View {
	state, _ := mv.State()
	records := make([]catalog.LocationRecord, len(result.Records))
	copy(records, result.Records)
	return View{
		Criteria: result.Criteria,
		Feedback: result.Feedback(),
		Count:    result.Count(),
		Records:  records,
		Markers:  mv.Markers(),
		Viewport: state,
		Filtered: filtered,
	}
}
