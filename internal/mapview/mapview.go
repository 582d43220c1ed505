// Package mapview owns the explorer map: a single viewport with a tile layer
// and a replaceable layer of monastery markers.
package mapview

import (
	"errors"

	"go.uber.org/zap"
	"monastery/internal/catalog"
)

var ErrNotInitialized = errors.New("map view not initialized")

const (
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"
	DefaultDetailPage  = "monastery.html"
	DefaultZoom        = 9
)

// DefaultCenter frames the whole of Sikkim.
var DefaultCenter = catalog.Coordinates{Latitude: 27.533, Longitude: 88.512}

type Options struct {
	Center      catalog.Coordinates
	Zoom        int
	TileURL     string
	Attribution string
	DetailPage  string
}

func (o Options) withDefaults() Options {
	if o.Center == (catalog.Coordinates{}) {
		o.Center = DefaultCenter
	}
	if o.Zoom <= 0 {
		o.Zoom = DefaultZoom
	}
	if o.TileURL == "" {
		o.TileURL = DefaultTileURL
	}
	if o.Attribution == "" {
		o.Attribution = DefaultAttribution
	}
	if o.DetailPage == "" {
		o.DetailPage = DefaultDetailPage
	}
	return o
}

type MarkerID uint64

type Marker struct {
	ID       MarkerID            `json:"id"`
	Position catalog.Coordinates `json:"position"`
	Popup    Popup               `json:"popup"`
}

type TileLayer struct {
	URLTemplate string `json:"url_template"`
	Attribution string `json:"attribution"`
}

// Viewport is one map instance. A torn-down viewport is never reused.
type Viewport struct {
	Generation int                 `json:"generation"`
	Center     catalog.Coordinates `json:"center"`
	Zoom       int                 `json:"zoom"`
	Tiles      *TileLayer          `json:"tiles,omitempty"`

	markers  []Marker
	attached bool
	removed  bool
}

func (v *Viewport) Removed() bool { return v.removed }

// MapView is not safe for concurrent use; the owning controller serialises calls.
type MapView struct {
	opts    Options
	catalog *catalog.Catalog
	logger  *zap.Logger

	viewport    *Viewport
	generations int
	nextID      MarkerID
	// side table: marker identity -> source record
	records map[MarkerID]catalog.LocationRecord
}

func New(c *catalog.Catalog, opts Options, logger *zap.Logger) *MapView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MapView{
		opts:    opts.withDefaults(),
		catalog: c,
		logger:  logger,
		records: make(map[MarkerID]catalog.LocationRecord),
	}
}

// Initialize builds a fresh viewport, replacing any previous one, attaches the
// tile and marker layers and renders the full catalog.
func (m *MapView) Initialize() {
	if m.viewport != nil {
		m.logger.Debug("replacing existing viewport", zap.Int("generation", m.viewport.Generation))
		m.Teardown()
	}

	m.generations++
	m.viewport = &Viewport{
		Generation: m.generations,
		Center:     m.opts.Center,
		Zoom:       m.opts.Zoom,
		Tiles:      &TileLayer{URLTemplate: m.opts.TileURL, Attribution: m.opts.Attribution},
		attached:   true,
	}

	// cannot fail: the marker layer was attached above
	_ = m.Render(m.catalog.Records())
	m.logger.Info("map initialized",
		zap.Int("generation", m.viewport.Generation),
		zap.Int("markers", len(m.viewport.markers)))
}

// Render clears every marker and creates one marker per record, in order.
func (m *MapView) Render(records []catalog.LocationRecord) error {
	if m.viewport == nil || !m.viewport.attached {
		return ErrNotInitialized
	}

	m.clearMarkers()

	markers := make([]Marker, 0, len(records))
	for _, r := range records {
		m.nextID++
		id := m.nextID
		markers = append(markers, Marker{
			ID:       id,
			Position: r.Coordinates,
			Popup:    NewPopup(r, m.opts.DetailPage),
		})
		m.records[id] = r
	}
	m.viewport.markers = markers

	m.logger.Debug("markers rendered", zap.Int("count", len(markers)))
	return nil
}

func (m *MapView) clearMarkers() {
	for _, mk := range m.viewport.markers {
		delete(m.records, mk.ID)
	}
	m.viewport.markers = nil
}

// Teardown removes the viewport and every marker. Safe to call repeatedly.
func (m *MapView) Teardown() {
	if m.viewport == nil {
		return
	}
	m.clearMarkers()
	m.viewport.attached = false
	m.viewport.removed = true
	m.viewport.Tiles = nil
	m.viewport = nil
}

func (m *MapView) Initialized() bool { return m.viewport != nil }

// Viewport returns the live viewport, or nil before Initialize.
func (m *MapView) Viewport() *Viewport { return m.viewport }

// Markers returns a copy of the current markers in creation order.
func (m *MapView) Markers() []Marker {
	if m.viewport == nil {
		return []Marker{}
	}
	out := make([]Marker, len(m.viewport.markers))
	copy(out, m.viewport.markers)
	return out
}

// RecordFor resolves a marker currently on the map to its source record.
func (m *MapView) RecordFor(id MarkerID) (catalog.LocationRecord, bool) {
	r, ok := m.records[id]
	return r, ok
}

// ViewportState is a detached snapshot of the viewport for callers outside
// the owning controller.
type ViewportState struct {
	Generation  int                 `json:"generation"`
	Center      catalog.Coordinates `json:"center"`
	Zoom        int                 `json:"zoom"`
	Tiles       TileLayer           `json:"tiles"`
	MarkerCount int                 `json:"marker_count"`
}

func (m *MapView) State() (ViewportState, bool) {
	if m.viewport == nil {
		return ViewportState{}, false
	}
	s := ViewportState{
		Generation:  m.viewport.Generation,
		Center:      m.viewport.Center,
		Zoom:        m.viewport.Zoom,
		MarkerCount: len(m.viewport.markers),
	}
	if m.viewport.Tiles != nil {
		s.Tiles = *m.viewport.Tiles
	}
	return s, true
}

// Options returns the effective options, defaults applied.
func (m *MapView) Options() Options { return m.opts }
