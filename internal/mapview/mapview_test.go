package mapview

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"monastery/internal/catalog"
	"monastery/internal/filter"
)

func newView(t *testing.T) *MapView {
	t.Helper()
	return New(catalog.Default(), Options{}, zap.NewNop())
}

func TestRender_BeforeInitialize(t *testing.T) {
	m := newView(t)
	assert.ErrorIs(t, m.Render(catalog.Default().Records()), ErrNotInitialized)
	assert.Empty(t, m.Markers())
	_, ok := m.State()
	assert.False(t, ok)
}

func TestInitialize_RendersFullCatalog(t *testing.T) {
	m := newView(t)
	m.Initialize()

	state, ok := m.State()
	require.True(t, ok)
	assert.Equal(t, DefaultCenter, state.Center)
	assert.Equal(t, DefaultZoom, state.Zoom)
	assert.Equal(t, DefaultTileURL, state.Tiles.URLTemplate)
	assert.Equal(t, 9, state.MarkerCount)

	markers := m.Markers()
	records := catalog.Default().Records()
	require.Len(t, markers, len(records))
	for i, mk := range markers {
		assert.Equal(t, records[i].Coordinates, mk.Position)
		r, ok := m.RecordFor(mk.ID)
		require.True(t, ok)
		assert.Equal(t, records[i], r)
	}
}

func TestInitialize_ReplacesViewport(t *testing.T) {
	m := newView(t)
	m.Initialize()
	first := m.Viewport()
	oldMarkers := m.Markers()

	m.Initialize()
	second := m.Viewport()

	assert.NotSame(t, first, second)
	assert.True(t, first.Removed())
	assert.False(t, second.Removed())
	assert.Equal(t, 2, second.Generation)
	assert.Len(t, m.Markers(), 9)
	for _, mk := range oldMarkers {
		_, ok := m.RecordFor(mk.ID)
		assert.False(t, ok, "markers from the old viewport are gone")
	}
}

func TestRender_ReplacesMarkers(t *testing.T) {
	c := catalog.Default()
	m := New(c, Options{}, nil)
	m.Initialize()
	before := m.Markers()

	nyingma := filter.Apply(c, filter.Criteria{Category: "Nyingma"}).Records
	require.NoError(t, m.Render(nyingma))

	after := m.Markers()
	require.Len(t, after, len(nyingma))
	for i, mk := range after {
		assert.Equal(t, nyingma[i].Name, mk.Popup.Name)
	}
	for _, mk := range before {
		_, ok := m.RecordFor(mk.ID)
		assert.False(t, ok)
	}
	assert.Len(t, m.records, len(nyingma), "side table holds exactly the live markers")

	require.NoError(t, m.Render(nil))
	assert.Empty(t, m.Markers())
	assert.Empty(t, m.records)
}

func TestRender_MarkerIDsAreUnique(t *testing.T) {
	m := newView(t)
	m.Initialize()
	seen := map[MarkerID]bool{}
	for i := 0; i < 3; i++ {
		require.NoError(t, m.Render(catalog.Default().Records()))
		for _, mk := range m.Markers() {
			assert.False(t, seen[mk.ID])
			seen[mk.ID] = true
		}
	}
}

func TestTeardown(t *testing.T) {
	m := newView(t)
	m.Teardown()

	m.Initialize()
	vp := m.Viewport()
	m.Teardown()
	m.Teardown()

	assert.True(t, vp.Removed())
	assert.False(t, m.Initialized())
	assert.Empty(t, m.Markers())
	assert.ErrorIs(t, m.Render(nil), ErrNotInitialized)
}

func TestPopup(t *testing.T) {
	r := catalog.LocationRecord{
		Name:        "Lingdum Monastery (Ranka)",
		Coordinates: catalog.Coordinates{Latitude: 27.3272, Longitude: 88.5789},
		Category:    "Kagyu",
		Region:      "East Sikkim",
	}
	p := NewPopup(r, "monastery.html")

	assert.Equal(t, "monastery.html?name=Lingdum%20Monastery%20%28Ranka%29", p.DetailURL)
	assert.Equal(t,
		"https://www.google.com/maps/@?api=1&map_action=map&center=27.3272,88.5789&zoom=18&basemap=satellite",
		p.MapURL)

	html, err := p.HTML()
	require.NoError(t, err)
	assert.Contains(t, html, "<h3>Lingdum Monastery (Ranka)</h3>")
	assert.Contains(t, html, "East Sikkim")
	assert.Contains(t, html, `href="monastery.html?name=Lingdum%20Monastery%20%28Ranka%29"`)
}

func TestDetailURL_EscapesQueryCharacters(t *testing.T) {
	assert.Equal(t, "d.html?name=A%26B%3DC", DetailURL("d.html", "A&B=C"))
}

func TestFeatureCollection(t *testing.T) {
	m := newView(t)
	m.Initialize()
	require.NoError(t, m.Render(filter.Apply(catalog.Default(), filter.Criteria{SearchText: "rumtek"}).Records))

	fc := m.FeatureCollection()
	require.Len(t, fc.Features, 1)
	f := fc.Features[0]
	assert.Equal(t, orb.Point{88.5614, 27.2887}, f.Geometry)
	assert.Equal(t, "Rumtek Monastery", f.Properties["name"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}
