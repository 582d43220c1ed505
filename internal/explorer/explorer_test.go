package explorer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"monastery/internal/catalog"
	"monastery/internal/filter"
	"monastery/internal/mapview"
)

func newExplorer(t *testing.T) *Explorer {
	t.Helper()
	e := New(catalog.Default(), mapview.Options{}, zap.NewNop())
	e.Start()
	t.Cleanup(e.Stop)
	return e
}

func TestStart_ShowsEverything(t *testing.T) {
	e := newExplorer(t)

	v, err := e.Current()
	require.NoError(t, err)
	assert.False(t, v.Filtered)
	assert.Equal(t, 9, v.Count)
	assert.Len(t, v.Markers, 9)
	assert.Equal(t, "Found 9 monasteries matching your criteria.", v.Feedback)
	assert.Equal(t, filter.Any, v.Criteria.Category)
}

func TestApplyFilter_Pipeline(t *testing.T) {
	e := newExplorer(t)

	v, err := e.ApplyFilter(filter.Criteria{Category: "Nyingma", Region: filter.Any})
	require.NoError(t, err)
	assert.True(t, v.Filtered)
	assert.Equal(t, 6, v.Count)
	assert.Len(t, v.Markers, 6)
	assert.Equal(t, "Found 6 monasteries matching your criteria.", v.Feedback)

	v, err = e.ApplyFilter(filter.Criteria{SearchText: "zzz"})
	require.NoError(t, err)
	assert.True(t, v.Filtered)
	assert.Equal(t, 0, v.Count)
	assert.Empty(t, v.Markers)
	assert.Equal(t, "Found 0 monasteries matching your criteria.", v.Feedback)

	cur, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, v, cur)
	assert.Empty(t, e.FeatureCollection().Features)
}

func TestQuery_DoesNotTouchSharedMap(t *testing.T) {
	e := newExplorer(t)

	_, err := e.ApplyFilter(filter.Criteria{SearchText: "rumtek"})
	require.NoError(t, err)

	q, err := e.Query(filter.Criteria{Region: "West Sikkim"})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Count)
	assert.Len(t, q.Markers, 4)

	cur, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, cur.Count)
	assert.Len(t, e.FeatureCollection().Features, 1)
}

func TestStopped(t *testing.T) {
	e := New(catalog.Default(), mapview.Options{}, nil)

	_, err := e.Current()
	assert.ErrorIs(t, err, mapview.ErrNotInitialized)
	_, err = e.ApplyFilter(filter.Criteria{})
	assert.ErrorIs(t, err, mapview.ErrNotInitialized)
	_, err = e.Query(filter.Criteria{})
	assert.ErrorIs(t, err, mapview.ErrNotInitialized)

	e.Start()
	e.Stop()
	_, err = e.Current()
	assert.ErrorIs(t, err, mapview.ErrNotInitialized)
}

func TestApplyFilter_Concurrent(t *testing.T) {
	e := newExplorer(t)
	criteria := []filter.Criteria{
		{Category: "Nyingma"},
		{Category: "Kagyu"},
		{Region: "East Sikkim"},
		{SearchText: "zzz"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(c filter.Criteria) {
			defer wg.Done()
			v, err := e.ApplyFilter(c)
			assert.NoError(t, err)
			assert.Equal(t, v.Count, len(v.Markers))
		}(criteria[i%len(criteria)])
	}
	wg.Wait()

	v, err := e.Current()
	require.NoError(t, err)
	assert.Equal(t, v.Count, len(v.Markers), "exactly one marker per matching record")
}
