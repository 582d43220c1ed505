package catalog

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// point records get a tiny box; the tree requires non-zero extents
const pointEpsilon = 0.0001

const kmPerDegreeLat = 111.32

// Nearby pairs a record with its great-circle distance from a query point.
type Nearby struct {
	Record     LocationRecord `json:"record"`
	DistanceKm float64        `json:"distance_km"`
}

type spatialIndex struct {
	rtree *rtreego.Rtree
}

type indexedRecord struct {
	pos    int
	record LocationRecord
}

// Bounds implements rtreego.Spatial. Axis order is lon, lat.
func (r *indexedRecord) Bounds() rtreego.Rect {
	return rtreego.Point{r.record.Coordinates.Longitude, r.record.Coordinates.Latitude}.ToRect(pointEpsilon)
}

func newSpatialIndex(records []LocationRecord) *spatialIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for i, r := range records {
		tree.Insert(&indexedRecord{pos: i, record: r})
	}
	return &spatialIndex{rtree: tree}
}

// Nearby returns records within radiusKm of (lat, lon), in catalog order.
// A non-positive radius yields no results.
func (c *Catalog) Nearby(lat, lon, radiusKm float64) []Nearby {
	if radiusKm <= 0 || c.index == nil {
		return []Nearby{}
	}

	origin := orb.Point{lon, lat}
	hits := make([]*indexedRecord, 0)
	distances := make(map[int]float64)
	for _, query := range searchBoxes(lat, lon, radiusKm) {
		for _, s := range c.index.rtree.SearchIntersect(query) {
			ir := s.(*indexedRecord)
			if _, seen := distances[ir.pos]; seen {
				continue
			}
			d := geo.DistanceHaversine(origin, orb.Point{ir.record.Coordinates.Longitude, ir.record.Coordinates.Latitude}) / 1000
			if d <= radiusKm {
				hits = append(hits, ir)
				distances[ir.pos] = d
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]Nearby, 0, len(hits))
	for _, h := range hits {
		out = append(out, Nearby{Record: h.record, DistanceKm: distances[h.pos]})
	}
	return out
}

// searchBoxes covers the circle with one or two lon/lat rectangles. Boxes
// crossing the antimeridian are split, and a circle reaching a pole spans
// every longitude.
func searchBoxes(lat, lon, radiusKm float64) []rtreego.Rect {
	dLat := radiusKm / kmPerDegreeLat
	minLat := math.Max(lat-dLat, -90)
	maxLat := math.Min(lat+dLat, 90)

	fullLon := lat+dLat >= 90 || lat-dLat <= -90
	dLon := 180.0
	if cosLat := math.Cos(lat * math.Pi / 180); !fullLon && cosLat > 1e-9 {
		dLon = radiusKm / (kmPerDegreeLat * cosLat)
	}
	if dLon >= 180 {
		return compactBoxes([][4]float64{{-180, minLat, 180, maxLat}})
	}

	minLon, maxLon := lon-dLon, lon+dLon
	switch {
	case minLon < -180:
		return compactBoxes([][4]float64{{minLon + 360, minLat, 180, maxLat}, {-180, minLat, maxLon, maxLat}})
	case maxLon > 180:
		return compactBoxes([][4]float64{{minLon, minLat, 180, maxLat}, {-180, minLat, maxLon - 360, maxLat}})
	default:
		return compactBoxes([][4]float64{{minLon, minLat, maxLon, maxLat}})
	}
}

// compactBoxes turns {minLon, minLat, maxLon, maxLat} tuples into rects,
// padding degenerate extents the tree would reject.
func compactBoxes(boxes [][4]float64) []rtreego.Rect {
	out := make([]rtreego.Rect, 0, len(boxes))
	for _, b := range boxes {
		w := math.Max(b[2]-b[0], pointEpsilon)
		h := math.Max(b[3]-b[1], pointEpsilon)
		r, err := rtreego.NewRect(rtreego.Point{b[0], b[1]}, []float64{w, h})
		if err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}
