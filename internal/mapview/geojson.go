package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the current markers as GeoJSON points, one
// feature per marker, in creation order. The feature id is the marker id.
func (m *MapView) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, mk := range m.Markers() {
		f := geojson.NewFeature(orb.Point{mk.Position.Longitude, mk.Position.Latitude})
		f.ID = uint64(mk.ID)
		f.Properties["name"] = mk.Popup.Name
		f.Properties["category"] = mk.Popup.Category
		f.Properties["region"] = mk.Popup.Region
		f.Properties["detail_url"] = mk.Popup.DetailURL
		f.Properties["map_url"] = mk.Popup.MapURL
		if html, err := mk.Popup.HTML(); err == nil {
			f.Properties["popup_html"] = html
		}
		fc.Append(f)
	}
	return fc
}
