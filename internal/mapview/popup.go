package mapview

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"monastery/internal/catalog"
)

// Popup is the payload shown when a marker is clicked.
type Popup struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Region    string `json:"region"`
	DetailURL string `json:"detail_url"`
	MapURL    string `json:"map_url"`
}

func NewPopup(r catalog.LocationRecord, detailPage string) Popup {
	return Popup{
		Name:      r.Name,
		Category:  r.Category,
		Region:    r.Region,
		DetailURL: DetailURL(detailPage, r.Name),
		MapURL:    SatelliteURL(r.Coordinates),
	}
}

// DetailURL links to the detail page for name. Spaces encode as %20.
func DetailURL(detailPage, name string) string {
	return detailPage + "?name=" + strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// SatelliteURL deep-links to Google Maps satellite imagery at c.
func SatelliteURL(c catalog.Coordinates) string {
	return fmt.Sprintf("https://www.google.com/maps/@?api=1&map_action=map&center=%s,%s&zoom=18&basemap=satellite",
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64))
}

var popupTpl = template.Must(template.New("popup").Parse(`<div class="monastery-popup">
  <h3>{{.Name}}</h3>
  <p><strong>Sect:</strong> {{.Category}}</p>
  <p><strong>Region:</strong> {{.Region}}</p>
  <a href="{{.DetailURL}}" class="popup-link">View Details</a>
  <a href="{{.MapURL}}" target="_blank" rel="noopener" class="popup-link">Satellite View</a>
</div>`))

// HTML renders the popup markup the web client binds to the marker.
func (p Popup) HTML() (string, error) {
	var buf bytes.Buffer
	if err := popupTpl.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
