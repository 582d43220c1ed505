// Package catalog holds the fixed list of monasteries shown on the map.
package catalog

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// LocationRecord is one point of interest. Records are values and are never
// mutated once a Catalog is built.
type LocationRecord struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Category    string      `json:"category"`
	Region      string      `json:"region"`
}

// Catalog is an immutable ordered sequence of records.
type Catalog struct {
	records []LocationRecord
	index   *spatialIndex
}

// New copies records into a new Catalog. Order is preserved.
func New(records []LocationRecord) *Catalog {
	own := make([]LocationRecord, len(records))
	copy(own, records)
	return &Catalog{
		records: own,
		index:   newSpatialIndex(own),
	}
}

// Records returns a copy of the catalog in its original order.
func (c *Catalog) Records() []LocationRecord {
	out := make([]LocationRecord, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Len() int { return len(c.records) }

// At returns the i-th record. It panics if i is out of range.
func (c *Catalog) At(i int) LocationRecord { return c.records[i] }

// Lookup finds a record by exact name.
func (c *Catalog) Lookup(name string) (LocationRecord, bool) {
	for _, r := range c.records {
		if r.Name == name {
			return r, true
		}
	}
	return LocationRecord{}, false
}

// Categories lists distinct category tags in first-appearance order.
func (c *Catalog) Categories() []string {
	return c.distinct(func(r LocationRecord) string { return r.Category })
}

// Regions lists distinct region tags in first-appearance order.
func (c *Catalog) Regions() []string {
	return c.distinct(func(r LocationRecord) string { return r.Region })
}

func (c *Catalog) distinct(key func(LocationRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
