package catalog

const (
	CategoryNyingma = "Nyingma"
	CategoryKagyu   = "Kagyu"

	RegionEast  = "East Sikkim"
	RegionWest  = "West Sikkim"
	RegionNorth = "North Sikkim"
)

var monasteries = []LocationRecord{
	{Name: "Rumtek Monastery", Coordinates: Coordinates{27.2887, 88.5614}, Category: CategoryKagyu, Region: RegionEast},
	{Name: "Pemayangtse Monastery", Coordinates: Coordinates{27.3048, 88.2519}, Category: CategoryNyingma, Region: RegionWest},
	{Name: "Tashiding Monastery", Coordinates: Coordinates{27.3090, 88.2979}, Category: CategoryNyingma, Region: RegionWest},
	{Name: "Enchey Monastery", Coordinates: Coordinates{27.3358, 88.6194}, Category: CategoryNyingma, Region: RegionEast},
	{Name: "Sanga Choeling Monastery", Coordinates: Coordinates{27.3036, 88.2383}, Category: CategoryNyingma, Region: RegionWest},
	{Name: "Dubdi Monastery", Coordinates: Coordinates{27.3722, 88.2289}, Category: CategoryNyingma, Region: RegionWest},
	{Name: "Do Drul Chorten", Coordinates: Coordinates{27.3164, 88.6079}, Category: CategoryNyingma, Region: RegionEast},
	{Name: "Lingdum Monastery (Ranka)", Coordinates: Coordinates{27.3272, 88.5789}, Category: CategoryKagyu, Region: RegionEast},
	{Name: "Phodong Monastery", Coordinates: Coordinates{27.4137, 88.5837}, Category: CategoryKagyu, Region: RegionNorth},
}

// Default returns the catalog of Sikkim monasteries shown on the site.
func Default() *Catalog {
	return New(monasteries)
}
