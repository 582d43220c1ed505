package request_models

type NearbyRequest struct {
	Latitude  float64 `form:"lat" binding:"required,latitude"`
	Longitude float64 `form:"lon" binding:"required,longitude"`
	RadiusKm  float64 `form:"radius_km"`
}

type SlideRequest struct {
	Index int `json:"index" binding:"min=0"`
}
