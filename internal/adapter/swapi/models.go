package swapi

// page является общей оболочкой списочных ответов SWAPI
type page[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// Числовые поля SWAPI приходят строками ("1,000", "1 standard", "unknown")
type PersonResponse struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	HairColor string `json:"hair_color"`
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	URL       string `json:"url"`
}

type PlanetResponse struct {
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Diameter       string `json:"diameter"`
	Gravity        string `json:"gravity"`
	OrbitalPeriod  string `json:"orbital_period"`
	Population     string `json:"population"`
	RotationPeriod string `json:"rotation_period"`
	SurfaceWater   string `json:"surface_water"`
	Terrain        string `json:"terrain"`
	URL            string `json:"url"`
}

type VehicleResponse struct {
	Name          string `json:"name"`
	Model         string `json:"model"`
	CargoCapacity string `json:"cargo_capacity"`
	Consumables   string `json:"consumables"`
	CostInCredits string `json:"cost_in_credits"`
	VehicleClass  string `json:"vehicle_class"`
	Manufacturer  string `json:"manufacturer"`
	Passengers    string `json:"passengers"`
	URL           string `json:"url"`
}
