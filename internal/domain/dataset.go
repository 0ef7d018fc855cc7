package domain

// Dataset — переносимый снимок всех таблиц, используется для
// начального наполнения (seed) и выгрузки (export).
type Dataset struct {
	Users              []User              `json:"users"`
	Characters         []Character         `json:"characters"`
	Planets            []Planet            `json:"planets"`
	Vehicles           []Vehicle           `json:"vehicles"`
	FavoriteCharacters []FavoriteCharacter `json:"favorite_characters"`
	FavoritePlanets    []FavoritePlanet    `json:"favorite_planets"`
	FavoriteVehicles   []FavoriteVehicle   `json:"favorite_vehicles"`
}
