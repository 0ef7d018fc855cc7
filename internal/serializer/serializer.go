// Package serializer отображает записи домена в JSON-представления ответов API.
// Функции чистые: не меняют запись и не возвращают ошибок.
package serializer

import "github.com/GoArmGo/StarWarsAPI/internal/domain"

type FavoriteCharacter struct {
	ID          uint `json:"id"`
	CharacterID uint `json:"character_id"`
	UserID      uint `json:"user_id"`
}

type FavoritePlanet struct {
	ID       uint `json:"id"`
	PlanetID uint `json:"planet_id"`
	UserID   uint `json:"user_id"`
}

type FavoriteVehicle struct {
	ID        uint `json:"id"`
	VehicleID uint `json:"vehicle_id"`
	UserID    uint `json:"user_id"`
}

// User не содержит пароля
type User struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	FavoriteCharacters []FavoriteCharacter `json:"favorite_character"`
	FavoritePlanets    []FavoritePlanet    `json:"favorite_planet"`
	FavoriteVehicles   []FavoriteVehicle   `json:"favorite_vehicle"`
}

type Character struct {
	ID                 uint                `json:"id"`
	Name               string              `json:"name"`
	Height             int                 `json:"height"`
	Mass               int                 `json:"mass"`
	HairColor          string              `json:"hair_color"`
	SkinColor          string              `json:"skin_color"`
	EyeColor           string              `json:"eye_color"`
	Gender             string              `json:"gender"`
	FavoriteCharacters []FavoriteCharacter `json:"favorite_character"`
}

type Planet struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Climate         string           `json:"climate"`
	Diameter        int              `json:"diameter"`
	Gravity         int              `json:"gravity"`
	OrbitalPeriod   int              `json:"orbital_period"`
	Population      int64            `json:"population"`
	RotationPeriod  int              `json:"rotation_period"`
	SurfaceWater    int              `json:"surface_water"`
	Terrain         string           `json:"terrain"`
	FavoritePlanets []FavoritePlanet `json:"favorite_planet"`
}

type Vehicle struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	Model            string            `json:"model"`
	CargoCapacity    int64             `json:"cargo_capacity"`
	Consumables      string            `json:"consumables"`
	CostInCredits    int64             `json:"cost_in_credits"`
	VehicleClass     string            `json:"vehicle_class"`
	Manufacturer     string            `json:"manufacturer"`
	Passengers       int               `json:"passengers"`
	FavoriteVehicles []FavoriteVehicle `json:"favorite_vehicle"`
}

// UserFavorites — ответ GET /favorites/{user_id}
type UserFavorites struct {
	FavoriteCharacters []FavoriteCharacter `json:"favorite_characters"`
	FavoritePlanets    []FavoritePlanet    `json:"favorite_planets"`
	FavoriteVehicles   []FavoriteVehicle   `json:"favorite_vehicles"`
}

// Ответы на добавление в избранное: ключ цели зависит от вида.
type characterCreated struct {
	ID        uint `json:"id"`
	Character uint `json:"character"`
	User      uint `json:"user"`
}

type planetCreated struct {
	ID     uint `json:"id"`
	Planet uint `json:"planet"`
	User   uint `json:"user"`
}

type vehicleCreated struct {
	ID      uint `json:"id"`
	Vehicle uint `json:"vehicle"`
	User    uint `json:"user"`
}

func NewFavoriteCharacter(f domain.FavoriteCharacter) FavoriteCharacter {
	return FavoriteCharacter{ID: f.ID, CharacterID: f.CharacterID, UserID: f.UserID}
}

func NewFavoritePlanet(f domain.FavoritePlanet) FavoritePlanet {
	return FavoritePlanet{ID: f.ID, PlanetID: f.PlanetID, UserID: f.UserID}
}

func NewFavoriteVehicle(f domain.FavoriteVehicle) FavoriteVehicle {
	return FavoriteVehicle{ID: f.ID, VehicleID: f.VehicleID, UserID: f.UserID}
}

// mapAll применяет fn к каждому элементу; результат никогда не nil
func mapAll[S, D any](src []S, fn func(S) D) []D {
	out := make([]D, 0, len(src))
	for _, s := range src {
		out = append(out, fn(s))
	}
	return out
}

func NewUser(u domain.User) User {
	return User{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		FavoriteCharacters: mapAll(u.FavoriteCharacters, NewFavoriteCharacter),
		FavoritePlanets:    mapAll(u.FavoritePlanets, NewFavoritePlanet),
		FavoriteVehicles:   mapAll(u.FavoriteVehicles, NewFavoriteVehicle),
	}
}

func NewCharacter(c domain.Character) Character {
	return Character{
		ID:                 c.ID,
		Name:               c.Name,
		Height:             c.Height,
		Mass:               c.Mass,
		HairColor:          c.HairColor,
		SkinColor:          c.SkinColor,
		EyeColor:           c.EyeColor,
		Gender:             c.Gender,
		FavoriteCharacters: mapAll(c.FavoriteCharacters, NewFavoriteCharacter),
	}
}

func NewPlanet(p domain.Planet) Planet {
	return Planet{
		ID:              p.ID,
		Name:            p.Name,
		Climate:         p.Climate,
		Diameter:        p.Diameter,
		Gravity:         p.Gravity,
		OrbitalPeriod:   p.OrbitalPeriod,
		Population:      p.Population,
		RotationPeriod:  p.RotationPeriod,
		SurfaceWater:    p.SurfaceWater,
		Terrain:         p.Terrain,
		FavoritePlanets: mapAll(p.FavoritePlanets, NewFavoritePlanet),
	}
}

func NewVehicle(v domain.Vehicle) Vehicle {
	return Vehicle{
		ID:               v.ID,
		Name:             v.Name,
		Model:            v.Model,
		CargoCapacity:    v.CargoCapacity,
		Consumables:      v.Consumables,
		CostInCredits:    v.CostInCredits,
		VehicleClass:     v.VehicleClass,
		Manufacturer:     v.Manufacturer,
		Passengers:       v.Passengers,
		FavoriteVehicles: mapAll(v.FavoriteVehicles, NewFavoriteVehicle),
	}
}

func Users(users []domain.User) []User                { return mapAll(users, NewUser) }
func Characters(chars []domain.Character) []Character { return mapAll(chars, NewCharacter) }
func Planets(planets []domain.Planet) []Planet        { return mapAll(planets, NewPlanet) }
func Vehicles(vehicles []domain.Vehicle) []Vehicle    { return mapAll(vehicles, NewVehicle) }

// NewUserFavorites группирует избранное пользователя; пустые категории остаются [].
func NewUserFavorites(f domain.UserFavorites) UserFavorites {
	return UserFavorites{
		FavoriteCharacters: mapAll(f.Characters, NewFavoriteCharacter),
		FavoritePlanets:    mapAll(f.Planets, NewFavoritePlanet),
		FavoriteVehicles:   mapAll(f.Vehicles, NewFavoriteVehicle),
	}
}

// FavoriteCreated возвращает тело ответа {id, <вид>: id цели, user: id пользователя}
func FavoriteCreated(s domain.FavoriteSummary) interface{} {
	switch s.Kind {
	case domain.FavoriteKindPlanet:
		return planetCreated{ID: s.ID, Planet: s.TargetID, User: s.UserID}
	case domain.FavoriteKindVehicle:
		return vehicleCreated{ID: s.ID, Vehicle: s.TargetID, User: s.UserID}
	default:
		return characterCreated{ID: s.ID, Character: s.TargetID, User: s.UserID}
	}
}
