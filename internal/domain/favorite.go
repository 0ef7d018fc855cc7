package domain

// FavoriteKind определяет, на какую сущность ссылается избранное.
type FavoriteKind string

const (
	FavoriteKindCharacter FavoriteKind = "character"
	FavoriteKindPlanet    FavoriteKind = "planet"
	FavoriteKindVehicle   FavoriteKind = "vehicle"
)

// FavoriteKinds перечисляет виды избранного в порядке приоритета
// при добавлении (character > planet > vehicle).
var FavoriteKinds = []FavoriteKind{
	FavoriteKindCharacter,
	FavoriteKindPlanet,
	FavoriteKindVehicle,
}

// ParseFavoriteKind возвращает вид избранного по его строковому имени.
func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	for _, k := range FavoriteKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// FavoriteCharacter связывает пользователя с персонажем,
// соответствует таблице favorite_characters в бд.
type FavoriteCharacter struct {
	ID          uint `json:"id" db:"id" gorm:"primaryKey"`
	CharacterID uint `json:"character_id" db:"character_id" gorm:"not null;index"`
	UserID      uint `json:"user_id" db:"user_id" gorm:"not null;index"`

	User      User      `json:"-" db:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Character Character `json:"-" db:"-" gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
}

func (FavoriteCharacter) TableName() string {
	return "favorite_characters"
}

// FavoritePlanet связывает пользователя с планетой,
// соответствует таблице favorite_planets в бд.
type FavoritePlanet struct {
	ID       uint `json:"id" db:"id" gorm:"primaryKey"`
	PlanetID uint `json:"planet_id" db:"planet_id" gorm:"not null;index"`
	UserID   uint `json:"user_id" db:"user_id" gorm:"not null;index"`

	User   User   `json:"-" db:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Planet Planet `json:"-" db:"-" gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

// FavoriteVehicle связывает пользователя с транспортом,
// соответствует таблице favorite_vehicles в бд.
type FavoriteVehicle struct {
	ID        uint `json:"id" db:"id" gorm:"primaryKey"`
	VehicleID uint `json:"vehicle_id" db:"vehicle_id" gorm:"not null;index"`
	UserID    uint `json:"user_id" db:"user_id" gorm:"not null;index"`

	User    User    `json:"-" db:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Vehicle Vehicle `json:"-" db:"-" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

func (FavoriteVehicle) TableName() string {
	return "favorite_vehicles"
}

// FavoriteSummary — результат добавления в избранное, независимо от вида.
type FavoriteSummary struct {
	ID       uint
	Kind     FavoriteKind
	TargetID uint
	UserID   uint
}

// UserFavorites — все избранное пользователя, сгруппированное по видам.
type UserFavorites struct {
	Characters []FavoriteCharacter
	Planets    []FavoritePlanet
	Vehicles   []FavoriteVehicle
}

// Empty сообщает, что у пользователя нет избранного ни в одной категории.
func (f *UserFavorites) Empty() bool {
	return len(f.Characters) == 0 && len(f.Planets) == 0 && len(f.Vehicles) == 0
}
