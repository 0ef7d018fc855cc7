package domain

// Planet представляет планету, соответствует таблице planets в бд.
type Planet struct {
	ID             uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name           string `json:"name" db:"name" gorm:"size:50;not null"`
	Climate        string `json:"climate" db:"climate" gorm:"size:50;not null"`
	Diameter       int    `json:"diameter" db:"diameter" gorm:"not null"`
	Gravity        int    `json:"gravity" db:"gravity" gorm:"not null"`
	OrbitalPeriod  int    `json:"orbital_period" db:"orbital_period" gorm:"not null"`
	Population     int64  `json:"population" db:"population" gorm:"not null"`
	RotationPeriod int    `json:"rotation_period" db:"rotation_period" gorm:"not null"`
	SurfaceWater   int    `json:"surface_water" db:"surface_water" gorm:"not null"`
	Terrain        string `json:"terrain" db:"terrain" gorm:"size:50;not null"`

	FavoritePlanets []FavoritePlanet `json:"-" db:"-" gorm:"foreignKey:PlanetID"`
}

func (Planet) TableName() string {
	return "planets"
}
