package domain

// Vehicle представляет транспорт, соответствует таблице vehicles в бд.
type Vehicle struct {
	ID            uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name          string `json:"name" db:"name" gorm:"size:50;not null"`
	Model         string `json:"model" db:"model" gorm:"size:50;not null"`
	CargoCapacity int64  `json:"cargo_capacity" db:"cargo_capacity" gorm:"not null"`
	Consumables   string `json:"consumables" db:"consumables" gorm:"size:50;not null"`
	CostInCredits int64  `json:"cost_in_credits" db:"cost_in_credits" gorm:"not null"`
	VehicleClass  string `json:"vehicle_class" db:"vehicle_class" gorm:"size:50;not null"`
	Manufacturer  string `json:"manufacturer" db:"manufacturer" gorm:"size:50;not null"`
	Passengers    int    `json:"passengers" db:"passengers" gorm:"not null"`

	FavoriteVehicles []FavoriteVehicle `json:"-" db:"-" gorm:"foreignKey:VehicleID"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
