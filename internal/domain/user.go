// internal/domain/user.go
package domain

// User представляет пользователя системы,
// соответствует таблице users в бд.
// Пароль хранится как есть (без хеширования), в JSON не отдается.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name     string `json:"name" db:"name" gorm:"size:50;not null"`
	Email    string `json:"email" db:"email" gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"password" db:"password" gorm:"size:80;not null"`

	FavoriteCharacters []FavoriteCharacter `json:"-" db:"-" gorm:"foreignKey:UserID"`
	FavoritePlanets    []FavoritePlanet    `json:"-" db:"-" gorm:"foreignKey:UserID"`
	FavoriteVehicles   []FavoriteVehicle   `json:"-" db:"-" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
