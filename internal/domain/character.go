package domain

// Character представляет персонажа, соответствует таблице characters в бд.
type Character struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name      string `json:"name" db:"name" gorm:"size:50;not null"`
	Height    int    `json:"height" db:"height" gorm:"not null"`
	Mass      int    `json:"mass" db:"mass" gorm:"not null"`
	HairColor string `json:"hair_color" db:"hair_color" gorm:"size:50;not null"`
	SkinColor string `json:"skin_color" db:"skin_color" gorm:"size:50;not null"`
	EyeColor  string `json:"eye_color" db:"eye_color" gorm:"size:50;not null"`
	Gender    string `json:"gender" db:"gender" gorm:"size:50;not null"`

	FavoriteCharacters []FavoriteCharacter `json:"-" db:"-" gorm:"foreignKey:CharacterID"`
}

func (Character) TableName() string {
	return "characters"
}
