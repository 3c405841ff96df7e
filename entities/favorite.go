package entities

// FavPlanet links a user to a favorite planet. Neither side is checked for
// existence, so a link may point at rows that were never created.
type FavPlanet struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_fav_planet_user_planet" json:"user_id"`
	PlanetID uint `gorm:"not null;uniqueIndex:idx_fav_planet_user_planet" json:"planet_id"`
}

func (FavPlanet) TableName() string {
	return "fav_planet"
}

// FavPeople links a user to a favorite character.
type FavPeople struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	UserID       uint `gorm:"not null;uniqueIndex:idx_fav_people_user_character" json:"user_id"`
	CharactersID uint `gorm:"not null;uniqueIndex:idx_fav_people_user_character;column:characters_id" json:"characters_id"`
}

func (FavPeople) TableName() string {
	return "fav_people"
}
