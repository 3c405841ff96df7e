package entities

type Planet struct {
	PlanetID   uint   `gorm:"primaryKey;column:planet_id" json:"planet_id"`
	NamePlanet string `gorm:"not null" json:"name_planet"`
	Population int64  `json:"population"`
	Climate    string `json:"climate"`
}

func (Planet) TableName() string {
	return "planets"
}
