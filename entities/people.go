package entities

// People is a character of the saga.
type People struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	NamePeople string `gorm:"not null" json:"name_people"`
	Age        int    `json:"age"`
	BornDate   string `json:"born_date"`
}

func (People) TableName() string {
	return "people"
}
