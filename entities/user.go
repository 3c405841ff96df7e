package entities

// User is an account of the blog. The password is stored but never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"not null" json:"is_active"`

	FavPlanets []FavPlanet `gorm:"foreignKey:UserID" json:"-"`
	FavPeople  []FavPeople `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the projection returned by the user listing.
type UserSummary struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email}
}
