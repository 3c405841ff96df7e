package usecases

// Request payloads. Pointer fields distinguish a missing key from a zero
// value, so `"is_active": false` and `"age": 0` are accepted.

type CreateUserInput struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
	IsActive *bool   `json:"is_active" binding:"required"`
}

type EditUserInput struct {
	Email *string `json:"email" binding:"required"`
}

type CreatePeopleInput struct {
	NamePeople *string `json:"name_people" binding:"required"`
	Age        *int    `json:"age" binding:"required"`
	BornDate   *string `json:"born_date" binding:"required"`
}

type CreatePlanetInput struct {
	NamePlanet *string `json:"name_planet" binding:"required"`
	Population *int64  `json:"population" binding:"required"`
	Climate    *string `json:"climate" binding:"required"`
}

type AddFavoriteInput struct {
	UserID *uint `json:"user_id" binding:"required"`
}
