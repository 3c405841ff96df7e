package repositories

import (
	"context"

	"starwars-api/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	GetAll(ctx context.Context) ([]entities.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) (*entities.User, error)
}

type PeopleRepository interface {
	Create(ctx context.Context, people *entities.People) error
	GetByID(ctx context.Context, id uint) (*entities.People, error)
	GetAll(ctx context.Context) ([]entities.People, error)
}

type PlanetRepository interface {
	Create(ctx context.Context, planet *entities.Planet) error
	GetByID(ctx context.Context, id uint) (*entities.Planet, error)
	GetAll(ctx context.Context) ([]entities.Planet, error)
}

type FavoriteRepository interface {
	AddPlanet(ctx context.Context, fav *entities.FavPlanet) error
	AddPeople(ctx context.Context, fav *entities.FavPeople) error
	DeletePlanet(ctx context.Context, userID, planetID uint) error
	DeletePeople(ctx context.Context, userID, charactersID uint) error
	ListByUser(ctx context.Context, userID uint) ([]entities.FavPlanet, []entities.FavPeople, error)
}
