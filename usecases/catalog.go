package usecases

import (
	"context"
	"errors"

	"starwars-api/apperrors"
	"starwars-api/entities"
	"starwars-api/repositories"
)

// CatalogUseCase serves the read-mostly people and planet tables.
type CatalogUseCase struct {
	PeopleRepo repositories.PeopleRepository
	PlanetRepo repositories.PlanetRepository
}

func NewCatalogUseCase(peopleRepo repositories.PeopleRepository, planetRepo repositories.PlanetRepository) *CatalogUseCase {
	return &CatalogUseCase{
		PeopleRepo: peopleRepo,
		PlanetRepo: planetRepo,
	}
}

// ============= People =============

func (uc *CatalogUseCase) ListPeople(ctx context.Context) ([]entities.People, error) {
	people, err := uc.PeopleRepo.GetAll(ctx)
	if people == nil {
		people = []entities.People{}
	}
	return people, err
}

func (uc *CatalogUseCase) GetPeople(ctx context.Context, id uint) (*entities.People, error) {
	people, err := uc.PeopleRepo.GetByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("people %d not found", id).Wrap(err)
	}
	return people, err
}

func (uc *CatalogUseCase) CreatePeople(ctx context.Context, in CreatePeopleInput) (*entities.People, error) {
	if in.NamePeople == nil || in.Age == nil || in.BornDate == nil {
		return nil, apperrors.BadRequest("name_people, age and born_date are required")
	}
	people := &entities.People{
		NamePeople: *in.NamePeople,
		Age:        *in.Age,
		BornDate:   *in.BornDate,
	}
	if err := uc.PeopleRepo.Create(ctx, people); err != nil {
		return nil, err
	}
	return people, nil
}

// ============= Planets =============

func (uc *CatalogUseCase) ListPlanets(ctx context.Context) ([]entities.Planet, error) {
	planets, err := uc.PlanetRepo.GetAll(ctx)
	if planets == nil {
		planets = []entities.Planet{}
	}
	return planets, err
}

func (uc *CatalogUseCase) GetPlanet(ctx context.Context, id uint) (*entities.Planet, error) {
	planet, err := uc.PlanetRepo.GetByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("planet %d not found", id).Wrap(err)
	}
	return planet, err
}

func (uc *CatalogUseCase) CreatePlanet(ctx context.Context, in CreatePlanetInput) (*entities.Planet, error) {
	if in.NamePlanet == nil || in.Population == nil || in.Climate == nil {
		return nil, apperrors.BadRequest("name_planet, population and climate are required")
	}
	planet := &entities.Planet{
		NamePlanet: *in.NamePlanet,
		Population: *in.Population,
		Climate:    *in.Climate,
	}
	if err := uc.PlanetRepo.Create(ctx, planet); err != nil {
		return nil, err
	}
	return planet, nil
}
