package usecases

import (
	"context"
	"errors"

	"starwars-api/apperrors"
	"starwars-api/entities"
	"starwars-api/repositories"
)

const (
	MsgFavoritePlanetDeleted  = "Favorite planet deleted successfully"
	MsgFavoritePeopleDeleted  = "Favorite people deleted successfully"
	MsgFavoritePlanetNotFound = "Favorite planet not found for the user"
	MsgFavoritePeopleNotFound = "Favorite people not found for the user"
)

type FavoriteUseCase struct {
	repo repositories.FavoriteRepository
}

func NewFavoriteUseCase(repo repositories.FavoriteRepository) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo}
}

// UserFavorites groups the favorite links of one user.
type UserFavorites struct {
	UserID  uint                 `json:"user_id"`
	Planets []entities.FavPlanet `json:"planets"`
	People  []entities.FavPeople `json:"people"`
}

// AddPlanet links a user to planetID. Neither the user nor the planet is
// required to exist.
func (uc *FavoriteUseCase) AddPlanet(ctx context.Context, planetID uint, in AddFavoriteInput) (*entities.FavPlanet, error) {
	if in.UserID == nil {
		return nil, apperrors.BadRequest("user_id is required")
	}
	fav := &entities.FavPlanet{UserID: *in.UserID, PlanetID: planetID}
	if err := uc.repo.AddPlanet(ctx, fav); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("planet %d is already a favorite of user %d", planetID, *in.UserID).Wrap(err)
		}
		return nil, err
	}
	return fav, nil
}

func (uc *FavoriteUseCase) AddPeople(ctx context.Context, charactersID uint, in AddFavoriteInput) (*entities.FavPeople, error) {
	if in.UserID == nil {
		return nil, apperrors.BadRequest("user_id is required")
	}
	fav := &entities.FavPeople{UserID: *in.UserID, CharactersID: charactersID}
	if err := uc.repo.AddPeople(ctx, fav); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("people %d is already a favorite of user %d", charactersID, *in.UserID).Wrap(err)
		}
		return nil, err
	}
	return fav, nil
}

func (uc *FavoriteUseCase) DeletePlanet(ctx context.Context, userID, planetID uint) error {
	err := uc.repo.DeletePlanet(ctx, userID, planetID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound(MsgFavoritePlanetNotFound).Wrap(err)
	}
	return err
}

func (uc *FavoriteUseCase) DeletePeople(ctx context.Context, userID, charactersID uint) error {
	err := uc.repo.DeletePeople(ctx, userID, charactersID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NotFound(MsgFavoritePeopleNotFound).Wrap(err)
	}
	return err
}

func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID uint) (*UserFavorites, error) {
	planets, people, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if planets == nil {
		planets = []entities.FavPlanet{}
	}
	if people == nil {
		people = []entities.FavPeople{}
	}
	return &UserFavorites{UserID: userID, Planets: planets, People: people}, nil
}
