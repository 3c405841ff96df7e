package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"starwars-api/apperrors"
	"starwars-api/db/dbtest"
	"starwars-api/entities"
	"starwars-api/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var apiErr *apperrors.APIException
	require.True(t, errors.As(err, &apiErr), "expected APIException, got %v", err)
	return apiErr.StatusCode
}

func TestUserUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewUserUseCase(repositories.NewUserGormRepository(dbtest.New(t)))

	user, err := uc.CreateUser(ctx, CreateUserInput{Email: ptr("a@b.com"), Password: ptr("x"), IsActive: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.False(t, user.IsActive)

	list, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.UserSummary{{ID: user.ID, Email: "a@b.com"}}, list)

	edited, err := uc.EditUser(ctx, user.ID, EditUserInput{Email: ptr("new@b.com")})
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", edited.Email)

	_, err = uc.EditUser(ctx, user.ID+1, EditUserInput{Email: ptr("z@b.com")})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = uc.EditUser(ctx, user.ID, EditUserInput{})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	found, err := uc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", found.Email)

	_, err = uc.GetUser(ctx, user.ID+1)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = uc.CreateUser(ctx, CreateUserInput{Email: ptr("a@b.com")})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestListUsersEmptyIsNotNil(t *testing.T) {
	uc := NewUserUseCase(repositories.NewUserGormRepository(dbtest.New(t)))

	list, err := uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()
	database := dbtest.New(t)
	uc := NewCatalogUseCase(repositories.NewPeopleGormRepository(database), repositories.NewPlanetGormRepository(database))

	people, err := uc.CreatePeople(ctx, CreatePeopleInput{NamePeople: ptr("Leia"), Age: ptr(0), BornDate: ptr("19BBY")})
	require.NoError(t, err)
	got, err := uc.GetPeople(ctx, people.ID)
	require.NoError(t, err)
	assert.Equal(t, people, got)

	planet, err := uc.CreatePlanet(ctx, CreatePlanetInput{NamePlanet: ptr("Hoth"), Population: ptr(int64(0)), Climate: ptr("frozen")})
	require.NoError(t, err)
	gotPlanet, err := uc.GetPlanet(ctx, planet.PlanetID)
	require.NoError(t, err)
	assert.Equal(t, planet, gotPlanet)

	_, err = uc.GetPeople(ctx, 404)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	_, err = uc.GetPlanet(ctx, 404)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	_, err = uc.CreatePeople(ctx, CreatePeopleInput{NamePeople: ptr("Han")})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	_, err = uc.CreatePlanet(ctx, CreatePlanetInput{Climate: ptr("temperate")})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestFavoriteUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewFavoriteUseCase(repositories.NewFavoriteGormRepository(dbtest.New(t)))

	fav, err := uc.AddPlanet(ctx, 5, AddFavoriteInput{UserID: ptr(uint(1))})
	require.NoError(t, err)
	assert.Equal(t, uint(1), fav.UserID)
	assert.Equal(t, uint(5), fav.PlanetID)

	_, err = uc.AddPlanet(ctx, 5, AddFavoriteInput{UserID: ptr(uint(1))})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, err = uc.AddPeople(ctx, 3, AddFavoriteInput{})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = uc.AddPeople(ctx, 3, AddFavoriteInput{UserID: ptr(uint(1))})
	require.NoError(t, err)

	favs, err := uc.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, favs.Planets, 1)
	assert.Len(t, favs.People, 1)

	require.NoError(t, uc.DeletePlanet(ctx, 1, 5))
	err = uc.DeletePlanet(ctx, 1, 5)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.EqualError(t, err, MsgFavoritePlanetNotFound)

	require.NoError(t, uc.DeletePeople(ctx, 1, 3))
	err = uc.DeletePeople(ctx, 1, 3)
	assert.EqualError(t, err, MsgFavoritePeopleNotFound)
}

type failingFavorites struct {
	repositories.FavoriteRepository
	err error
}

func (f failingFavorites) DeletePlanet(context.Context, uint, uint) error { return f.err }

func TestFavoriteUseCasePassesStoreErrorsThrough(t *testing.T) {
	storeErr := errors.New("connection reset")
	uc := NewFavoriteUseCase(failingFavorites{err: storeErr})

	err := uc.DeletePlanet(context.Background(), 1, 1)
	assert.Same(t, storeErr, err)
}
