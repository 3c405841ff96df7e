package repositories

import (
	"context"
	"testing"

	"starwars-api/apperrors"
	"starwars-api/db"
	"starwars-api/db/dbtest"
	"starwars-api/entities"

	"github.com/stretchr/testify/suite"
)

type RepositorySuite struct {
	suite.Suite
	ctx       context.Context
	database  db.Database
	users     UserRepository
	people    PeopleRepository
	planets   PlanetRepository
	favorites FavoriteRepository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.database = dbtest.New(s.T())
	s.users = NewUserGormRepository(s.database)
	s.people = NewPeopleGormRepository(s.database)
	s.planets = NewPlanetGormRepository(s.database)
	s.favorites = NewFavoriteGormRepository(s.database)
}

func (s *RepositorySuite) TestUserLifecycle() {
	user := &entities.User{Email: "a@b.com", Password: "x", IsActive: true}
	s.Require().NoError(s.users.Create(s.ctx, user))
	s.NotZero(user.ID)

	got, err := s.users.GetByID(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("a@b.com", got.Email)
	s.True(got.IsActive)

	updated, err := s.users.UpdateEmail(s.ctx, user.ID, "c@d.com")
	s.Require().NoError(err)
	s.Equal("c@d.com", updated.Email)

	all, err := s.users.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("c@d.com", all[0].Email)
}

func (s *RepositorySuite) TestUpdateEmailMissingUser() {
	existing := &entities.User{Email: "keep@b.com", Password: "x"}
	s.Require().NoError(s.users.Create(s.ctx, existing))

	_, err := s.users.UpdateEmail(s.ctx, existing.ID+100, "new@b.com")
	s.ErrorIs(err, apperrors.ErrNotFound)

	got, err := s.users.GetByID(s.ctx, existing.ID)
	s.Require().NoError(err)
	s.Equal("keep@b.com", got.Email)
}

func (s *RepositorySuite) TestPeopleAndPlanets() {
	luke := &entities.People{NamePeople: "Luke Skywalker", Age: 19, BornDate: "19BBY"}
	s.Require().NoError(s.people.Create(s.ctx, luke))
	gotLuke, err := s.people.GetByID(s.ctx, luke.ID)
	s.Require().NoError(err)
	s.Equal(*luke, *gotLuke)

	tatooine := &entities.Planet{NamePlanet: "Tatooine", Population: 200000, Climate: "arid"}
	s.Require().NoError(s.planets.Create(s.ctx, tatooine))
	s.NotZero(tatooine.PlanetID)
	gotPlanet, err := s.planets.GetByID(s.ctx, tatooine.PlanetID)
	s.Require().NoError(err)
	s.Equal(*tatooine, *gotPlanet)

	_, err = s.people.GetByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.planets.GetByID(s.ctx, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)

	people, err := s.people.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(people, 1)
	planets, err := s.planets.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(planets, 1)
}

func (s *RepositorySuite) TestFavoritePlanetDeleteOnce() {
	s.Require().NoError(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 1, PlanetID: 5}))

	s.NoError(s.favorites.DeletePlanet(s.ctx, 1, 5))
	s.ErrorIs(s.favorites.DeletePlanet(s.ctx, 1, 5), apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestFavoritePeopleDeleteMatchesBothKeys() {
	s.Require().NoError(s.favorites.AddPeople(s.ctx, &entities.FavPeople{UserID: 1, CharactersID: 2}))
	s.Require().NoError(s.favorites.AddPeople(s.ctx, &entities.FavPeople{UserID: 2, CharactersID: 2}))

	s.ErrorIs(s.favorites.DeletePeople(s.ctx, 3, 2), apperrors.ErrNotFound)
	s.NoError(s.favorites.DeletePeople(s.ctx, 1, 2))

	_, people, err := s.favorites.ListByUser(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(people, 1)
}

func (s *RepositorySuite) TestDuplicateFavoriteIsConflict() {
	s.Require().NoError(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 1, PlanetID: 5}))
	s.ErrorIs(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 1, PlanetID: 5}), apperrors.ErrConflict)

	s.Require().NoError(s.favorites.AddPeople(s.ctx, &entities.FavPeople{UserID: 1, CharactersID: 5}))
	s.ErrorIs(s.favorites.AddPeople(s.ctx, &entities.FavPeople{UserID: 1, CharactersID: 5}), apperrors.ErrConflict)
}

func (s *RepositorySuite) TestListByUser() {
	s.Require().NoError(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 7, PlanetID: 1}))
	s.Require().NoError(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 7, PlanetID: 2}))
	s.Require().NoError(s.favorites.AddPeople(s.ctx, &entities.FavPeople{UserID: 7, CharactersID: 3}))
	s.Require().NoError(s.favorites.AddPlanet(s.ctx, &entities.FavPlanet{UserID: 8, PlanetID: 1}))

	planets, people, err := s.favorites.ListByUser(s.ctx, 7)
	s.Require().NoError(err)
	s.Len(planets, 2)
	s.Len(people, 1)
	s.Equal(uint(3), people[0].CharactersID)
}
