package repositories

import (
	"context"

	"starwars-api/apperrors"
	"starwars-api/db"
	"starwars-api/entities"
)

type favoriteGormRepository struct {
	db db.Database
}

func NewFavoriteGormRepository(database db.Database) FavoriteRepository {
	return &favoriteGormRepository{db: database}
}

func (r *favoriteGormRepository) AddPlanet(ctx context.Context, fav *entities.FavPlanet) error {
	return apperrors.WrapDBError(r.db.GetDB().WithContext(ctx).Create(fav).Error)
}

func (r *favoriteGormRepository) AddPeople(ctx context.Context, fav *entities.FavPeople) error {
	return apperrors.WrapDBError(r.db.GetDB().WithContext(ctx).Create(fav).Error)
}

func (r *favoriteGormRepository) DeletePlanet(ctx context.Context, userID, planetID uint) error {
	return r.deleteOne(ctx, &entities.FavPlanet{}, "user_id = ? AND planet_id = ?", userID, planetID)
}

func (r *favoriteGormRepository) DeletePeople(ctx context.Context, userID, charactersID uint) error {
	return r.deleteOne(ctx, &entities.FavPeople{}, "user_id = ? AND characters_id = ?", userID, charactersID)
}

// deleteOne removes the link matching the composite filter. ErrNotFound is
// returned when no link matches.
func (r *favoriteGormRepository) deleteOne(ctx context.Context, model any, query string, args ...any) error {
	result := r.db.GetDB().WithContext(ctx).Where(query, args...).Delete(model)
	if result.Error != nil {
		return apperrors.WrapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *favoriteGormRepository) ListByUser(ctx context.Context, userID uint) ([]entities.FavPlanet, []entities.FavPeople, error) {
	var planets []entities.FavPlanet
	var people []entities.FavPeople

	tx := r.db.GetDB().WithContext(ctx)
	if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&planets).Error; err != nil {
		return nil, nil, apperrors.WrapDBError(err)
	}
	if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&people).Error; err != nil {
		return nil, nil, apperrors.WrapDBError(err)
	}
	return planets, people, nil
}
