package repositories

import (
	"context"

	"starwars-api/apperrors"
	"starwars-api/db"
	"starwars-api/entities"
)

type planetGormRepository struct {
	db db.Database
}

func NewPlanetGormRepository(database db.Database) PlanetRepository {
	return &planetGormRepository{db: database}
}

func (r *planetGormRepository) Create(ctx context.Context, planet *entities.Planet) error {
	return apperrors.WrapDBError(r.db.GetDB().WithContext(ctx).Create(planet).Error)
}

func (r *planetGormRepository) GetByID(ctx context.Context, id uint) (*entities.Planet, error) {
	var planet entities.Planet
	if err := r.db.GetDB().WithContext(ctx).Where("planet_id = ?", id).First(&planet).Error; err != nil {
		return nil, apperrors.WrapDBError(err)
	}
	return &planet, nil
}

func (r *planetGormRepository) GetAll(ctx context.Context) ([]entities.Planet, error) {
	var planets []entities.Planet
	err := r.db.GetDB().WithContext(ctx).Order("planet_id ASC").Find(&planets).Error
	return planets, apperrors.WrapDBError(err)
}
