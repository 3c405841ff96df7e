package repositories

import (
	"context"

	"starwars-api/apperrors"
	"starwars-api/db"
	"starwars-api/entities"
)

type peopleGormRepository struct {
	db db.Database
}

func NewPeopleGormRepository(database db.Database) PeopleRepository {
	return &peopleGormRepository{db: database}
}

func (r *peopleGormRepository) Create(ctx context.Context, people *entities.People) error {
	return apperrors.WrapDBError(r.db.GetDB().WithContext(ctx).Create(people).Error)
}

func (r *peopleGormRepository) GetByID(ctx context.Context, id uint) (*entities.People, error) {
	var people entities.People
	if err := r.db.GetDB().WithContext(ctx).First(&people, id).Error; err != nil {
		return nil, apperrors.WrapDBError(err)
	}
	return &people, nil
}

func (r *peopleGormRepository) GetAll(ctx context.Context) ([]entities.People, error) {
	var people []entities.People
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&people).Error
	return people, apperrors.WrapDBError(err)
}
