package repositories

import (
	"context"

	"starwars-api/apperrors"
	"starwars-api/db"
	"starwars-api/entities"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(ctx context.Context, user *entities.User) error {
	return apperrors.WrapDBError(r.db.GetDB().WithContext(ctx).Create(user).Error)
}

func (r *userGormRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.GetDB().WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, apperrors.WrapDBError(err)
	}
	return &user, nil
}

func (r *userGormRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, apperrors.WrapDBError(err)
}

// UpdateEmail replaces the email of an existing user. A missing user leaves
// the table untouched.
func (r *userGormRepository) UpdateEmail(ctx context.Context, id uint, email string) (*entities.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.GetDB().WithContext(ctx).Model(user).Update("email", email).Error; err != nil {
		return nil, apperrors.WrapDBError(err)
	}
	user.Email = email
	return user, nil
}
