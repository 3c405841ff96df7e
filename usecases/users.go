package usecases

import (
	"context"
	"errors"

	"starwars-api/apperrors"
	"starwars-api/entities"
	"starwars-api/repositories"
)

type UserUseCase struct {
	repo repositories.UserRepository
}

func NewUserUseCase(repo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ListUsers returns the public projection of every user.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]entities.UserSummary, error) {
	users, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]entities.UserSummary, 0, len(users))
	for _, u := range users {
		result = append(result, u.Summary())
	}
	return result, nil
}

func (uc *UserUseCase) CreateUser(ctx context.Context, in CreateUserInput) (*entities.User, error) {
	if in.Email == nil || in.Password == nil || in.IsActive == nil {
		return nil, apperrors.BadRequest("email, password and is_active are required")
	}
	user := &entities.User{
		Email:    *in.Email,
		Password: *in.Password,
		IsActive: *in.IsActive,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns user id or a 404 APIException.
func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("user %d not found", id).Wrap(err)
	}
	return user, err
}

// EditUser replaces the email of user id.
func (uc *UserUseCase) EditUser(ctx context.Context, id uint, in EditUserInput) (*entities.User, error) {
	if in.Email == nil {
		return nil, apperrors.BadRequest("email is required")
	}
	user, err := uc.repo.UpdateEmail(ctx, id, *in.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NotFound("user %d not found", id).Wrap(err)
	}
	return user, err
}
