package usecase

import (
	"context"
	"strings"

	"property-listing/internal/user"
	repo "property-listing/internal/user/repository"
)

// Detail retrieves a User by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.User, error) {
	if strings.TrimSpace(id) == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return uc.getOne(ctx, "Detail", repo.GetOneUserOptions{ID: id})
}

// DetailByEmail retrieves a User by email, case-insensitively.
func (uc *implUseCase) DetailByEmail(ctx context.Context, email string) (user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return uc.getOne(ctx, "DetailByEmail", repo.GetOneUserOptions{Email: email})
}

func (uc *implUseCase) getOne(ctx context.Context, op string, opt repo.GetOneUserOptions) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneUser: %v", op, err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
