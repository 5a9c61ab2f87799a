package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"property-listing/internal/model"
	"property-listing/internal/user"
	repo "property-listing/internal/user/repository"
	"property-listing/pkg/validation"
)

// Create registers a new User with a bcrypt-hashed password.
// Users created without roles get the plain user role.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if msgs := uc.validator.Struct(input); len(msgs) > 0 {
		return user.User{}, validation.NewError(msgs...)
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.User{}, err
	}
	if existing.ID != "" {
		return user.User{}, user.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.hashCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GenerateFromPassword: %v", err)
		return user.User{}, err
	}

	roles := dedupRoles(input.Roles)
	if len(roles) == 0 {
		roles = []string{model.RoleUser}
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        roles,
	})
	if err != nil {
		if errors.Is(err, repo.ErrUniqueEmail) {
			return user.User{}, user.ErrDuplicateEmail
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.User{}, err
	}
	return u, nil
}

func dedupRoles(roles []string) []string {
	seen := make(map[string]struct{}, len(roles))
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
