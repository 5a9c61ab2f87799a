package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"property-listing/internal/user"
	repo "property-listing/internal/user/repository"
	"property-listing/pkg/scope"
	"property-listing/pkg/validation"
)

const tokenTypeBearer = "Bearer"

// Login checks the credentials and issues an access token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if msgs := uc.validator.Struct(input); len(msgs) > 0 {
		return user.LoginOutput{}, validation.NewError(msgs...)
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	payload := scope.Payload{Email: u.Email, Roles: u.Roles}
	payload.Subject = u.ID
	token, err := uc.scope.CreateToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(uc.scope.TTL().Seconds()),
	}, nil
}
