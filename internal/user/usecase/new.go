package usecase

import (
	"property-listing/internal/user"
	"property-listing/internal/user/repository"
	"property-listing/pkg/log"
	"property-listing/pkg/scope"
	"property-listing/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo      repository.Repository
	scope     scope.Manager
	validator *validation.Validator
	l         log.Logger
	hashCost  int
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, scopeManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		scope:     scopeManager,
		validator: validation.New(),
		l:         l,
		hashCost:  bcrypt.DefaultCost,
	}
}
