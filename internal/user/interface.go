package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Detail(ctx context.Context, id string) (User, error)
	DetailByEmail(ctx context.Context, email string) (User, error)
}
