package property

import (
	"context"

	"property-listing/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	DetailBySlug(ctx context.Context, slug string) (Property, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Property, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (Property, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

// EventPublisher delivers property lifecycle events to a broker.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
