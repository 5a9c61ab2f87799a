package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"property-listing/internal/property"
	"property-listing/internal/property/repository"
	"property-listing/internal/user"
	"property-listing/pkg/log"
	"property-listing/pkg/validation"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute
)

// Options tunes the slug lookup cache. Zero values use the defaults.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// implUseCase is the private implementation of property.UseCase.
type implUseCase struct {
	repo      repository.Repository
	userUC    user.UseCase
	publisher property.EventPublisher
	bySlug    *expirable.LRU[string, property.Property]
	validator *validation.Validator
	l         log.Logger
	now       func() time.Time
}

var _ property.UseCase = (*implUseCase)(nil)

// New creates a new property UseCase implementation. publisher may be nil,
// in which case no lifecycle events are emitted.
func New(l log.Logger, repo repository.Repository, userUC user.UseCase, publisher property.EventPublisher, opts Options) *implUseCase {
	size := opts.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &implUseCase{
		repo:      repo,
		userUC:    userUC,
		publisher: publisher,
		bySlug:    expirable.NewLRU[string, property.Property](size, nil, ttl),
		validator: validation.New(),
		l:         l,
		now:       time.Now,
	}
}
