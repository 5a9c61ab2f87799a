package http

import (
	"property-listing/internal/property"
	"property-listing/pkg/log"
)

type handler struct {
	l  log.Logger
	uc property.UseCase
}

// New creates a new HTTP handler for the property domain.
func New(l log.Logger, uc property.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
