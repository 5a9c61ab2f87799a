package http

import (
	"time"

	"property-listing/internal/property"
	"property-listing/pkg/paginator"
)

// --- Request DTOs ---

type listReq struct {
	Filter property.FilterCriteria
	Page   paginator.PageRequest
}

func (r listReq) toInput() property.ListInput {
	return property.ListInput{Filter: r.Filter, Page: r.Page}
}

type createReq struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Slug        string  `json:"slug"`
	OwnerID     string  `json:"ownerId"`
}

func (r createReq) toInput() property.CreateInput {
	return property.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Slug:        r.Slug,
		OwnerID:     r.OwnerID,
	}
}

// updateReq is partial: omitted fields stay nil and keep their stored value.
type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Slug        *string  `json:"slug"`
}

func (r updateReq) toInput() property.UpdateInput {
	return property.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Slug:        r.Slug,
	}
}

// --- Response DTOs ---

type propertyResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Slug        string    `json:"slug"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newPropertyResp(p property.Property) propertyResp {
	return propertyResp{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Slug:        p.Slug,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// listResp documents the list envelope for swagger.
type listResp struct {
	Data []propertyResp       `json:"data"`
	Meta paginator.PageResult `json:"meta"`
}

func (h *handler) newListData(out property.ListOutput) []propertyResp {
	data := make([]propertyResp, len(out.Properties))
	for i, p := range out.Properties {
		data[i] = newPropertyResp(p)
	}
	return data
}
