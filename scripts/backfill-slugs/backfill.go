package main

import (
	"context"
	"errors"

	"property-listing/internal/property"
	"property-listing/internal/property/repository"
	"property-listing/pkg/log"
	"property-listing/pkg/slug"
)

const pageSize = 200

type stats struct {
	Scanned, Updated, Conflicts int
}

// wantSlug returns the slug p should carry. Without resync only empty or
// non-normalised slugs are touched, so pinned slugs survive.
func wantSlug(p property.Property, resync bool) string {
	if resync || p.Slug == "" {
		return slug.Generate(p.Title)
	}
	return slug.Generate(p.Slug)
}

// backfill pages through every property and rewrites slugs that are out of date.
func backfill(ctx context.Context, repo repository.PropertyRepository, l log.Logger, resync, dryRun bool) (stats, error) {
	var st stats
	for offset := 0; ; offset += pageSize {
		props, err := repo.ListProperties(ctx, repository.ListPropertiesOptions{Limit: pageSize, Offset: offset})
		if err != nil {
			return st, err
		}

		for _, p := range props {
			st.Scanned++
			want := wantSlug(p, resync)
			if want == "" || want == p.Slug {
				continue
			}
			if dryRun {
				l.Infof(ctx, "would update %s: %q -> %q", p.ID, p.Slug, want)
				st.Updated++
				continue
			}

			_, err := repo.UpdateProperty(ctx, repository.UpdatePropertyOptions{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Price:       p.Price,
				Slug:        want,
			})
			if errors.Is(err, repository.ErrUniqueSlug) {
				l.Warnf(ctx, "slug %q for %s is taken, skipping", want, p.ID)
				st.Conflicts++
				continue
			}
			if err != nil {
				return st, err
			}
			l.Infof(ctx, "updated %s: %q -> %q", p.ID, p.Slug, want)
			st.Updated++
		}

		if len(props) < pageSize {
			return st, nil
		}
	}
}
