package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"property-listing/internal/property"
	repo "property-listing/internal/property/repository"
	"property-listing/pkg/paginator"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// scanProperty reads one row selected with propertyColumns.
func scanProperty(row pgx.Row) (property.Property, error) {
	var (
		p       property.Property
		id      uuid.UUID
		ownerID uuid.UUID
	)
	if err := row.Scan(&id, &p.Title, &p.Description, &p.Price, &p.Slug, &ownerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return property.Property{}, err
	}
	p.ID = id.String()
	p.OwnerID = ownerID.String()
	return p, nil
}

// CreateProperty inserts a new Property row and returns the created entity.
func (r *implRepository) CreateProperty(ctx context.Context, opt repo.CreatePropertyOptions) (property.Property, error) {
	const query = `
		INSERT INTO properties (id, title, description, price, slug, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + propertyColumns

	ownerID, err := uuid.Parse(opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: owner id %q: %v", r.dsn("CreateProperty"), opt.OwnerID, err)
		return property.Property{}, repo.ErrFailedToInsert
	}

	row := r.pool.QueryRow(ctx, query,
		uuid.New(), opt.Title, opt.Description, opt.Price, opt.Slug, ownerID, time.Now().UTC(),
	)
	p, err := scanProperty(row)
	if err != nil {
		if isUniqueViolation(err) {
			return property.Property{}, repo.ErrUniqueSlug
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProperty"), err)
		return property.Property{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOneProperty retrieves a single Property by the provided filters (AND condition).
// Returns zero-value Property (ID == "") when not found.
func (r *implRepository) GetOneProperty(ctx context.Context, opt repo.GetOnePropertyOptions) (property.Property, error) {
	query, args, ok := buildGetOneQuery(opt)
	if !ok {
		return property.Property{}, nil
	}

	p, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return property.Property{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProperty"), err)
		return property.Property{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListProperties returns one window of Properties matching all predicates.
func (r *implRepository) ListProperties(ctx context.Context, opt repo.ListPropertiesOptions) ([]property.Property, error) {
	query, args, err := buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProperties"), err)
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProperties"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var props []property.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListProperties"), err)
			return nil, repo.ErrFailedToList
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListProperties"), err)
		return nil, repo.ErrFailedToList
	}
	return props, nil
}

// CountProperties counts Properties matching all predicates.
func (r *implRepository) CountProperties(ctx context.Context, opt repo.CountPropertiesOptions) (int64, error) {
	query, args, err := buildCountQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountProperties"), err)
		return 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx, query, args...).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, paginator.ErrNoResult
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountProperties"), err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

// UpdateProperty overwrites the mutable columns of a Property.
// Returns zero-value Property when the row no longer exists.
func (r *implRepository) UpdateProperty(ctx context.Context, opt repo.UpdatePropertyOptions) (property.Property, error) {
	const query = `
		UPDATE properties
		SET title = $1, description = $2, price = $3, slug = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + propertyColumns

	id, err := uuid.Parse(opt.ID)
	if err != nil {
		return property.Property{}, nil
	}

	p, err := scanProperty(r.pool.QueryRow(ctx, query,
		opt.Title, opt.Description, opt.Price, opt.Slug, time.Now().UTC(), id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return property.Property{}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return property.Property{}, repo.ErrUniqueSlug
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProperty"), err)
		return property.Property{}, repo.ErrFailedToUpdate
	}
	return p, nil
}

// DeleteProperty removes a Property by ID.
func (r *implRepository) DeleteProperty(ctx context.Context, id string) error {
	const query = `DELETE FROM properties WHERE id = $1`

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, query, uid); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProperty"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
