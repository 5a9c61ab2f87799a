package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"property-listing/internal/user"
	repo "property-listing/internal/user/repository"
)

const uniqueViolation = "23505"

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, roles, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	u := user.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Roles:        opt.Roles,
	}
	err := r.pool.QueryRow(ctx, query, uuid.MustParse(u.ID), u.Email, u.PasswordHash, u.Roles, time.Now().UTC()).
		Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.User{}, repo.ErrUniqueEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	var (
		conditions []string
		args       []any
	)
	if opt.ID != "" {
		id, err := uuid.Parse(opt.ID)
		if err != nil {
			// Not a UUID, so no row can match.
			return user.User{}, nil
		}
		args = append(args, id)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conditions = append(conditions, fmt.Sprintf("LOWER(email) = LOWER($%d)", len(args)))
	}
	if len(conditions) == 0 {
		return user.User{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, email, password_hash, roles, created_at FROM users WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	)

	var (
		u  user.User
		id uuid.UUID
	)
	err := r.pool.QueryRow(ctx, query, args...).Scan(&id, &u.Email, &u.PasswordHash, &u.Roles, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	u.ID = id.String()
	return u, nil
}
