package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"property-listing/internal/model"
	"property-listing/internal/property"
	"property-listing/internal/user"
)

type mockUsers struct {
	byEmail map[string]user.User
	created []user.CreateUserInput
}

func (m *mockUsers) Create(ctx context.Context, input user.CreateUserInput) (user.User, error) {
	if _, ok := m.byEmail[input.Email]; ok {
		return user.User{}, user.ErrDuplicateEmail
	}
	m.created = append(m.created, input)
	u := user.User{ID: "u-" + input.Email, Email: input.Email, Roles: input.Roles}
	m.byEmail[input.Email] = u
	return u, nil
}

func (m *mockUsers) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	return user.LoginOutput{}, nil
}

func (m *mockUsers) Detail(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (m *mockUsers) DetailByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type mockProperties struct {
	bySlug  map[string]property.Property
	scopes  []model.Scope
	created []property.CreateInput
}

func (m *mockProperties) List(ctx context.Context, input property.ListInput) (property.ListOutput, error) {
	return property.ListOutput{}, nil
}

func (m *mockProperties) DetailBySlug(ctx context.Context, s string) (property.Property, error) {
	p, ok := m.bySlug[s]
	if !ok {
		return property.Property{}, property.ErrPropertyNotFound
	}
	return p, nil
}

func (m *mockProperties) Create(ctx context.Context, sc model.Scope, input property.CreateInput) (property.Property, error) {
	m.scopes = append(m.scopes, sc)
	m.created = append(m.created, input)
	s := strings.ToLower(strings.ReplaceAll(input.Title, " ", "-"))
	p := property.Property{ID: "p-" + s, Title: input.Title, Price: input.Price, Slug: s, OwnerID: input.OwnerID}
	m.bySlug[s] = p
	return p, nil
}

func (m *mockProperties) Update(ctx context.Context, sc model.Scope, input property.UpdateInput) (property.Property, error) {
	return property.Property{}, nil
}

func (m *mockProperties) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func newTestApp() (app, *mockUsers, *mockProperties, *bytes.Buffer) {
	users := &mockUsers{byEmail: map[string]user.User{}}
	props := &mockProperties{bySlug: map[string]property.Property{}}
	out := &bytes.Buffer{}
	return app{users: users, properties: props, out: out}, users, props, out
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a, users, props, out := newTestApp()

	if err := a.seed(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if len(users.created) != 1 || len(props.created) != 4 {
		t.Fatalf("created %d users, %d properties", len(users.created), len(props.created))
	}
	owner := users.byEmail[seedOwnerEmail]
	if !(model.Scope{Roles: owner.Roles}).HasRole(model.RolePropertyManager) {
		t.Errorf("owner roles = %v", owner.Roles)
	}
	for _, in := range props.created {
		if in.OwnerID != owner.ID {
			t.Errorf("%q owned by %q", in.Title, in.OwnerID)
		}
	}
	for _, sc := range props.scopes {
		if !sc.IsAdmin() {
			t.Errorf("seed must act as admin, got %+v", sc)
		}
	}

	out.Reset()
	if err := a.seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(users.created) != 1 || len(props.created) != 4 {
		t.Errorf("second run created rows: %d users, %d properties", len(users.created), len(props.created))
	}
	if strings.Count(out.String(), "skipping") != 5 {
		t.Errorf("output = %s", out.String())
	}
}

func TestCreateProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		a, users, props, out := newTestApp()
		users.byEmail["m@example.com"] = user.User{ID: "u1", Email: "m@example.com"}

		err := a.createProperty(ctx, []string{"--title", "Beach Villa", "--price", "120000.5", "--owner-email", "m@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if props.created[0].OwnerID != "u1" || props.created[0].Price != 120000.5 {
			t.Errorf("input = %+v", props.created[0])
		}
		for _, want := range []string{"Title: Beach Villa", "Slug: beach-villa", "Price: 120000.50", "Owner: m@example.com"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output misses %q: %s", want, out.String())
			}
		}
	})

	t.Run("bad price", func(t *testing.T) {
		a, _, _, _ := newTestApp()
		for _, price := range []string{"abc", "-5", "0"} {
			err := a.createProperty(ctx, []string{"--title", "x", "--price", price, "--owner-email", "m@example.com"})
			if err == nil || err.Error() != "price must be a positive number" {
				t.Errorf("price %q: err = %v", price, err)
			}
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		a, _, _, _ := newTestApp()
		err := a.createProperty(ctx, []string{"--title", "x", "--price", "1", "--owner-email", "ghost@example.com"})
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Errorf("err = %v", err)
		}
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	a, users, _, out := newTestApp()

	if err := a.createUser(ctx, []string{"--email", "a@example.com", "--password", "password123", "--role", "property-manager"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := users.created[0].Roles; len(got) != 1 || got[0] != model.RolePropertyManager {
		t.Errorf("roles = %v", got)
	}
	if !strings.Contains(out.String(), "User successfully created!") {
		t.Errorf("output = %s", out.String())
	}

	err := a.createUser(ctx, []string{"--email", "a@example.com", "--password", "password123"})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}
