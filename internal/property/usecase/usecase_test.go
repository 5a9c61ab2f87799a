package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"property-listing/internal/model"
	"property-listing/internal/property"
	"property-listing/internal/property/repository"
	"property-listing/internal/property/usecase"
	"property-listing/internal/user"
	"property-listing/pkg/paginator"
	"property-listing/pkg/validation"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory store that evaluates predicates like the SQL layer.
type mockRepo struct {
	mu        sync.Mutex
	rows      map[string]property.Property
	seq       int
	getCalls  int
	countErr  error
	listErr   error
	lastList  repository.ListPropertiesOptions
	lastCount repository.CountPropertiesOptions
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: map[string]property.Property{}}
}

func (m *mockRepo) CreateProperty(ctx context.Context, opt repository.CreatePropertyOptions) (property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.rows {
		if p.Slug == opt.Slug {
			return property.Property{}, repository.ErrUniqueSlug
		}
	}
	m.seq++
	now := time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
	p := property.Property{
		ID:          fmt.Sprintf("prop-%d", m.seq),
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		Slug:        opt.Slug,
		OwnerID:     opt.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.rows[p.ID] = p
	return p, nil
}

func (m *mockRepo) GetOneProperty(ctx context.Context, opt repository.GetOnePropertyOptions) (property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	for _, p := range m.rows {
		if opt.ID != "" && p.ID != opt.ID {
			continue
		}
		if opt.Slug != "" && p.Slug != opt.Slug {
			continue
		}
		return p, nil
	}
	return property.Property{}, nil
}

func (m *mockRepo) match(preds []property.Predicate) []property.Property {
	var out []property.Property
	for _, p := range m.rows {
		ok := true
		for _, pred := range preds {
			switch pred.Op {
			case property.OpContains:
				ok = ok && strings.Contains(strings.ToLower(p.Title), strings.ToLower(strings.Trim(pred.Value.(string), "%")))
			case property.OpGte:
				ok = ok && p.Price >= pred.Value.(float64)
			case property.OpLte:
				ok = ok && p.Price <= pred.Value.(float64)
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *mockRepo) ListProperties(ctx context.Context, opt repository.ListPropertiesOptions) ([]property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastList = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	rows := m.match(opt.Predicates)
	if opt.Offset >= len(rows) {
		return nil, nil
	}
	rows = rows[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(rows) {
		rows = rows[:opt.Limit]
	}
	return rows, nil
}

func (m *mockRepo) CountProperties(ctx context.Context, opt repository.CountPropertiesOptions) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastCount = opt
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.match(opt.Predicates))), nil
}

func (m *mockRepo) UpdateProperty(ctx context.Context, opt repository.UpdatePropertyOptions) (property.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[opt.ID]
	if !ok {
		return property.Property{}, nil
	}
	for id, other := range m.rows {
		if id != opt.ID && other.Slug == opt.Slug {
			return property.Property{}, repository.ErrUniqueSlug
		}
	}
	p.Title, p.Description, p.Price, p.Slug = opt.Title, opt.Description, opt.Price, opt.Slug
	m.rows[opt.ID] = p
	return p, nil
}

func (m *mockRepo) DeleteProperty(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

type mockUserUC struct {
	known map[string]bool
	err   error
}

func (m *mockUserUC) Create(ctx context.Context, input user.CreateUserInput) (user.User, error) {
	return user.User{}, nil
}

func (m *mockUserUC) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	return user.LoginOutput{}, nil
}

func (m *mockUserUC) Detail(ctx context.Context, id string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	if !m.known[id] {
		return user.User{}, user.ErrUserNotFound
	}
	return user.User{ID: id}, nil
}

func (m *mockUserUC) DetailByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

type mockPublisher struct {
	events []property.Event
	fail   bool
}

func (m *mockPublisher) Publish(ctx context.Context, event property.Event) error {
	if m.fail {
		return errors.New("broker down")
	}
	m.events = append(m.events, event)
	return nil
}

// fixtures

var (
	admin    = model.Scope{UserID: "u-admin", Roles: []string{model.RoleAdmin}}
	manager  = model.Scope{UserID: "u-manager", Roles: []string{model.RolePropertyManager, model.RoleUser}}
	manager2 = model.Scope{UserID: "u-manager2", Roles: []string{model.RolePropertyManager}}
	plain    = model.Scope{UserID: "u-plain", Roles: []string{model.RoleUser}}
)

type fixture struct {
	uc   property.UseCase
	repo *mockRepo
	pub  *mockPublisher
	user *mockUserUC
}

func newFixture() fixture {
	repo := newMockRepo()
	pub := &mockPublisher{}
	users := &mockUserUC{known: map[string]bool{
		admin.UserID: true, manager.UserID: true, manager2.UserID: true, plain.UserID: true,
	}}
	uc := usecase.New(&mockLogger{}, repo, users, pub, usecase.Options{})
	return fixture{uc: uc, repo: repo, pub: pub, user: users}
}

func ptr[T any](v T) *T { return &v }

func mustCreate(t *testing.T, f fixture, sc model.Scope, title string, price float64) property.Property {
	t.Helper()
	p, err := f.uc.Create(context.Background(), sc, property.CreateInput{Title: title, Price: price})
	if err != nil {
		t.Fatalf("Create(%q): %v", title, err)
	}
	return p
}

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T: %v", err, err)
	}
	return verr.Messages
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("property manager gets derived slug and owns the property", func(t *testing.T) {
		f := newFixture()
		p, err := f.uc.Create(ctx, manager, property.CreateInput{
			Title:       "Luxury Apartment in Downtown!!",
			Description: "Top floor",
			Price:       350000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Slug != "luxury-apartment-in-downtown" {
			t.Errorf("slug = %q", p.Slug)
		}
		if p.OwnerID != manager.UserID {
			t.Errorf("owner = %q, want actor", p.OwnerID)
		}
		if len(f.pub.events) != 1 || f.pub.events[0].Type != property.EventCreated || f.pub.events[0].PropertyID != p.ID {
			t.Errorf("events = %+v", f.pub.events)
		}
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, plain, property.CreateInput{Title: "x", Price: 1})
		if !errors.Is(err, property.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if err.Error() != "only admins and property managers can create properties" {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("negative price is a validation error mentioning price", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Cheap", Price: -10})
		msgs := validationMessages(t, err)
		if len(msgs) != 1 || !strings.Contains(msgs[0], "price") {
			t.Errorf("messages = %v", msgs)
		}
		if len(f.repo.rows) != 0 {
			t.Error("nothing must be stored")
		}
	})

	t.Run("violations are aggregated", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, manager, property.CreateInput{
			Title:       "",
			Description: strings.Repeat("d", 5001),
			Price:       0,
		})
		msgs := validationMessages(t, err)
		if len(msgs) != 3 {
			t.Errorf("expected 3 messages, got %v", msgs)
		}
	})

	t.Run("punctuation-only title cannot produce a slug", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "!!!", Price: 10})
		msgs := validationMessages(t, err)
		if len(msgs) != 1 || msgs[0] != "title must contain at least one letter or digit" {
			t.Errorf("messages = %v", msgs)
		}
	})

	t.Run("submitted slug is pinned and normalised", func(t *testing.T) {
		f := newFixture()
		p, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Cozy Country House", Slug: "My Custom Slug", Price: 250000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Slug != "my-custom-slug" {
			t.Errorf("slug = %q", p.Slug)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		f := newFixture()
		mustCreate(t, f, manager, "Modern Condo", 100)
		_, err := f.uc.Create(ctx, admin, property.CreateInput{Title: "Modern  Condo", Price: 200})
		if !errors.Is(err, property.ErrDuplicateSlug) {
			t.Errorf("expected ErrDuplicateSlug, got %v", err)
		}
		if f.repo.getCalls != 0 {
			t.Errorf("create read storage %d times, want 0", f.repo.getCalls)
		}
	})

	t.Run("only admins may choose another owner", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Studio", Price: 1, OwnerID: manager2.UserID})
		if !errors.Is(err, property.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}

		p, err := f.uc.Create(ctx, admin, property.CreateInput{Title: "Studio", Price: 1, OwnerID: manager2.UserID})
		if err != nil {
			t.Fatalf("admin create: %v", err)
		}
		if p.OwnerID != manager2.UserID {
			t.Errorf("owner = %q", p.OwnerID)
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(ctx, admin, property.CreateInput{Title: "Studio", Price: 1, OwnerID: "ghost"})
		msgs := validationMessages(t, err)
		if len(msgs) != 1 || msgs[0] != "owner: user not found" {
			t.Errorf("messages = %v", msgs)
		}
	})

	t.Run("user lookup failure is propagated", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("db down")
		f.user.err = boom
		_, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Studio", Price: 1})
		if !errors.Is(err, boom) {
			t.Errorf("expected storage error, got %v", err)
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		f := newFixture()
		f.pub.fail = true
		if _, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Studio", Price: 1}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCreateWithoutPublisher(t *testing.T) {
	repo := newMockRepo()
	users := &mockUserUC{known: map[string]bool{manager.UserID: true}}
	uc := usecase.New(&mockLogger{}, repo, users, nil, usecase.Options{CacheSize: 8, CacheTTL: time.Second})

	if _, err := uc.Create(context.Background(), manager, property.CreateInput{Title: "Studio", Price: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("title change regenerates slug", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Cozy Country House", 250000)

		got, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Title: ptr("Cozy Lake House")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Slug != "cozy-lake-house" {
			t.Errorf("slug = %q", got.Slug)
		}
		if got.Price != 250000 {
			t.Errorf("price must be kept, got %v", got.Price)
		}
	})

	t.Run("unchanged title keeps a pinned slug", func(t *testing.T) {
		f := newFixture()
		p, err := f.uc.Create(ctx, manager, property.CreateInput{Title: "Loft", Slug: "custom", Price: 1})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Title: ptr("Loft"), Price: ptr(2.0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Slug != "custom" || got.Price != 2 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("submitted slug wins over title change", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)
		got, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Title: ptr("Big Loft"), Slug: ptr("Loft 2024")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Slug != "loft-2024" {
			t.Errorf("slug = %q", got.Slug)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)
		_, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Price: ptr(-5.0)})
		msgs := validationMessages(t, err)
		if len(msgs) != 1 || !strings.Contains(msgs[0], "price") {
			t.Errorf("messages = %v", msgs)
		}
	})

	t.Run("authorization", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)

		for _, sc := range []model.Scope{manager2, plain, {}} {
			_, err := f.uc.Update(ctx, sc, property.UpdateInput{ID: p.ID, Title: ptr("Hijacked")})
			if !errors.Is(err, property.ErrForbidden) {
				t.Errorf("scope %+v: expected ErrForbidden, got %v", sc, err)
			}
		}
		if _, err := f.uc.Update(ctx, admin, property.UpdateInput{ID: p.ID, Title: ptr("By Admin")}); err != nil {
			t.Errorf("admin update: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Update(ctx, admin, property.UpdateInput{ID: "missing", Title: ptr("x")})
		if !errors.Is(err, property.ErrPropertyNotFound) {
			t.Errorf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("slug collision", func(t *testing.T) {
		f := newFixture()
		mustCreate(t, f, manager, "Beach Villa", 1)
		p := mustCreate(t, f, manager, "Mountain Cabin", 1)
		_, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Title: ptr("Beach Villa")})
		if !errors.Is(err, property.ErrDuplicateSlug) {
			t.Errorf("expected ErrDuplicateSlug, got %v", err)
		}
	})

	t.Run("publishes updated event", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)
		if _, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Price: ptr(3.0)}); err != nil {
			t.Fatalf("update: %v", err)
		}
		last := f.pub.events[len(f.pub.events)-1]
		if last.Type != property.EventUpdated || last.PropertyID != p.ID {
			t.Errorf("last event = %+v", last)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("other manager is forbidden", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)
		err := f.uc.Delete(ctx, manager2, p.ID)
		if !errors.Is(err, property.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if err.Error() != "you are not allowed to modify this property" {
			t.Errorf("message = %q", err.Error())
		}
		if _, ok := f.repo.rows[p.ID]; !ok {
			t.Error("property must survive")
		}
	})

	t.Run("owner deletes", func(t *testing.T) {
		f := newFixture()
		p := mustCreate(t, f, manager, "Loft", 1)
		if err := f.uc.Delete(ctx, manager, p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.uc.DetailBySlug(ctx, p.Slug); !errors.Is(err, property.ErrPropertyNotFound) {
			t.Errorf("expected not found after delete, got %v", err)
		}
		last := f.pub.events[len(f.pub.events)-1]
		if last.Type != property.EventDeleted {
			t.Errorf("last event = %+v", last)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		if err := f.uc.Delete(ctx, admin, "missing"); !errors.Is(err, property.ErrPropertyNotFound) {
			t.Errorf("expected ErrPropertyNotFound, got %v", err)
		}
	})
}

func TestDetailBySlug(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := mustCreate(t, f, manager, "Affordable Studio Apartment", 90000)

	got, err := f.uc.DetailBySlug(ctx, "affordable-studio-apartment")
	if err != nil || got.ID != p.ID {
		t.Fatalf("DetailBySlug = %+v, %v", got, err)
	}

	calls := f.repo.getCalls
	if _, err := f.uc.DetailBySlug(ctx, "affordable-studio-apartment"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if f.repo.getCalls != calls {
		t.Error("second lookup must be served from cache")
	}

	// Update invalidates the cached entry.
	if _, err := f.uc.Update(ctx, manager, property.UpdateInput{ID: p.ID, Price: ptr(95000.0)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = f.uc.DetailBySlug(ctx, "affordable-studio-apartment")
	if err != nil || got.Price != 95000 {
		t.Errorf("after update = %+v, %v", got, err)
	}

	if _, err := f.uc.DetailBySlug(ctx, "nope"); !errors.Is(err, property.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	mustCreate(t, f, manager, "Luxury Apartment in Downtown", 350000)
	mustCreate(t, f, manager, "Cozy Country House", 250000)
	mustCreate(t, f, manager, "Modern Condo with Sea View", 500000)
	mustCreate(t, f, manager, "Affordable Studio Apartment", 90000)

	t.Run("inclusive price range", func(t *testing.T) {
		out, err := f.uc.List(ctx, property.ListInput{
			Filter: property.FilterCriteria{MinPrice: ptr(100000.0), MaxPrice: ptr(500000.0)},
			Page:   paginator.NewPageRequest(0, 0),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Properties) != 3 || out.Meta.TotalCount != 3 {
			t.Fatalf("got %d rows, total %d", len(out.Properties), out.Meta.TotalCount)
		}
		for _, p := range out.Properties {
			if p.Price < 100000 || p.Price > 500000 {
				t.Errorf("%q price %v out of range", p.Title, p.Price)
			}
		}
	})

	t.Run("empty criteria is unfiltered and paginated", func(t *testing.T) {
		out, err := f.uc.List(ctx, property.ListInput{Page: paginator.NewPageRequest(2, 3)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.repo.lastList.Offset != 3 || f.repo.lastList.Limit != 3 || len(f.repo.lastList.Predicates) != 0 {
			t.Errorf("storage instruction = %+v", f.repo.lastList)
		}
		if len(out.Properties) != 1 {
			t.Errorf("page 2 rows = %d", len(out.Properties))
		}
		want := paginator.PageResult{Page: 2, Limit: 3, TotalCount: 4}
		if out.Meta != want {
			t.Errorf("meta = %+v, want %+v", out.Meta, want)
		}
	})

	t.Run("count uses the same predicates", func(t *testing.T) {
		_, err := f.uc.List(ctx, property.ListInput{
			Filter: property.FilterCriteria{Title: "Apartment"},
			Page:   paginator.NewPageRequest(1, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.repo.lastCount.Predicates) != 1 || f.repo.lastCount.Predicates[0] != f.repo.lastList.Predicates[0] {
			t.Errorf("count predicates %+v differ from list %+v", f.repo.lastCount.Predicates, f.repo.lastList.Predicates)
		}
	})

	t.Run("no count result is zero", func(t *testing.T) {
		f.repo.countErr = paginator.ErrNoResult
		defer func() { f.repo.countErr = nil }()

		out, err := f.uc.List(ctx, property.ListInput{Page: paginator.NewPageRequest(1, 10)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Meta.TotalCount != 0 {
			t.Errorf("total = %d", out.Meta.TotalCount)
		}
	})

	t.Run("storage error is propagated", func(t *testing.T) {
		f.repo.listErr = repository.ErrFailedToList
		defer func() { f.repo.listErr = nil }()

		if _, err := f.uc.List(ctx, property.ListInput{Page: paginator.NewPageRequest(1, 10)}); !errors.Is(err, repository.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}
