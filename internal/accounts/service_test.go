package accounts

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/config"
	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
	"github.com/techstore/storefront-backend/pkg/security"
)

type stubRepo struct {
	users map[uuid.UUID]*models.User
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: map[uuid.UUID]*models.User{}}
}

func (r *stubRepo) WithTx(tx *gorm.DB) Repository { return r }

func (r *stubRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) Update(ctx context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubRepo) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *stubRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()

	repo := newStubRepo()
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	svc, err := NewService(repo, stubTxRunner{}, testPasswordConfig(), log)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return hash
}

func requireCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	typed := apperrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s (%v)", code, typed.Code(), err)
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long enough password",
		FullName: "Alice Example",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatal("expected user id to be assigned")
	}
	if user.PasswordHash == "long enough password" {
		t.Fatal("password stored in plain text")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long enough password",
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register: %v", err)
	}

	input.Email = "other@example.com"
	_, err := svc.Register(ctx, input)
	requireCode(t, err, apperrors.CodeConflict)
	if apperrors.As(err).Message() != "username already exists" {
		t.Fatalf("unexpected message: %s", apperrors.As(err).Message())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long enough password",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "long enough password",
	})
	requireCode(t, err, apperrors.CodeConflict)
	if apperrors.As(err).Message() != "email already registered" {
		t.Fatalf("unexpected message: %s", apperrors.As(err).Message())
	}
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	stored := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: mustHashPassword(t, "right password"),
	}
	if err := repo.Create(ctx, stored); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	user, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "right password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != stored.ID {
		t.Fatal("wrong user returned")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{
		Username:     "alice",
		PasswordHash: mustHashPassword(t, "right password"),
	}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	// Unknown user and wrong password are indistinguishable to the caller.
	_, err := svc.Login(ctx, LoginInput{Username: "nobody", Password: "whatever"})
	requireCode(t, err, apperrors.CodeUnauthorized)
	if apperrors.As(err).Message() != "invalid credentials" {
		t.Fatalf("unexpected message: %s", apperrors.As(err).Message())
	}

	_, err = svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong password"})
	requireCode(t, err, apperrors.CodeUnauthorized)
	if apperrors.As(err).Message() != "invalid credentials" {
		t.Fatalf("unexpected message: %s", apperrors.As(err).Message())
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	stored := &models.User{
		Username: "alice",
		FullName: "Alice",
		Bio:      "original bio",
	}
	if err := repo.Create(ctx, stored); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	bio := "updated bio"
	updated, err := svc.UpdateProfile(ctx, stored.ID.String(), UpdateProfileInput{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Bio != "updated bio" {
		t.Fatalf("bio = %q", updated.Bio)
	}
	if updated.FullName != "Alice" {
		t.Fatalf("full name should be untouched, got %q", updated.FullName)
	}
}

func TestGetProfileInvalidID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetProfile(context.Background(), "not-a-uuid")
	requireCode(t, err, apperrors.CodeValidation)

	_, err = svc.GetProfile(context.Background(), uuid.NewString())
	requireCode(t, err, apperrors.CodeNotFound)
}
