package newsletter

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type stubRepo struct {
	byEmail map[string]*models.NewsletterSubscriber
}

func newStubRepo() *stubRepo {
	return &stubRepo{byEmail: map[string]*models.NewsletterSubscriber{}}
}

func (r *stubRepo) WithTx(tx *gorm.DB) Repository { return r }

func (r *stubRepo) Create(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	if subscriber.ID == uuid.Nil {
		subscriber.ID = uuid.New()
	}
	r.byEmail[subscriber.Email] = subscriber
	return nil
}

func (r *stubRepo) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	if subscriber, ok := r.byEmail[email]; ok {
		return subscriber, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) List(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var out []models.NewsletterSubscriber
	for _, subscriber := range r.byEmail {
		out = append(out, *subscriber)
	}
	return out, nil
}

func newTestService(t *testing.T) (Service, *stubRepo) {
	t.Helper()

	repo := newStubRepo()
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	svc, err := NewService(repo, log)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo
}

func TestSubscribe(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	subscriber, err := svc.Subscribe(ctx, SubscribeInput{
		Email:       "reader@example.com",
		Name:        "Reader",
		Preferences: []string{"deals", "new-arrivals"},
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if subscriber.ID == uuid.Nil {
		t.Fatal("expected subscriber id to be assigned")
	}
	if len(subscriber.Preferences) != 2 {
		t.Fatalf("preferences = %v", subscriber.Preferences)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected 1 stored subscriber, got %d", len(repo.byEmail))
	}
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, SubscribeInput{Email: "reader@example.com"}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	_, err := svc.Subscribe(ctx, SubscribeInput{Email: "reader@example.com"})
	typed := apperrors.As(err)
	if typed == nil || typed.Code() != apperrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	if typed.Message() != "email already subscribed" {
		t.Fatalf("unexpected message: %s", typed.Message())
	}
}

func TestPreferencesByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, SubscribeInput{
		Email:       "reader@example.com",
		Preferences: []string{"deals"},
	}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	subscriber, err := svc.PreferencesByEmail(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("PreferencesByEmail: %v", err)
	}
	if len(subscriber.Preferences) != 1 || subscriber.Preferences[0] != "deals" {
		t.Fatalf("preferences = %v", subscriber.Preferences)
	}

	_, err = svc.PreferencesByEmail(ctx, "nobody@example.com")
	typed := apperrors.As(err)
	if typed == nil || typed.Code() != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
