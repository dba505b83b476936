package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db"
	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type SubscribeInput struct {
	Email       string   `json:"email" validate:"required,email,max=254"`
	Name        string   `json:"name" validate:"max=200"`
	Preferences []string `json:"preferences" validate:"max=20,dive,max=50"`
}

type Service interface {
	Subscribe(ctx context.Context, input SubscribeInput) (*models.NewsletterSubscriber, error)
	PreferencesByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error)
	List(ctx context.Context) ([]models.NewsletterSubscriber, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("newsletter repository is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, log: log}, nil
}

func (s *service) Subscribe(ctx context.Context, input SubscribeInput) (*models.NewsletterSubscriber, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.New(apperrors.CodeConflict, "email already subscribed")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "checking subscription")
	}

	subscriber := &models.NewsletterSubscriber{
		Email:       input.Email,
		Name:        input.Name,
		Preferences: pq.StringArray(input.Preferences),
	}

	if err := s.repo.Create(ctx, subscriber); err != nil {
		if db.IsUniqueViolation(err, "newsletter_subscribers_email_key") {
			return nil, apperrors.New(apperrors.CodeConflict, "email already subscribed")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating subscription")
	}

	s.log.Info(s.log.WithField(ctx, "subscriber_id", subscriber.ID.String()), "newsletter subscription created")
	return subscriber, nil
}

func (s *service) PreferencesByEmail(ctx context.Context, email string) (*models.NewsletterSubscriber, error) {
	subscriber, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "subscription not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading subscription")
	}
	return subscriber, nil
}

func (s *service) List(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	subscribers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing subscribers")
	}
	return subscribers, nil
}
