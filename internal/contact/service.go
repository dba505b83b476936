package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type SubmitInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*models.ContactMessage, error)
	Get(ctx context.Context, messageID string) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, log: log}, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating contact message")
	}

	s.log.Info(s.log.WithField(ctx, "message_id", message.ID.String()), "contact message received")
	return message, nil
}

func (s *service) Get(ctx context.Context, messageID string) (*models.ContactMessage, error) {
	id, err := uuid.Parse(messageID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid message id")
	}

	message, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "message not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading contact message")
	}

	return message, nil
}

func (s *service) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing contact messages")
	}
	return messages, nil
}
