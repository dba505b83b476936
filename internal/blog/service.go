package blog

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

type CreateInput struct {
	Title   string `json:"title" validate:"required,max=300"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author" validate:"max=200"`
	Tags    string `json:"tags" validate:"max=500"`
}

type Service interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, postID string) (*models.BlogPost, error)
	Create(ctx context.Context, input CreateInput) (*models.BlogPost, error)
	SearchByTitle(ctx context.Context, query string) ([]models.BlogPost, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("blog repository is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, log: log}, nil
}

func (s *service) List(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing blog posts")
	}
	return posts, nil
}

func (s *service) Get(ctx context.Context, postID string) (*models.BlogPost, error) {
	id, err := uuid.Parse(postID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid post id")
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "post not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading blog post")
	}

	return post, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.BlogPost, error) {
	post := &models.BlogPost{
		Title:   input.Title,
		Content: input.Content,
		Author:  input.Author,
		Tags:    input.Tags,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating blog post")
	}

	s.log.Info(s.log.WithField(ctx, "post_id", post.ID.String()), "blog post created")
	return post, nil
}

func (s *service) SearchByTitle(ctx context.Context, query string) ([]models.BlogPost, error) {
	if query == "" {
		return []models.BlogPost{}, nil
	}
	posts, err := s.repo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "searching blog posts")
	}
	return posts, nil
}
