package food

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func (s *Service) List(ctx context.Context) ([]*Food, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Food, error) {
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Create food with its recipe links
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	food *Food,
	links []LinkInput,
) (*Food, error) {

	if food.Name == "" {
		return nil, errors.New("missing required fields")
	}
	if food.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	for _, l := range links {
		if l.IngredientID <= 0 || l.Quantity <= 0 || l.Unit == "" {
			return nil, errors.New("invalid ingredient link")
		}
	}

	if err := s.repo.Create(ctx, food, links); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, food.ID)
}

// --------------------------------------------------
// Upload food image to object storage
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	id int64,
	file multipart.File,
	header *multipart.FileHeader,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("foods/%d/%s%s", id, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateImage(ctx, id, url); err != nil {
		return "", err
	}

	return url, nil
}
