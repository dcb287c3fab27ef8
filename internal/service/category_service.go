package service

import (
	"context"

	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// CategoryService exposes the categories lookup list.
type CategoryService interface {
	ListCategories(ctx context.Context, categoryType string) ([]model.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context, categoryType string) ([]model.Category, error) {
	return s.repo.ListCategories(ctx, categoryType)
}
