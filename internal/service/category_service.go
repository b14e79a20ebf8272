package service

import (
	"context"
	"strings"

	"github.com/BangKartavya/evently/internal/domain"
	"github.com/BangKartavya/evently/internal/repository"
	"github.com/google/uuid"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// GetAllCategories retrieves every category
func (s *categoryService) GetAllCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, normalize(ctx, "getAllCategories", err)
	}
	return categories, nil
}

// CreateCategory adds a category, returning the existing one when the name
// is already taken
func (s *categoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, normalize(ctx, "createCategory", domain.Validation(map[string]string{
			"name": "Category name is required",
		}))
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, normalize(ctx, "createCategory", err)
	}
	if existing != nil {
		return existing, nil
	}

	category := &domain.Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, normalize(ctx, "createCategory", err)
	}
	return category, nil
}
