package menu

import (
	"context"

	"manomangal/internal/domain"
	"manomangal/internal/repository"
)

// CategoryAll returns the unfiltered catalog.
const CategoryAll = "All"

type MenuUseCase interface {
	List(ctx context.Context, category string) ([]domain.MenuItem, error)
}

type Cache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
}

type MenuService struct {
	repo  repository.MenuRepository
	cache Cache
}

func NewMenuService(repo repository.MenuRepository, cache Cache) *MenuService {
	return &MenuService{repo: repo, cache: cache}
}

// List returns active menu items, falling back to the bundled sample set
// while the menu_items table is empty. Empty results are never cached so
// the fallback switches off as soon as real rows are seeded.
func (s *MenuService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetMenu(ctx); err == nil && len(cached) > 0 {
			return filterByCategory(cached, category), nil
		}
	}

	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return filterByCategory(sampleMenu(), category), nil
	}
	if s.cache != nil {
		_ = s.cache.SetMenu(ctx, items)
	}
	return filterByCategory(items, category), nil
}

func filterByCategory(items []domain.MenuItem, category string) []domain.MenuItem {
	if category == "" || category == CategoryAll {
		return items
	}
	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// sampleMenu is the catalog shown before any menu items are seeded.
func sampleMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Category: "Starter", Price: 250, IsVeg: true, IsActive: true},
		{ID: 2, Name: "Chicken Tikka", Description: "Marinated grilled chicken", Category: "Starter", Price: 280, IsVeg: false, IsActive: true},
		{ID: 3, Name: "Veg Manchurian", Description: "Indo-Chinese vegetable balls", Category: "Starter", Price: 220, IsVeg: true, IsActive: true},
		{ID: 4, Name: "Dal Makhani", Description: "Creamy black lentils", Category: "Main Course", Price: 200, IsVeg: true, IsActive: true},
		{ID: 5, Name: "Butter Chicken", Description: "Tender chicken in rich tomato gravy", Category: "Main Course", Price: 350, IsVeg: false, IsActive: true},
		{ID: 6, Name: "Paneer Butter Masala", Description: "Cottage cheese in creamy gravy", Category: "Main Course", Price: 280, IsVeg: true, IsActive: true},
		{ID: 7, Name: "Biryani", Description: "Fragrant rice with spices", Category: "Main Course", Price: 300, IsVeg: true, IsActive: true},
		{ID: 8, Name: "Naan", Description: "Traditional Indian bread", Category: "Main Course", Price: 50, IsVeg: true, IsActive: true},
		{ID: 9, Name: "Gulab Jamun", Description: "Sweet fried dumplings in syrup", Category: "Dessert", Price: 100, IsVeg: true, IsActive: true},
		{ID: 10, Name: "Ice Cream", Description: "Assorted flavors", Category: "Dessert", Price: 80, IsVeg: true, IsActive: true},
		{ID: 11, Name: "Soft Drinks", Description: "Chilled beverages", Category: "Beverages", Price: 50, IsVeg: true, IsActive: true},
		{ID: 12, Name: "Fresh Juice", Description: "Seasonal fruit juice", Category: "Beverages", Price: 80, IsVeg: true, IsActive: true},
	}
}

var _ MenuUseCase = (*MenuService)(nil)
