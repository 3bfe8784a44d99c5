package services_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/7pessoal-source/menu-noir-premium/internal/models"
	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
	"github.com/7pessoal-source/menu-noir-premium/internal/services"
)

func newCategoryFixture() (*services.CategoryService, *repositories.MockCategoryRepository, *repositories.MockProductRepository) {
	categoryRepo := repositories.NewMockCategoryRepository()
	productRepo := repositories.NewMockProductRepository()
	return services.NewCategoryService(categoryRepo, productRepo), categoryRepo, productRepo
}

func TestCategoryService_ListOrdersByDisplayOrder(t *testing.T) {
	service, _, _ := newCategoryFixture()

	_, err := service.Create("rest-1", "Sobremesas", 2, true)
	assert.NoError(t, err)
	_, err = service.Create("rest-1", "Lanches", 0, true)
	assert.NoError(t, err)
	_, err = service.Create("rest-1", "Bebidas", 1, false)
	assert.NoError(t, err)
	_, err = service.Create("rest-2", "Pizzas", 0, true)
	assert.NoError(t, err)

	categories, err := service.List("rest-1")
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "Lanches", categories[0].Name)
	assert.Equal(t, "Bebidas", categories[1].Name)
	assert.Equal(t, "Sobremesas", categories[2].Name)
}

func TestCategoryService_PartialUpdate(t *testing.T) {
	service, _, _ := newCategoryFixture()

	category, err := service.Create("rest-1", "Lanches", 3, true)
	assert.NoError(t, err)

	name := "Hambúrgueres"
	updated, err := service.Update("rest-1", category.ID, models.CategoryPatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Hambúrgueres", updated.Name)
	// Fields absent from the patch keep their stored values.
	assert.Equal(t, 3, updated.Order)
	assert.True(t, updated.Active)
}

func TestCategoryService_CrossTenantUpdateLooksAbsent(t *testing.T) {
	service, _, _ := newCategoryFixture()

	category, err := service.Create("rest-1", "Lanches", 0, true)
	assert.NoError(t, err)

	name := "Hijacked"
	_, err = service.Update("rest-2", category.ID, models.CategoryPatch{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = service.Delete("rest-2", category.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// The owner still sees the category untouched.
	kept, err := service.Update("rest-1", category.ID, models.CategoryPatch{})
	assert.NoError(t, err)
	assert.Equal(t, "Lanches", kept.Name)
}

func TestCategoryService_DeleteBlockedWhileInUse(t *testing.T) {
	service, _, productRepo := newCategoryFixture()

	category, err := service.Create("rest-1", "Lanches", 0, true)
	assert.NoError(t, err)

	product := &models.Product{RestaurantID: "rest-1", CategoryID: category.ID, Name: "X-Burger", Price: 25.9, Active: true}
	assert.NoError(t, productRepo.Create(product))

	err = service.Delete("rest-1", category.ID)
	assert.ErrorIs(t, err, services.ErrCategoryInUse)

	// After the product is gone the category can be deleted.
	assert.NoError(t, productRepo.Delete("rest-1", product.ID))
	assert.NoError(t, service.Delete("rest-1", category.ID))
	err = service.Delete("rest-1", category.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCategoryService_ConcurrentDeleteWinsOnce(t *testing.T) {
	service, _, _ := newCategoryFixture()

	category, err := service.Create("rest-1", "Lanches", 0, true)
	assert.NoError(t, err)

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = service.Delete("rest-1", category.ID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, services.ErrNotFound)
		}
	}
	assert.Equal(t, 1, wins)
}
