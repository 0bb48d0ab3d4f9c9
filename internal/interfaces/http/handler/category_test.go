package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/spacatalog/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRepo struct {
	byID   map[uuid.UUID]*catalog.Category
	bySlug map[string]*catalog.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:   make(map[uuid.UUID]*catalog.Category),
		bySlug: make(map[string]*catalog.Category),
	}
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	category, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	category, ok := r.bySlug[slug]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Category, error) {
	categories := make([]catalog.Category, 0, len(r.byID))
	for _, category := range r.byID {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, category *catalog.Category) error {
	r.byID[category.ID] = category
	r.bySlug[category.Slug] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	category, ok := r.byID[id]
	if !ok {
		return shared.ErrNotFound
	}
	delete(r.bySlug, category.Slug)
	delete(r.byID, id)
	return nil
}

func setupCategoryRouter(repo *fakeCategoryRepo) *gin.Engine {
	h := NewCategoryHandler(catalogapp.NewCategoryService(repo))

	router := gin.New()
	router.POST("/categories", h.Create)
	router.GET("/categories", h.List)
	router.GET("/categories/:id", h.GetByID)
	router.PUT("/categories/:id/journey-placement", h.SetJourneyPlacement)
	router.PUT("/categories/:id/default-sort", h.SetDefaultSort)
	router.DELETE("/categories/:id", h.Delete)
	return router
}

func seedCategory(t *testing.T, repo *fakeCategoryRepo, name, slug string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name, slug)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), category))
	return category
}

func TestCategoryHandlerCreate(t *testing.T) {
	repo := newFakeCategoryRepo()
	router := setupCategoryRouter(repo)

	body, _ := json.Marshal(catalogapp.CreateCategoryRequest{
		Name: "Facial Treatments",
		Slug: "facial-treatments",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    catalogapp.CategoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Facial Treatments", resp.Data.Name)
	assert.Equal(t, "facial-treatments", resp.Data.Slug)
	assert.NotEqual(t, uuid.Nil, resp.Data.ID)

	stored, err := repo.FindBySlug(context.Background(), "facial-treatments")
	require.NoError(t, err)
	assert.Equal(t, resp.Data.ID, stored.ID)
}

func TestCategoryHandlerCreateDuplicateSlug(t *testing.T) {
	repo := newFakeCategoryRepo()
	seedCategory(t, repo, "Massages", "massages")
	router := setupCategoryRouter(repo)

	body, _ := json.Marshal(catalogapp.CreateCategoryRequest{
		Name: "Massages Again",
		Slug: "massages",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
}

func TestCategoryHandlerCreateMissingFields(t *testing.T) {
	router := setupCategoryRouter(newFakeCategoryRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/categories", bytes.NewReader([]byte(`{"name":"No Slug"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandlerGetByID(t *testing.T) {
	repo := newFakeCategoryRepo()
	category := seedCategory(t, repo, "Body Wraps", "body-wraps")
	router := setupCategoryRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories/"+category.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalogapp.CategoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, category.ID, resp.Data.ID)
	assert.Equal(t, "body-wraps", resp.Data.Slug)
}

func TestCategoryHandlerGetByIDNotFound(t *testing.T) {
	router := setupCategoryRouter(newFakeCategoryRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandlerGetByIDInvalidUUID(t *testing.T) {
	router := setupCategoryRouter(newFakeCategoryRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/categories/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandlerSetJourneyPlacement(t *testing.T) {
	repo := newFakeCategoryRepo()
	category := seedCategory(t, repo, "Rituals", "rituals")
	router := setupCategoryRouter(repo)

	body, _ := json.Marshal(catalogapp.JourneyPlacementRequest{
		IncludeJourneys: true,
		JourneyPosition: "FIRST",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/categories/"+category.ID.String()+"/journey-placement", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalogapp.CategoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IncludeJourneys)
	assert.Equal(t, "FIRST", resp.Data.JourneyPosition)
}

func TestCategoryHandlerSetDefaultSort(t *testing.T) {
	repo := newFakeCategoryRepo()
	category := seedCategory(t, repo, "Hands and Feet", "hands-and-feet")
	router := setupCategoryRouter(repo)

	body, _ := json.Marshal(catalogapp.DefaultSortRequest{DefaultSort: "az"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/categories/"+category.ID.String()+"/default-sort", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data catalogapp.CategoryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "az", resp.Data.DefaultSort)
}

func TestCategoryHandlerDelete(t *testing.T) {
	repo := newFakeCategoryRepo()
	category := seedCategory(t, repo, "Seasonal", "seasonal")
	router := setupCategoryRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/categories/"+category.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err := repo.FindByID(context.Background(), category.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
