package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMenuRepo struct {
	items map[uuid.UUID]*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[uuid.UUID]*entity.MenuItem)}
}

func (r *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeMenuRepo) List(ctx context.Context) ([]entity.MenuItem, error) {
	items := make([]entity.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.items, id)
	return nil
}

func setupMenuRouter(t *testing.T) (*gin.Engine, *service.MenuService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	menuService := service.NewMenuService(newFakeMenuRepo())
	h := NewMenuHandler(menuService)

	router := gin.New()
	router.GET("/menu", h.List)
	router.POST("/add-menu-item", h.Create)
	router.DELETE("/menu/:id", h.Delete)
	return router, menuService
}

func TestAddMenuItem(t *testing.T) {
	router, _ := setupMenuRouter(t)

	w := postJSON(router, "/add-menu-item", `{"name": "Paneer Tikka", "price": 150.50}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
}

func TestAddMenuItemMissingName(t *testing.T) {
	router, _ := setupMenuRouter(t)

	w := postJSON(router, "/add-menu-item", `{"price": 150.50}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMenuPricesInRupees(t *testing.T) {
	router, menuService := setupMenuRouter(t)

	_, err := menuService.CreateItem(context.Background(), &service.CreateItemInput{
		Name:  "Butter Naan",
		Price: 20,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Butter Naan", items[0]["name"])
	assert.Equal(t, 20.0, items[0]["price"])
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	router, _ := setupMenuRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/menu/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Menu item not found"}`, w.Body.String())
}
