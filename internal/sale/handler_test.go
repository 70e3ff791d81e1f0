package sale

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeRepository struct {
	sales []*Sale
}

func (f *fakeRepository) Create(_ context.Context, sale *Sale) error {
	sale.ID = int64(len(f.sales) + 1)
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeRepository) ListSince(_ context.Context, since time.Time) ([]*Sale, error) {
	var out []*Sale
	for _, s := range f.sales {
		if !s.SoldAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func setupSalesRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewService(repo))

	router := gin.New()
	router.GET("/sales/recent", handler.Recent)
	return router
}

func TestRecent_DefaultWindow(t *testing.T) {
	repo := &fakeRepository{}
	repo.sales = append(repo.sales, &Sale{ID: 1, FoodID: 1, Quantity: 2, SoldAt: time.Now()})
	router := setupSalesRouter(repo)

	req := httptest.NewRequest("GET", "/sales/recent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRecent_RejectsNonNumericDays(t *testing.T) {
	router := setupSalesRouter(&fakeRepository{})

	req := httptest.NewRequest("GET", "/sales/recent?days=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRecent_EmptyWindowReturnsEmptyArray(t *testing.T) {
	router := setupSalesRouter(&fakeRepository{})

	req := httptest.NewRequest("GET", "/sales/recent?days=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}
