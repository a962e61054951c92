package listview

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/catalogtools/catalog-admin/internal/api"
	"github.com/catalogtools/catalog-admin/internal/models"
	"github.com/catalogtools/catalog-admin/pkg/logger"
)

type pageCall struct {
	pageNumber int
	pageSize   int
}

// fakeCatalog implements the controller collaborator interfaces with
// canned data, error injection, and call recording
type fakeCatalog struct {
	categories    []models.Category
	products      []models.Product
	categoriesErr error
	productsErr   error
	deleteErr     error

	pageCalls     []pageCall
	categoryCalls int
	deleted       []string
}

func (f *fakeCatalog) ListCategories(_ context.Context) ([]models.Category, error) {
	f.categoryCalls++
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context, pageNumber, pageSize int) (*models.Page[models.Product], error) {
	f.pageCalls = append(f.pageCalls, pageCall{pageNumber, pageSize})
	if f.productsErr != nil {
		return nil, f.productsErr
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(f.products) {
		start = len(f.products)
	}
	if end > len(f.products) {
		end = len(f.products)
	}

	return &models.Page[models.Product]{
		Items:      f.products[start:end],
		TotalCount: len(f.products),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	}, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

// recordingNotifier captures outcome messages for assertions
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func seededCatalog() *fakeCatalog {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeCatalog{
		categories: []models.Category{
			{ID: "c1", Name: "Tools", CreatedAt: created},
			{ID: "c2", Name: "Gadgets", CreatedAt: created},
		},
		products: []models.Product{
			{ID: "p1", Name: "Widget", CategoryID: "c1", Price: 9.99, CreatedAt: created},
			{ID: "p2", Name: "Anvil", CategoryID: "c1", Price: 49.99, CreatedAt: created},
			{ID: "p3", Name: "Gizmo", CategoryID: "missing", Price: 5.00, CreatedAt: created},
		},
	}
}

func TestProductListController_Load(t *testing.T) {
	catalog := seededCatalog()
	notifier := &recordingNotifier{}
	ctrl := NewProductListController(catalog, catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if ctrl.Loading() {
		t.Error("loading flag still set after Load")
	}
	if ctrl.TotalCount() != 3 {
		t.Errorf("expected total count 3, got %d", ctrl.TotalCount())
	}

	rows := ctrl.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Category names resolved, with fallback for the dangling reference
	byID := map[string]Row{}
	for _, row := range rows {
		byID[row.ID] = row
	}
	if byID["p1"].CategoryName != "Tools" {
		t.Errorf("expected Tools, got %s", byID["p1"].CategoryName)
	}
	if byID["p3"].CategoryName != UnknownCategory {
		t.Errorf("expected %s, got %s", UnknownCategory, byID["p3"].CategoryName)
	}
}

func TestProductListController_AuxiliaryFailureBlocksRender(t *testing.T) {
	catalog := seededCatalog()
	catalog.categoriesErr = errors.New("category service down")
	notifier := &recordingNotifier{}
	ctrl := NewProductListController(catalog, catalog, catalog, notifier, logger.New("error"))

	err := ctrl.Load(context.Background())

	if err == nil {
		t.Fatal("expected combined load to fail when the category fetch fails")
	}
	if ctrl.Loading() {
		t.Error("loading flag still set after failed Load")
	}
	// Page fetch may have succeeded, but no partial state may be applied
	if len(ctrl.Rows()) != 0 {
		t.Error("partial page data was rendered despite auxiliary failure")
	}
	if ctrl.TotalCount() != 0 {
		t.Error("pagination metadata applied despite auxiliary failure")
	}
	if len(notifier.errors) != 1 {
		t.Errorf("expected 1 error notification, got %d", len(notifier.errors))
	}
}

func TestProductListController_PageFailureKeepsPreviousState(t *testing.T) {
	catalog := seededCatalog()
	notifier := &recordingNotifier{}
	ctrl := NewProductListController(catalog, catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	catalog.productsErr = errors.New("boom")
	if err := ctrl.Load(context.Background()); err == nil {
		t.Fatal("expected second load to fail")
	}

	// Previously displayed rows survive the failed refresh
	if len(ctrl.Rows()) != 3 {
		t.Errorf("expected previous 3 rows to remain, got %d", len(ctrl.Rows()))
	}
}

func TestProductListController_SetPageRefetches(t *testing.T) {
	catalog := seededCatalog()
	ctrl := NewProductListController(catalog, catalog, catalog, NopNotifier{}, logger.New("error"))

	if err := ctrl.SetPage(context.Background(), 2, 2); err != nil {
		t.Fatalf("SetPage() unexpected error: %v", err)
	}

	if len(catalog.pageCalls) != 1 {
		t.Fatalf("expected 1 page fetch, got %d", len(catalog.pageCalls))
	}
	call := catalog.pageCalls[0]
	if call.pageNumber != 2 || call.pageSize != 2 {
		t.Errorf("expected fetch of page 2 size 2, got page %d size %d", call.pageNumber, call.pageSize)
	}

	if len(ctrl.Rows()) != 1 {
		t.Errorf("expected 1 row on the last page, got %d", len(ctrl.Rows()))
	}
	if ctrl.TotalPages() != 2 {
		t.Errorf("expected 2 total pages, got %d", ctrl.TotalPages())
	}
}

func TestProductListController_DeleteSuccessRefetchesOnce(t *testing.T) {
	catalog := seededCatalog()
	notifier := &recordingNotifier{}
	ctrl := NewProductListController(catalog, catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.SetPage(context.Background(), 2, 2); err != nil {
		t.Fatalf("SetPage() unexpected error: %v", err)
	}
	callsBefore := len(catalog.pageCalls)

	rows := ctrl.Rows()
	ctrl.RequestDelete(rows[0])

	if outcome := ctrl.ConfirmDelete(context.Background()); outcome != OutcomeSuccess {
		t.Fatalf("expected OutcomeSuccess, got %v", outcome)
	}

	if len(catalog.deleted) != 1 || catalog.deleted[0] != rows[0].ID {
		t.Errorf("expected delete of %s, got %v", rows[0].ID, catalog.deleted)
	}

	// Exactly one re-fetch, with unchanged pageNumber/pageSize
	refetches := catalog.pageCalls[callsBefore:]
	if len(refetches) != 1 {
		t.Fatalf("expected exactly 1 re-fetch, got %d", len(refetches))
	}
	if refetches[0].pageNumber != 2 || refetches[0].pageSize != 2 {
		t.Errorf("re-fetch changed pagination: page %d size %d", refetches[0].pageNumber, refetches[0].pageSize)
	}

	if len(notifier.successes) != 1 {
		t.Errorf("expected 1 success notification, got %d", len(notifier.successes))
	}
}

func TestProductListController_DeleteCancelled(t *testing.T) {
	catalog := seededCatalog()
	ctrl := NewProductListController(catalog, catalog, catalog, NopNotifier{}, logger.New("error"))

	ctrl.RequestDelete(Row{ID: "p1", Name: "Widget"})
	if _, pending := ctrl.PendingDelete(); !pending {
		t.Fatal("expected a pending delete after RequestDelete")
	}

	ctrl.CancelDelete()
	if _, pending := ctrl.PendingDelete(); pending {
		t.Error("delete still pending after cancel")
	}

	if outcome := ctrl.ConfirmDelete(context.Background()); outcome != OutcomeNone {
		t.Errorf("expected OutcomeNone after cancel, got %v", outcome)
	}
	if len(catalog.deleted) != 0 {
		t.Errorf("cancelled delete reached the service: %v", catalog.deleted)
	}
}

func TestProductListController_DeleteFailureLeavesRows(t *testing.T) {
	catalog := seededCatalog()
	notifier := &recordingNotifier{}
	ctrl := NewProductListController(catalog, catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	callsBefore := len(catalog.pageCalls)

	catalog.deleteErr = errors.New("boom")
	ctrl.RequestDelete(Row{ID: "p1", Name: "Widget"})

	if outcome := ctrl.ConfirmDelete(context.Background()); outcome != OutcomeError {
		t.Fatalf("expected OutcomeError, got %v", outcome)
	}

	if len(ctrl.Rows()) != 3 {
		t.Errorf("rows changed after failed delete: %d", len(ctrl.Rows()))
	}
	if len(catalog.pageCalls) != callsBefore {
		t.Error("failed delete triggered a re-fetch")
	}
	if len(notifier.errors) != 1 {
		t.Errorf("expected 1 error notification, got %d", len(notifier.errors))
	}
}

func TestCategoryListController_DeleteReferentialIntegrity(t *testing.T) {
	catalog := seededCatalog()
	catalog.deleteErr = fmt.Errorf("delete rejected: %w", api.ErrReferentialIntegrity)
	notifier := &recordingNotifier{}
	ctrl := NewCategoryListController(catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	ctrl.RequestDelete(Row{ID: "c1", Name: "Tools"})
	outcome := ctrl.ConfirmDelete(context.Background())

	if outcome != OutcomeReferentialIntegrity {
		t.Fatalf("expected OutcomeReferentialIntegrity, got %v", outcome)
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("expected 1 error notification, got %d", len(notifier.errors))
	}
	// The linked-records case must not reuse the generic failure wording
	if notifier.errors[0] != "Cannot delete category: products are still linked to it" {
		t.Errorf("expected the specific linked-records message, got %q", notifier.errors[0])
	}
}

func TestCategoryListController_LoadAndFilter(t *testing.T) {
	catalog := seededCatalog()
	ctrl := NewCategoryListController(catalog, catalog, NopNotifier{}, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if ctrl.TotalCount() != 2 {
		t.Errorf("expected 2 categories, got %d", ctrl.TotalCount())
	}

	ctrl.SetFilter("gad")
	rows := ctrl.Rows()
	if len(rows) != 1 || rows[0].Name != "Gadgets" {
		t.Errorf("expected only Gadgets, got %+v", rows)
	}
}

func TestCategoryListController_DeleteSuccessReloads(t *testing.T) {
	catalog := seededCatalog()
	notifier := &recordingNotifier{}
	ctrl := NewCategoryListController(catalog, catalog, notifier, logger.New("error"))

	if err := ctrl.Load(context.Background()); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	callsBefore := catalog.categoryCalls

	ctrl.RequestDelete(Row{ID: "c2", Name: "Gadgets"})
	if outcome := ctrl.ConfirmDelete(context.Background()); outcome != OutcomeSuccess {
		t.Fatalf("expected OutcomeSuccess, got %v", outcome)
	}

	if catalog.categoryCalls != callsBefore+1 {
		t.Errorf("expected exactly 1 reload, got %d", catalog.categoryCalls-callsBefore)
	}
	if len(notifier.successes) != 1 {
		t.Errorf("expected 1 success notification, got %d", len(notifier.successes))
	}
}
