package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rl1809/stockfile/internal/core/domain"
	"github.com/rl1809/stockfile/internal/port"
)

// Mock StockRepository
type mockStockRepo struct {
	saved   *domain.Store
	loadErr error
	saveErr error
	saves   int
}

func (m *mockStockRepo) Load(ctx context.Context) (*domain.Store, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.saved == nil {
		return domain.NewStore(), nil
	}
	return m.saved.Clone(), nil
}

func (m *mockStockRepo) Save(ctx context.Context, store *domain.Store) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.saved = store.Clone()
	return nil
}

// Mock Notifier
type mockNotifier struct {
	got []domain.Diagnostic
}

func (m *mockNotifier) Notify(d domain.Diagnostic) {
	m.got = append(m.got, d)
}

func newTestService(repo port.StockRepository) (*InventoryService, *mockNotifier) {
	n := &mockNotifier{}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	log := domain.NewActivityLog(func() string { return "fixed-id" }, func() time.Time { return at })
	return NewInventoryService(repo, n, log), n
}

func TestInventoryService_DemoScenario(t *testing.T) {
	repo := &mockStockRepo{}
	svc, n := newTestService(repo)
	ctx := context.Background()

	store := domain.NewStore()
	store = svc.Add(store, "apple", 10).Store
	store = svc.Add(store, "banana", 2).Store
	store = svc.Add(store, "pear", 5).Store
	store = svc.Remove(store, "apple", 3).Store
	store = svc.Remove(store, "orange", 1).Store

	if got := svc.Quantity(store, "apple"); got != 7 {
		t.Errorf("expected apple 7, got %d", got)
	}
	low := svc.LowItems(store, DefaultLowThreshold)
	if len(low) != 1 || low[0] != "banana" {
		t.Errorf("expected [banana], got %v", low)
	}

	if d := svc.Save(ctx, store); d != nil {
		t.Fatalf("unexpected save diagnostic: %v", d)
	}
	res := svc.Load(ctx)
	if !res.OK() {
		t.Fatalf("unexpected load diagnostic: %v", res.Diagnostic)
	}
	if !res.Store.Equal(store) {
		t.Errorf("expected reloaded store to match, got %v", res.Store.Items())
	}

	if len(n.got) != 1 || n.got[0].Message != "Item 'orange' not found!" {
		t.Errorf("expected single not-found diagnostic, got %+v", n.got)
	}
	lines := svc.Log().Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(lines))
	}
	if lines[0] != "2026-01-02 03:04:05: Added 10 of apple" {
		t.Errorf("unexpected log line: %s", lines[0])
	}
}

func TestInventoryService_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"missing", fmt.Errorf("%w: inventory.json", port.ErrStoreNotFound), "Inventory file not found. Starting with empty data."},
		{"malformed", fmt.Errorf("%w: bad token", port.ErrMalformedStore), "Error decoding JSON. Returning empty inventory."},
		{"other", errors.New("permission denied"), "Error loading data: permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, n := newTestService(&mockStockRepo{loadErr: tt.err})

			res := svc.Load(context.Background())
			if res.Store == nil || res.Store.Len() != 0 {
				t.Errorf("expected empty store, got %v", res.Store)
			}
			if res.OK() {
				t.Fatal("expected diagnostic")
			}
			if res.Diagnostic.Message != tt.message {
				t.Errorf("expected %q, got %q", tt.message, res.Diagnostic.Message)
			}
			if res.Diagnostic.Kind != domain.DiagnosticIO {
				t.Errorf("expected io kind, got %s", res.Diagnostic.Kind)
			}
			if !errors.Is(res.Diagnostic, tt.err) {
				t.Error("expected diagnostic to wrap repository error")
			}
			if len(n.got) != 1 {
				t.Errorf("expected 1 notification, got %d", len(n.got))
			}
		})
	}
}

func TestInventoryService_SaveFailureIsSwallowed(t *testing.T) {
	svc, n := newTestService(&mockStockRepo{saveErr: errors.New("disk full")})

	d := svc.Save(context.Background(), domain.NewStoreFrom(domain.Stock{Item: "apple", Quantity: 1}))
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.Message != "Error saving data: disk full" {
		t.Errorf("unexpected message: %s", d.Message)
	}
	if len(n.got) != 1 {
		t.Errorf("expected 1 notification, got %d", len(n.got))
	}
}

func TestInventoryService_ParseQuantityNotifies(t *testing.T) {
	svc, n := newTestService(&mockStockRepo{})

	if _, ok := svc.ParseQuantity("ten"); ok {
		t.Error("expected parse failure")
	}
	if q, ok := svc.ParseQuantity("10"); !ok || q != 10 {
		t.Errorf("expected 10, got %d %v", q, ok)
	}
	if len(n.got) != 1 || n.got[0].Message != "Invalid quantity type." {
		t.Errorf("unexpected notifications: %+v", n.got)
	}
}

func TestInventoryService_NilNotifierAndLog(t *testing.T) {
	svc := NewInventoryService(&mockStockRepo{}, nil, nil)
	if _, ok := svc.notifier.(port.Discard); !ok {
		t.Errorf("expected nil notifier to default to port.Discard, got %T", svc.notifier)
	}

	res := svc.Remove(domain.NewStore(), "ghost", 1)
	if res.OK() {
		t.Error("expected diagnostic even without notifier")
	}
	svc.Add(res.Store, "apple", 1)
	if svc.Log().Len() != 1 {
		t.Errorf("expected fresh log with 1 entry, got %d", svc.Log().Len())
	}
}
