package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rl1809/stockfile/internal/core/domain"
	"github.com/rl1809/stockfile/internal/port"
)

type InventoryService struct {
	repo     port.StockRepository
	notifier port.Notifier
	log      *domain.ActivityLog
}

// NewInventoryService wires a repository and a diagnostic sink. A nil log
// gets a fresh one; a nil notifier drops diagnostics.
func NewInventoryService(repo port.StockRepository, notifier port.Notifier, log *domain.ActivityLog) *InventoryService {
	if log == nil {
		log = domain.NewActivityLog(nil, nil)
	}
	if notifier == nil {
		notifier = port.Discard{}
	}
	return &InventoryService{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

func (s *InventoryService) Log() *domain.ActivityLog {
	return s.log
}

func (s *InventoryService) Add(store *domain.Store, item string, quantity int) Result {
	res := AddItem(store, s.log, item, quantity)
	s.notify(res.Diagnostic)
	return res
}

func (s *InventoryService) Remove(store *domain.Store, item string, quantity int) Result {
	res := RemoveItem(store, item, quantity)
	s.notify(res.Diagnostic)
	return res
}

// ParseQuantity converts textual input, notifying when it is not an
// integer.
func (s *InventoryService) ParseQuantity(raw string) (int, bool) {
	q, d := ParseQuantity(raw)
	s.notify(d)
	return q, d == nil
}

func (s *InventoryService) Quantity(store *domain.Store, item string) int {
	return GetQuantity(store, item)
}

func (s *InventoryService) LowItems(store *domain.Store, threshold int) []string {
	return CheckLowItems(store, threshold)
}

func (s *InventoryService) Report(w io.Writer, store *domain.Store) error {
	return PrintData(w, store)
}

// Load returns the persisted store. Any failure is reported as a
// diagnostic and yields an empty store.
func (s *InventoryService) Load(ctx context.Context) Result {
	store, err := s.repo.Load(ctx)
	if err == nil {
		if store == nil {
			store = domain.NewStore()
		}
		return Result{Store: store}
	}

	var d *domain.Diagnostic
	switch {
	case errors.Is(err, port.ErrStoreNotFound):
		d = domain.NewDiagnostic(domain.DiagnosticIO, "Inventory file not found. Starting with empty data.", err)
	case errors.Is(err, port.ErrMalformedStore):
		d = domain.NewDiagnostic(domain.DiagnosticIO, "Error decoding JSON. Returning empty inventory.", err)
	default:
		d = domain.NewDiagnostic(domain.DiagnosticIO, fmt.Sprintf("Error loading data: %v", err), err)
	}
	s.notify(d)
	return Result{Store: domain.NewStore(), Diagnostic: d}
}

// Save persists store. A failure is reported and returned as a
// diagnostic, never as an error.
func (s *InventoryService) Save(ctx context.Context, store *domain.Store) *domain.Diagnostic {
	if store == nil {
		store = domain.NewStore()
	}
	if err := s.repo.Save(ctx, store); err != nil {
		d := domain.NewDiagnostic(domain.DiagnosticIO, fmt.Sprintf("Error saving data: %v", err), err)
		s.notify(d)
		return d
	}
	return nil
}

func (s *InventoryService) notify(d *domain.Diagnostic) {
	if d == nil {
		return
	}
	s.notifier.Notify(*d)
}
