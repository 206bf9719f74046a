package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rl1809/stockfile/internal/core/domain"
)

const (
	DefaultItem         = "default"
	DefaultQuantity     = 0
	DefaultLowThreshold = 5
)

var (
	ErrInvalidItem         = errors.New("invalid item name")
	ErrInvalidQuantityType = errors.New("invalid quantity type")
	ErrNegativeQuantity    = errors.New("negative quantity")
	ErrNegativeRemoval     = errors.New("negative removal quantity")
	ErrItemNotFound        = errors.New("item not found")
	ErrQuantityOverflow    = errors.New("quantity overflow")
)

// Result carries the store after an operation. A non-nil Diagnostic means
// the operation was a no-op.
type Result struct {
	Store      *domain.Store
	Diagnostic *domain.Diagnostic
}

func (r Result) OK() bool {
	return r.Diagnostic == nil
}

// AddItem increments the quantity of item, creating the entry if needed,
// and records the addition in log when log is non-nil.
func AddItem(store *domain.Store, log *domain.ActivityLog, item string, quantity int) Result {
	if store == nil {
		store = domain.NewStore()
	}

	if !utf8.ValidString(item) {
		return Result{Store: store, Diagnostic: domain.NewDiagnostic(domain.DiagnosticValidation, "Invalid item name.", ErrInvalidItem)}
	}
	if quantity < 0 {
		return Result{Store: store, Diagnostic: domain.NewDiagnostic(domain.DiagnosticValidation, "Quantity cannot be negative.", ErrNegativeQuantity)}
	}

	current, _ := store.Get(item)
	if current > 0 && quantity > math.MaxInt-current {
		return Result{Store: store, Diagnostic: domain.NewDiagnostic(domain.DiagnosticValidation, "Quantity too large.", ErrQuantityOverflow)}
	}
	store.Set(item, current+quantity)
	if log != nil {
		log.RecordAdd(item, quantity)
	}
	return Result{Store: store}
}

// RemoveItem subtracts quantity from item. The entry is deleted once its
// quantity reaches zero or below; removing more than is on hand is not an
// error.
func RemoveItem(store *domain.Store, item string, quantity int) Result {
	if store == nil {
		store = domain.NewStore()
	}

	current, ok := store.Get(item)
	if !ok {
		return Result{Store: store, Diagnostic: domain.NewDiagnostic(domain.DiagnosticNotFound, fmt.Sprintf("Item '%s' not found!", item), ErrItemNotFound)}
	}
	if quantity < 0 {
		return Result{Store: store, Diagnostic: domain.NewDiagnostic(domain.DiagnosticValidation, "Quantity to remove cannot be negative.", ErrNegativeRemoval)}
	}

	// current-quantity below MinInt would wrap positive; the true result is
	// still at or below zero.
	if current < math.MinInt+quantity || current-quantity <= 0 {
		store.Delete(item)
	} else {
		store.Set(item, current-quantity)
	}
	return Result{Store: store}
}

func GetQuantity(store *domain.Store, item string) int {
	q, _ := store.Get(item)
	return q
}

// CheckLowItems returns the items whose quantity is strictly below
// threshold, in store order.
func CheckLowItems(store *domain.Store, threshold int) []string {
	low := []string{}
	for _, st := range store.Items() {
		if st.Quantity < threshold {
			low = append(low, st.Item)
		}
	}
	return low
}

// ParseQuantity converts textual input into a quantity. Sign is checked by
// the operation the quantity is handed to.
func ParseQuantity(raw string) (int, *domain.Diagnostic) {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewDiagnostic(domain.DiagnosticValidation, "Invalid quantity type.", fmt.Errorf("%w: %q", ErrInvalidQuantityType, raw))
	}
	return q, nil
}
