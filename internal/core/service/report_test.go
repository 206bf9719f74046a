package service

import (
	"bytes"
	"testing"

	"github.com/rl1809/stockfile/internal/core/domain"
)

func TestPrintData(t *testing.T) {
	store := domain.NewStoreFrom(domain.Stock{Item: "apple", Quantity: 7}, domain.Stock{Item: "banana", Quantity: 2}, domain.Stock{Item: "pear", Quantity: 5})

	var buf bytes.Buffer
	if err := PrintData(&buf, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Items Report:\napple -> 7\nbanana -> 2\npear -> 5\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	if store.Len() != 3 {
		t.Error("expected store unchanged")
	}
}

func TestFormatReport_Empty(t *testing.T) {
	if got := FormatReport(domain.NewStore()); got != "Items Report:\n" {
		t.Errorf("unexpected report: %q", got)
	}
}
