package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/rl1809/stockfile/internal/core/domain"
)

const reportHeader = "Items Report:"

func FormatReport(store *domain.Store) string {
	var b strings.Builder
	b.WriteString(reportHeader)
	b.WriteByte('\n')
	for _, st := range store.Items() {
		fmt.Fprintf(&b, "%s -> %d\n", st.Item, st.Quantity)
	}
	return b.String()
}

// PrintData writes the report of every item to w.
func PrintData(w io.Writer, store *domain.Store) error {
	_, err := io.WriteString(w, FormatReport(store))
	return err
}
