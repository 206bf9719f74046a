package port

import "github.com/rl1809/stockfile/internal/core/domain"

type Notifier interface {
	// Notify surfaces a handled failure to the user
	Notify(d domain.Diagnostic)
}

// Discard is a Notifier that drops every diagnostic.
type Discard struct{}

func (Discard) Notify(domain.Diagnostic) {}
