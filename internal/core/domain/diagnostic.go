package domain

type DiagnosticKind string

const (
	DiagnosticValidation DiagnosticKind = "validation"
	DiagnosticNotFound   DiagnosticKind = "not_found"
	DiagnosticIO         DiagnosticKind = "io"
)

// Diagnostic describes a failure that was handled where it was detected.
// The operation that produced it acted as a no-op.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Err     error
}

func NewDiagnostic(kind DiagnosticKind, message string, err error) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: message, Err: err}
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}
