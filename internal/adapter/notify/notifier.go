package notify

import (
	charmLog "github.com/charmbracelet/log"

	"github.com/rl1809/stockfile/internal/core/domain"
)

// LogNotifier writes diagnostics as warnings through a charm logger.
type LogNotifier struct {
	logger *charmLog.Logger
}

func NewLogNotifier(logger *charmLog.Logger) *LogNotifier {
	if logger == nil {
		logger = charmLog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(d domain.Diagnostic) {
	if d.Err != nil {
		n.logger.Warn(d.Message, "kind", d.Kind, "err", d.Err)
		return
	}
	n.logger.Warn(d.Message, "kind", d.Kind)
}
