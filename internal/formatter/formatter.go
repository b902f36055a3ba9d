package formatter

import "github.com/yildizm/TaylorSum/internal/session"

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(report *session.Report) ([]byte, error)
}
