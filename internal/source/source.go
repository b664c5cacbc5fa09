package source

import (
	"context"
	"database/sql"
	"fmt"

	"chatrender/internal/config"
	"chatrender/internal/model"
)

// Provider supplies the ordered list of messages to render
type Provider interface {
	Messages(ctx context.Context) ([]model.Message, error)
}

// New returns the provider selected by cfg.MessageSource.
// db may be nil unless MySQL is selected.
func New(cfg config.Config, db *sql.DB) (Provider, error) {
	switch cfg.MessageSource {
	case config.SourceMySQL:
		if db == nil {
			return nil, fmt.Errorf("mysql message source requires a database connection")
		}
		return &MySQL{DB: db}, nil
	case config.SourceMock, "":
		return Mock{}, nil
	default:
		return nil, fmt.Errorf("unknown message source: %q", cfg.MessageSource)
	}
}
