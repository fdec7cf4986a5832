// Package store persists the singleton page documents. Each kind is stored
// as a single JSON body; callers own the Go types.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pmafa/internal/content"
)

// ErrNotConfigured is returned when no backing database was supplied.
var ErrNotConfigured = errors.New("document store not configured")

// DocumentStore reads and writes one document per kind.
type DocumentStore interface {
	// Load decodes the stored document into dst and reports whether it existed.
	Load(ctx context.Context, kind content.Kind, dst any) (bool, error)
	// InsertIfAbsent stores doc unless a document of that kind already exists.
	InsertIfAbsent(ctx context.Context, kind content.Kind, doc any) error
	// Save creates or replaces the document.
	Save(ctx context.Context, kind content.Kind, doc any) error
	Delete(ctx context.Context, kind content.Kind) error
	Close(ctx context.Context) error
}

// Options selects the backend.
type Options struct {
	MongoURI      string
	MongoDatabase string
}

// Open returns a MongoStore when a URI is configured, otherwise a SQLStore on gdb.
func Open(ctx context.Context, opts Options, gdb *gorm.DB, logger *zap.Logger) (DocumentStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if uri := strings.TrimSpace(opts.MongoURI); uri != "" {
		s, err := NewMongoStore(ctx, uri, opts.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("open mongo document store: %w", err)
		}
		logger.Info("page documents stored in mongodb", zap.String("database", s.database))
		return s, nil
	}
	if gdb == nil {
		return nil, ErrNotConfigured
	}
	logger.Info("page documents stored in sqlite")
	return NewSQLStore(gdb), nil
}
