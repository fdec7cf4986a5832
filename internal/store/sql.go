package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/db"
)

// SQLStore keeps documents in the page_documents table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(gdb *gorm.DB) *SQLStore {
	return &SQLStore{db: gdb}
}

func (s *SQLStore) Load(ctx context.Context, kind content.Kind, dst any) (bool, error) {
	var row db.PageDocument
	err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(row.Body), dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", kind, err)
	}
	return true, nil
}

func (s *SQLStore) InsertIfAbsent(ctx context.Context, kind content.Kind, doc any) error {
	row, err := newRow(kind, doc)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "kind"}}, DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("insert %s: %w", kind, err)
	}
	return nil
}

func (s *SQLStore) Save(ctx context.Context, kind content.Kind, doc any) error {
	row, err := newRow(kind, doc)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}},
			DoUpdates: clause.Assignments(map[string]any{"body": row.Body, "updated_at": row.UpdatedAt}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, kind content.Kind) error {
	if err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).Delete(&db.PageDocument{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

// Close is a no-op; the gorm connection is shared with the account tables.
func (s *SQLStore) Close(context.Context) error { return nil }

func newRow(kind content.Kind, doc any) (db.PageDocument, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return db.PageDocument{}, fmt.Errorf("encode %s: %w", kind, err)
	}
	now := time.Now().UTC()
	return db.PageDocument{Kind: string(kind), Body: string(body), CreatedAt: now, UpdatedAt: now}, nil
}
