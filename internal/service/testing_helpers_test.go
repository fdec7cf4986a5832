package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/db"
	"github.com/pmafa/internal/mail"
	"github.com/pmafa/internal/store"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func newTestPageService(t *testing.T) (*PageService, *countingStore) {
	t.Helper()
	st := &countingStore{DocumentStore: store.NewSQLStore(setupTestDB(t))}
	svc := NewPageService(st, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, st
}

// countingStore 记录写入次数。
type countingStore struct {
	store.DocumentStore
	mu      sync.Mutex
	inserts int
	saves   int
}

func (c *countingStore) InsertIfAbsent(ctx context.Context, kind content.Kind, doc any) error {
	c.mu.Lock()
	c.inserts++
	c.mu.Unlock()
	return c.DocumentStore.InsertIfAbsent(ctx, kind, doc)
}

func (c *countingStore) Save(ctx context.Context, kind content.Kind, doc any) error {
	c.mu.Lock()
	c.saves++
	c.mu.Unlock()
	return c.DocumentStore.Save(ctx, kind, doc)
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
