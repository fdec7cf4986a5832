package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/telemetry"
)

// ErrPageNotFound 表示文档在创建后仍无法读取。
var ErrPageNotFound = errors.New("page not found")

// loadSingleton 读取某类页面的唯一文档：不存在时以默认值插入（并发安全）后重读；
// 已存在时补齐旧文档缺失的字段，有变化则写回。
func (s *PageService) loadSingleton(ctx context.Context, kind content.Kind) (doc content.Document, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "page.singleton",
		trace.WithAttributes(attribute.String("page.kind", string(kind))))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	doc, err = content.Blank(kind)
	if err != nil {
		return nil, err
	}
	found, err := s.store.Load(ctx, kind, doc)
	if err != nil {
		return nil, err
	}

	if !found {
		defaults, err := content.New(kind)
		if err != nil {
			return nil, err
		}
		defaults.Touch(s.now())
		if err := s.store.InsertIfAbsent(ctx, kind, defaults); err != nil {
			return nil, fmt.Errorf("create %s: %w", kind, err)
		}
		s.logger.Info("page document created with defaults", zap.String("kind", string(kind)))

		doc, _ = content.Blank(kind)
		found, err = s.store.Load(ctx, kind, doc)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%s: %w", kind, ErrPageNotFound)
		}
		span.SetAttributes(attribute.Bool("page.created", true))
		return doc, nil
	}

	if doc.Normalize() {
		doc.Touch(s.now())
		if err := s.store.Save(ctx, kind, doc); err != nil {
			return nil, fmt.Errorf("reconcile %s: %w", kind, err)
		}
		s.logger.Info("page document reconciled", zap.String("kind", string(kind)))
		span.SetAttributes(attribute.Bool("page.reconciled", true))
	}
	return doc, nil
}

// getSingleton 是 loadSingleton 的类型化版本。
func getSingleton[T content.Document](ctx context.Context, s *PageService, kind content.Kind) (T, error) {
	var zero T
	doc, err := s.loadSingleton(ctx, kind)
	if err != nil {
		return zero, err
	}
	typed, ok := doc.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected document type %T", kind, doc)
	}
	return typed, nil
}
