// Package seed writes sample page content from YAML fixtures.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pmafa/internal/content"
)

//go:embed fixtures.yaml
var defaultFixture []byte

// Fixtures 以页面类型为键，值为完整文档的字段（与 JSON 字段名一致）。
type Fixtures map[content.Kind]map[string]any

// Saver 是 Apply 需要的最小写接口，*service.PageService 满足它。
type Saver interface {
	Save(ctx context.Context, doc content.Document) error
}

// Default 返回内置的示例数据。
func Default() (Fixtures, error) {
	return Load(bytes.NewReader(defaultFixture))
}

// Load 解析 YAML 数据，未知的页面类型直接报错。
func Load(r io.Reader) (Fixtures, error) {
	var raw map[string]map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixtures{}, nil
		}
		return nil, fmt.Errorf("seed: decode fixtures: %w", err)
	}

	fixtures := make(Fixtures, len(raw))
	for name, fields := range raw {
		kind, err := content.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		if fields == nil {
			fields = map[string]any{}
		}
		fixtures[kind] = fields
	}
	return fixtures, nil
}

// Kinds 按后台菜单顺序返回包含的页面类型。
func (f Fixtures) Kinds() []content.Kind {
	var kinds []content.Kind
	for _, kind := range content.AllKinds() {
		if _, ok := f[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Document 把一条 fixture 解码成文档并补齐缺省字段。
func (f Fixtures) Document(kind content.Kind) (content.Document, error) {
	fields, ok := f[kind]
	if !ok {
		return nil, fmt.Errorf("seed: no fixture for %s", kind)
	}
	doc, err := content.Blank(kind)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("seed: encode %s: %w", kind, err)
	}
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("seed: decode %s: %w", kind, err)
	}
	doc.Normalize()
	return doc, nil
}

// Apply 写入 fixtures；only 非空时只写入指定页面。返回实际写入的页面。
func Apply(ctx context.Context, pages Saver, fixtures Fixtures, only ...content.Kind) ([]content.Kind, error) {
	kinds := only
	if len(kinds) == 0 {
		kinds = fixtures.Kinds()
	}

	applied := make([]content.Kind, 0, len(kinds))
	for _, kind := range kinds {
		doc, err := fixtures.Document(kind)
		if err != nil {
			return applied, err
		}
		if err := pages.Save(ctx, doc); err != nil {
			return applied, fmt.Errorf("seed: save %s: %w", kind, err)
		}
		applied = append(applied, kind)
	}
	return applied, nil
}
