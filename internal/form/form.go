// Package form reads admin form submissions whose repeated sections are
// flattened into indexed field names such as items[3].title.
package form

import (
	"fmt"
	"net/url"
	"strings"
)

// Submission is a parsed admin form: text fields plus the web paths of any
// files stored for it.
type Submission struct {
	values  url.Values
	uploads Uploads
}

// New wraps parsed values and stored uploads. Either may be nil.
func New(values url.Values, uploads Uploads) *Submission {
	if values == nil {
		values = url.Values{}
	}
	if uploads == nil {
		uploads = Uploads{}
	}
	return &Submission{values: values, uploads: uploads}
}

// Key formats an indexed field name, e.g. Key("items[%d].title", 2).
func Key(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Lookup returns the first value of key and whether the key was submitted at all.
func (s *Submission) Lookup(key string) (string, bool) {
	vs, ok := s.values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Has reports whether key was submitted, even with an empty value.
func (s *Submission) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Get returns the submitted value or "".
func (s *Submission) Get(key string) string {
	v, _ := s.Lookup(key)
	return v
}

// Keep returns the submitted value when key is present, otherwise current.
// An empty submission clears the field.
func (s *Submission) Keep(key, current string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return current
}

// NonEmpty returns the submitted value when it is non-empty, otherwise fallback.
func (s *Submission) NonEmpty(key, fallback string) string {
	if v := s.Get(key); v != "" {
		return v
	}
	return fallback
}

// Values returns every value submitted under key or key[] in order.
func (s *Submission) Values(key string) []string {
	var out []string
	out = append(out, s.values[key]...)
	out = append(out, s.values[key+"[]"]...)
	return out
}

// TrimmedValues returns Values(key) trimmed, dropping blanks.
func (s *Submission) TrimmedValues(key string) []string {
	raw := s.Values(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// AnyIndexed reports whether any of the given indexed patterns is present at i.
// Each pattern must contain exactly one %d verb.
func (s *Submission) AnyIndexed(i int, patterns ...string) bool {
	for _, pattern := range patterns {
		if s.Has(Key(pattern, i)) {
			return true
		}
	}
	return false
}

// Uploads returns the stored files of the submission.
func (s *Submission) Uploads() Uploads {
	return s.uploads
}

// Count returns how many consecutive indices, starting from zero, satisfy
// present. Counting stops at the first gap; the request body size is the
// only bound on how many entries a section carries.
func Count(present func(i int) bool) int {
	n := 0
	for present(n) {
		n++
	}
	return n
}

// Uploads maps a form field name to the web paths of the files stored for it.
type Uploads map[string][]string

// Add records a stored file for field.
func (u Uploads) Add(field, webPath string) {
	u[field] = append(u[field], webPath)
}

// First returns the first stored path for field or "".
func (u Uploads) First(field string) string {
	if paths := u[field]; len(paths) > 0 {
		return paths[0]
	}
	return ""
}

// All returns every stored path for field, accepting the field[] spelling too.
func (u Uploads) All(field string) []string {
	var out []string
	out = append(out, u[field]...)
	out = append(out, u[field+"[]"]...)
	return out
}
