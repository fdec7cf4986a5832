package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pmafa/internal/content"
)

// ErrPersonNotFound 表示没有任何人员的链接与 slug 匹配。
var ErrPersonNotFound = errors.New("person not found")

const (
	LeadershipPath = "/about/leadership"
	BarangayPath   = "/administration/barangay-leadership"
)

// PersonDetail 是人员详情页的数据。
type PersonDetail struct {
	Person   content.Person
	BackLink string
	// FromBarangay 为 true 时人员来自乡镇协调员，否则来自领导层页面。
	FromBarangay bool
}

// PeopleService 根据详情链接查找人员。
type PeopleService struct {
	pages *PageService
}

func NewPeopleService(pages *PageService) *PeopleService {
	return &PeopleService{pages: pages}
}

// FindPerson 依次匹配市长、会长、团队成员与各乡镇协调员的 link 字段。
func (s *PeopleService) FindPerson(ctx context.Context, slug string) (*PersonDetail, error) {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return nil, ErrPersonNotFound
	}
	target := content.PersonPathPrefix + slug

	leadership, err := s.pages.Leadership(ctx)
	if err != nil {
		return nil, err
	}
	barangay, err := s.pages.Barangay(ctx)
	if err != nil {
		return nil, err
	}

	section := leadership.LeadershipSection
	candidates := append([]content.Person{section.Mayor, section.President}, section.TeamMembers...)
	for _, p := range candidates {
		if p.Link == target {
			return &PersonDetail{Person: p, BackLink: LeadershipPath}, nil
		}
	}

	for _, b := range barangay.MainSection.Barangays {
		if b.Coordinator != nil && b.Coordinator.Link == target {
			return &PersonDetail{Person: *b.Coordinator, BackLink: BarangayPath, FromBarangay: true}, nil
		}
	}
	return nil, ErrPersonNotFound
}
