package service

import (
	"context"

	"github.com/pmafa/internal/content"
)

// DashboardStats 汇总后台首页展示的数量。
type DashboardStats struct {
	MayorCount      int
	PresidentCount  int
	TeamMemberCount int
	TotalLeadership int
	BarangayCount   int
	Barangays       []content.Barangay
}

// DashboardStats 统计领导层与乡镇数据。
func (s *PageService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	leadership, err := s.Leadership(ctx)
	if err != nil {
		return nil, err
	}
	barangay, err := s.Barangay(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TeamMemberCount: len(leadership.LeadershipSection.TeamMembers),
		BarangayCount:   len(barangay.MainSection.Barangays),
		Barangays:       barangay.MainSection.Barangays,
	}
	if leadership.LeadershipSection.Mayor.Name != "" {
		stats.MayorCount = 1
	}
	if leadership.LeadershipSection.President.Name != "" {
		stats.PresidentCount = 1
	}
	stats.TotalLeadership = stats.MayorCount + stats.PresidentCount + stats.TeamMemberCount
	return stats, nil
}
