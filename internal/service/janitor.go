package service

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultJanitorSchedule 清理过期验证码的频率。
const DefaultJanitorSchedule = "@every 1m"

// Janitor 定时清理过期的密码重置验证码。
type Janitor struct {
	cron   *cron.Cron
	auth   *AuthService
	logger *zap.Logger
}

// NewJanitor 注册清理任务，schedule 为空时使用默认频率。
func NewJanitor(auth *AuthService, schedule string, logger *zap.Logger) (*Janitor, error) {
	if schedule == "" {
		schedule = DefaultJanitorSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	j := &Janitor{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		auth:   auth,
		logger: logger,
	}
	if _, err := j.cron.AddFunc(schedule, j.RunOnce); err != nil {
		return nil, err
	}
	return j, nil
}

// RunOnce 立即执行一次清理。
func (j *Janitor) RunOnce() {
	removed, err := j.auth.PurgeExpiredResets(j.auth.now())
	if err != nil {
		j.logger.Error("failed to purge expired reset codes", zap.Error(err))
		return
	}
	if removed > 0 {
		j.logger.Info("purged expired reset codes", zap.Int64("count", removed))
	}
}

func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop 停止调度并等待正在运行的任务结束。
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// NextRun 返回清理任务的下一次执行时间，Start 之前为零值。
func (j *Janitor) NextRun() time.Time {
	entries := j.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
