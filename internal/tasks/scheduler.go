package tasks

import (
	"log"
	"runtime/debug"
	"strconv"

	"lumetric/internal/constants"
	"lumetric/internal/services"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily housekeeping job that retires the "Novo" badge on
// aging posts.
type Scheduler struct {
	cron           *cron.Cron
	settingService *services.SettingService
	postService    *services.PostService
}

func NewScheduler(settingService *services.SettingService, postService *services.PostService) *Scheduler {
	return &Scheduler{
		cron:           cron.New(),
		settingService: settingService,
		postService:    postService,
	}
}

func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("@daily", recoveryWrapper(s.expireNewBadges))
	if err != nil {
		log.Printf("failed to schedule new-badge expiry: %v", err)
		return
	}
	s.cron.Start()
	log.Println("new-badge expiry task scheduled daily")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) expireNewBadges() {
	days := 7
	if v, _ := s.settingService.GetSetting(constants.SettingNewBadgeDays); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	expired, err := s.postService.ExpireNewBadges(days)
	if err != nil {
		log.Printf("new-badge expiry failed: %v", err)
		return
	}
	if expired > 0 {
		log.Printf("new-badge expiry: cleared %d posts", expired)
	}
}

func recoveryWrapper(job func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("scheduled task panicked: %v\n%s", r, debug.Stack())
			}
		}()
		job()
	}
}
