package services

import (
	"path/filepath"
	"testing"

	"lumetric/internal/constants"
	"lumetric/internal/repository"
	"lumetric/internal/utils"
)

func TestUpdateSettingsRefreshesCache(t *testing.T) {
	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	settingRepo := repository.NewSettingRepository(db)
	svc := NewSettingService(settingRepo)

	seeded, err := svc.GetSetting(constants.SettingBaseURL)
	if err != nil || seeded == "" {
		t.Fatalf("expected a seeded base url, got %q (err=%v)", seeded, err)
	}

	// Startup overrides the seeded base url with the configured one.
	err = svc.UpdateSettings(map[string]string{
		constants.SettingBaseURL: "https://lumetric.example.com",
	})
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	got, _ := svc.GetSetting(constants.SettingBaseURL)
	if got != "https://lumetric.example.com" {
		t.Errorf("cached base url = %q, want the updated value", got)
	}

	// The update is persisted, not cache-only.
	fresh := NewSettingService(settingRepo)
	got, _ = fresh.GetSetting(constants.SettingBaseURL)
	if got != "https://lumetric.example.com" {
		t.Errorf("persisted base url = %q, want the updated value", got)
	}
}
