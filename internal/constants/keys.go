package constants

const (
	// Context Keys
	ContextKeyIsLoggedIn = "isLoggedIn"
	ContextKeySettings   = "settings"
	ContextKeyLang       = "lang"

	// Session Keys
	SessionKeyAuthenticated = "authenticated"
	SessionKeyFiredPost     = "fired_post"
	SessionKeyToast         = "toast"

	// Cookie Names
	CookieLang    = "lang"
	CookieProfile = "lumetric_author_profile_v1"

	// Setting Keys
	SettingPassword        = "password"
	SettingSiteName        = "site_name"
	SettingSiteTagline     = "site_tagline"
	SettingBaseURL         = "base_url"
	SettingNewBadgeDays    = "new_badge_days"
	SettingDefaultCoverURL = "default_cover_url"
)
