package domain

// ContentType identifies a logical kind of content the engine can produce.
type ContentType string

const (
	ContentNews            ContentType = "news"
	ContentBetting         ContentType = "betting"
	ContentPoll            ContentType = "poll"
	ContentAnalysis        ContentType = "analysis"
	ContentLiveUpdates     ContentType = "live_updates"
	ContentSummary         ContentType = "summary"
	ContentCoupons         ContentType = "coupons"
	ContentPremiumAnalysis ContentType = "premium_analysis"
	ContentMultiplePolls   ContentType = "multiple_polls"
	ContentLiveCommentary  ContentType = "live_commentary"
)

// SendStatus is the spam-guard verdict for one reservation attempt.
type SendStatus string

const (
	// SendNormal means the send was reserved and room remains.
	SendNormal SendStatus = "normal"
	// SendDailyLimit means the per-type daily cap is exhausted; other types are unaffected.
	SendDailyLimit SendStatus = "daily_limit_reached"
	// SendEmergencyStop means the aggregate daily cap is exhausted; all automated
	// sends halt for the remainder of the day.
	SendEmergencyStop SendStatus = "emergency_stop"
)

// LanguageAll is the sentinel rule language meaning "every channel language".
const LanguageAll = "all"
