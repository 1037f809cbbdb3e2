package shadowgraph

import "encoding/json"

// MatchedProfile is one gallery match from a face scan.
type MatchedProfile struct {
	Platform   string  `json:"platform"`
	Name       string  `json:"name"`
	ProfileURL string  `json:"profile_url"`
	Confidence float64 `json:"confidence"`
	Distance   float64 `json:"distance"`
}

// PresenceSummary aggregates online presence findings from a face scan.
type PresenceSummary struct {
	ProfilesFound    int `json:"profiles_found"`
	PlatformsChecked int `json:"platforms_checked"`
}

// PlatformHit is one per-platform probe result.
type PlatformHit struct {
	Platform   string `json:"platform"`
	Status     string `json:"status"`
	ProfileURL string `json:"profile_url"`
	HTTPStatus int    `json:"http_status"`
	ResponseMS int    `json:"response_ms"`
}

// FaceScanResult is the shaped face scan response. Missing arrays come back
// empty and missing signals come back labeled unknown, never nil.
type FaceScanResult struct {
	MatchedProfiles         []MatchedProfile `json:"matched_profiles"`
	OnlinePresence          []PlatformHit    `json:"online_presence"`
	PresenceSummary         PresenceSummary  `json:"presence_summary"`
	FacesDetected           int              `json:"faces_detected"`
	FakeDetectionConfidence float64          `json:"fake_detection_confidence"`
	FakeDetectionLabel      string           `json:"fake_detection_label"`
	AntiSpoofModel          string           `json:"anti_spoof_model"`
	Signals                 map[string]any   `json:"signals"`
}

// UsernameMatch is one confirmed per-platform discovery row.
type UsernameMatch struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	Status   string `json:"status"`
	Link     string `json:"link"`
}

// ResearchPaper is one research lookup row.
type ResearchPaper struct {
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Source      string `json:"source"`
	Year        int    `json:"year"`
	Citations   int    `json:"citations"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	Institution string `json:"institution"`
}

// Breach is one breach exposure row, stamped with the queried email.
type Breach struct {
	Site    string `json:"site"`
	Data    string `json:"data"`
	Date    string `json:"date"`
	Risk    string `json:"risk"`
	Records int    `json:"records"`
	Email   string `json:"email,omitempty"`
}

// RiskInputs are the optional per-dimension exposure values (0-100) fed into
// risk calculation.
type RiskInputs struct {
	PublicProfiles     int `json:"public_profiles"`
	ResearchVisibility int `json:"research_visibility"`
	BreachExposure     int `json:"breach_exposure"`
	LeakIndicators     int `json:"leak_indicators"`
}

// RiskScore is the shaped risk calculation response.
type RiskScore struct {
	Score  int      `json:"score"`
	Vector []int    `json:"vector"`
	Labels []string `json:"labels"`
	Tips   []string `json:"tips"`
}

// GraphNode is a visualization node in the backend's element envelope.
type GraphNode struct {
	Data GraphNodeData `json:"data"`
}

type GraphNodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// GraphEdge is a visualization edge in the backend's element envelope.
type GraphEdge struct {
	Data GraphEdgeData `json:"data"`
}

type GraphEdgeData struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// GraphSummary carries graph-level counts.
type GraphSummary struct {
	Nodes          int `json:"nodes"`
	Edges          int `json:"edges"`
	EventsIngested int `json:"events_ingested"`
}

// Graph is the shaped graph visualization payload.
type Graph struct {
	Nodes   []GraphNode  `json:"nodes"`
	Edges   []GraphEdge  `json:"edges"`
	Summary GraphSummary `json:"summary"`
}

// Settings is the per-user toggle map.
type Settings struct {
	ProfileVisible   bool   `json:"profile_visible"`
	AllowAggregation bool   `json:"allow_aggregation"`
	BreachAlerts     bool   `json:"breach_alerts"`
	LightTheme       bool   `json:"light_theme"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// FootprintSummary is the shaped digital footprint overview.
type FootprintSummary struct {
	TotalAccountsFound  int              `json:"total_accounts_found"`
	ActivePlatforms     []string         `json:"active_platforms"`
	Categories          map[string]int   `json:"categories"`
	ResearchPapersFound int              `json:"research_papers_found"`
	BreachRecordsFound  int              `json:"breach_records_found"`
	Profiles            []map[string]any `json:"profiles"`
}

/// ScrapeRequest describes one scraping run: seed URLs plus keywords to count.
type ScrapeRequest struct {
	SeedURLs       []string `json:"seed_urls"`
	Keywords       []string `json:"keywords"`
	MaxPages       int      `json:"max_pages,omitempty"`
	SameDomainOnly bool     `json:"same_domain_only"`
}

// ScheduleRequest describes a recurring scraping run.
type ScheduleRequest struct {
	SeedURLs        []string `json:"seed_urls"`
	Keywords        []string `json:"keywords"`
	IntervalMinutes int      `json:"interval_minutes"`
	MaxPages        int      `json:"max_pages,omitempty"`
	SameDomainOnly  bool     `json:"same_domain_only"`
}

// ScrapeOutcome is the synchronous scrape-aggregate result.
type ScrapeOutcome struct {
	Pages      []map[string]any `json:"pages"`
	Aggregates map[string]any   `json:"aggregates"`
}

// ScrapeJob is one queued or finished scrape job.
type ScrapeJob struct {
	JobID      string          `json:"job_id"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	ScheduleID string          `json:"schedule_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
}

// CrawlerSchedule is one recurring scrape schedule.
type CrawlerSchedule struct {
	ScheduleID      string          `json:"schedule_id"`
	IntervalMinutes int             `json:"interval_minutes"`
	CreatedAt       string          `json:"created_at"`
	Status          string          `json:"status"`
	Payload         json.RawMessage `json:"payload,omitempty"`
}

// ReportEvent is one row of the user's scan history.
type ReportEvent struct {
	ID        int            `json:"id"`
	ScanType  string         `json:"scan_type"`
	CreatedAt string         `json:"created_at"`
	Summary   map[string]any `json:"summary"`
}

// AuditEvent is one row of the audit feed.
type AuditEvent struct {
	ID        int            `json:"id"`
	EventType string         `json:"event_type"`
	UserID    *int           `json:"user_id"`
	Details   map[string]any `json:"details"`
	CreatedAt string         `json:"created_at"`
}

// Readiness reports which backend integrations are configured.
type Readiness struct {
	Checks  map[string]bool `json:"checks"`
	Missing []string        `json:"missing"`
	Ready   bool            `json:"ready"`
}
