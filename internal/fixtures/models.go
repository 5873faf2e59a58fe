package fixtures

// APIResponse is one page of the fixtures feed.
type APIResponse struct {
	Fixtures []Fixture `json:"fixtures"`
	PageInfo PageInfo  `json:"pageInfo"`
}

type PageInfo struct {
	Page     int `json:"page"`
	NumPages int `json:"numPages"`
}

type Fixture struct {
	ID          int64  `json:"id"`
	HomeTeamID  int64  `json:"homeTeamId"`
	AwayTeamID  int64  `json:"awayTeamId"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Competition string `json:"competition"`
	KickoffAt   string `json:"kickoffAt"` // RFC3339
}
