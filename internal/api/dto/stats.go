package dto

type StatsResult struct {
	Visitors      int64 `json:"visitors"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}
