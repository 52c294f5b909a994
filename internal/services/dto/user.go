package dto

import "time"

// StatsResponse summarizes the caller's account for the dashboard.
// RemainingGenerations is -1 for unlimited plans.
type StatsResponse struct {
	TotalSessions        int64     `json:"totalSessions"`
	MonthlyGenerations   int64     `json:"monthlyGenerations"`
	RemainingGenerations int       `json:"remainingGenerations"`
	PlanType             string    `json:"planType"`
	ResetDate            time.Time `json:"resetDate"`
}
