package models

type PlanType string
type SessionType string

const (
	PlanTypeFree PlanType = "free"
	PlanTypePro  PlanType = "pro"

	SessionTypeOutfield    SessionType = "outfield"
	SessionTypeGoalkeeping SessionType = "goalkeeping"
)

// Free-tier defaults applied at registration.
const (
	DefaultFreeGenerations = 5

	// UnlimitedGenerations is the sentinel limit for pro users.
	UnlimitedGenerations = -1
)
