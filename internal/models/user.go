package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	PlanType     PlanType `gorm:"type:varchar(10);not null;default:'free'" json:"planType"`

	// Monthly generation quota. GenerationsLimit is -1 for pro users;
	// the counter only gates free users.
	GenerationsUsed  int       `gorm:"not null;default:0" json:"generationsUsed"`
	GenerationsLimit int       `gorm:"not null;default:5" json:"generationsLimit"`
	ResetDate        time.Time `gorm:"not null" json:"resetDate"`

	StripeCustomerID     string `json:"-"`
	StripeSubscriptionID string `json:"-"`

	Sessions []TrainingSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsUnlimited reports whether the user is exempt from the generation quota.
func (u *User) IsUnlimited() bool {
	return u.PlanType == PlanTypePro || u.GenerationsLimit == UnlimitedGenerations
}

// RemainingGenerations returns how many generations are left this period,
// or -1 for unlimited plans.
func (u *User) RemainingGenerations() int {
	if u.IsUnlimited() {
		return UnlimitedGenerations
	}
	remaining := u.GenerationsLimit - u.GenerationsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
