package dto

import "time"

// CompanyResponse empresa del usuario con el estado de la prueba gratis.
type CompanyResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	TrialEndsAt        *time.Time `json:"trial_ends_at"`
	SubscriptionActive bool       `json:"subscription_active"`
	TrialExpired       bool       `json:"trial_expired"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
