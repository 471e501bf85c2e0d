package entity

import "time"

// Company representa una organización/tenant del sistema.
type Company struct {
	ID                 string
	Name               string
	TrialEndsAt        *time.Time // nil = sin período de prueba
	SubscriptionActive bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TrialExpired informa si la prueba gratis terminó y no hay suscripción paga.
func (c *Company) TrialExpired(now time.Time) bool {
	if c.SubscriptionActive || c.TrialEndsAt == nil {
		return false
	}
	return !now.Before(*c.TrialEndsAt)
}
