package domain

import "time"

// User is a local mirror of an identity-provider account, upserted from
// verified token claims on authenticated requests. The service never stores
// credentials; it only needs id, email and display name for membership and
// invitation joins.
type User struct {
	ID        string
	Email     string // lowercased
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
