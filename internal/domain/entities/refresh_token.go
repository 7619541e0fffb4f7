package entities

import "time"

// RefreshToken é o segredo opaco trocado por novos access tokens
type RefreshToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// IsExpired verifica se o token passou do TTL. ttl <= 0 desativa a expiração.
func (t *RefreshToken) IsExpired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(t.CreatedAt.Add(ttl))
}
