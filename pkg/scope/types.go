package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the JWT claim set. The subject carries the user id.
type Payload struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (p Payload) UserID() string {
	return p.Subject
}
