package tokenservice

import (
	"errors"
	"time"
)

const (
	// CookieName is the cookie carrying the signed session token.
	CookieName = "token"

	// EmailClaim is the claim the wishlist authorization check reads.
	EmailClaim = "userEmail"

	AccessTokenTime = time.Hour
)

// ErrInvalidToken covers missing, malformed, expired and badly signed
// tokens alike so that no claim details leak to the caller.
var ErrInvalidToken = errors.New("invalid or expired token")

type TokenService struct {
	secret     []byte
	production bool
}
