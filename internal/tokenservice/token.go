package tokenservice

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

func NewTokenService(secret string, production bool) *TokenService {
	return &TokenService{secret: []byte(secret), production: production}
}

// Issue signs the caller-supplied claims into a token valid for one hour.
// The claims must identify the user by email; everything else is passed
// through untouched.
func (s *TokenService) Issue(claims map[string]any) (string, time.Time, error) {
	v := common.NewValidator()
	email, _ := claims[EmailClaim].(string)
	v.Check(email != "", EmailClaim, "must be provided")
	v.Check(email == "" || v.CheckEmail(email), EmailClaim, "must be a valid email address")
	if !v.Valid() {
		return "", time.Time{}, v.ValidationError()
	}

	expiry := time.Now().Add(AccessTokenTime)

	mapClaims := jwt.MapClaims{}
	for key, value := range claims {
		mapClaims[key] = value
	}
	mapClaims["exp"] = expiry.Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiry, nil
}

// Verify checks the signature and expiry and returns the decoded claims.
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Cookie wraps a signed token in the session cookie. Cross-site clients need
// Secure + SameSite=None in production; local development stays strict.
func (s *TokenService) Cookie(token string, expiry time.Time) *http.Cookie {
	sameSite := http.SameSiteStrictMode
	if s.production {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		HttpOnly: true,
		Secure:   s.production,
		SameSite: sameSite,
	}
}

// ExpiredCookie re-sets the session cookie with immediate expiry. The token
// itself stays cryptographically valid until its natural expiry; revocation
// is client-side cookie removal only.
func (s *TokenService) ExpiredCookie() *http.Cookie {
	cookie := s.Cookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}
