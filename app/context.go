package main

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsContextKey = contextKey("claims")

func (app *application) createClaimsContext(r *http.Request, claims jwt.MapClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

func (app *application) getClaimsContext(r *http.Request) jwt.MapClaims {
	claims, ok := r.Context().Value(claimsContextKey).(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}
