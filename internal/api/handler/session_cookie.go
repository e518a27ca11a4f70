package handler

import (
	"net/http"

	"github.com/ashuestate/realty-api/internal/api/middleware"
)

// CookiePolicy fixes the attribute set for the session cookie. Set and
// clear must use identical attributes: browsers only remove a cookie when
// path and security attributes match the ones it was set with.
type CookiePolicy struct {
	// Production switches Secure on and SameSite to None so the cookie
	// survives cross-site requests from the hosted frontend. Development
	// keeps Lax over plain HTTP.
	Production bool
	// MaxAge is the cookie lifetime in seconds; matches the token TTL.
	MaxAge int
}

func (p CookiePolicy) sameSite() http.SameSite {
	if p.Production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// SessionCookie wraps the signed token for transport to the client.
func (p CookiePolicy) SessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: p.sameSite(),
		MaxAge:   p.MaxAge,
	}
}

// ClearCookie expires the session cookie using the same attribute set as
// SessionCookie.
func (p CookiePolicy) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Production,
		SameSite: p.sameSite(),
		MaxAge:   -1,
	}
}
