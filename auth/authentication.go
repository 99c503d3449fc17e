package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pallium-care/console/config"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleVcm   Role = "vcm"

	AdminCookieName = "admin_token"
	VcmCookieName   = "vcm_token"

	AdminLoginPath = "/login"
	VcmLoginPath   = "/vcm/login"
)

var (
	SessionContextKey = SessionKey("session")

	cookieNames = map[Role]string{
		RoleAdmin: AdminCookieName,
		RoleVcm:   VcmCookieName,
	}
)

type SessionKey string

type Session struct {
	Role   Role
	Token  string
	Claims Claims
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// LoginPath returns the login page matching the session's role.
func (r Role) LoginPath() string {
	if r == RoleVcm {
		return VcmLoginPath
	}
	return AdminLoginPath
}

type Authenticator interface {
	// Authenticate returns the session carried by the request cookies, or nil.
	Authenticate(ec echo.Context) *Session
	StartSession(ec echo.Context, role Role, token string) (*Session, error)
	EndSession(ec echo.Context)
}

type CookieAuthenticator struct {
	claims *ClaimsCache
	secure bool
}

var _ Authenticator = &CookieAuthenticator{}

func NewAuthenticator(cfg *config.Config) (Authenticator, error) {
	cache, err := NewClaimsCache(DefaultCacheSize, time.Now)
	if err != nil {
		return nil, err
	}
	return NewCookieAuthenticator(cache, cfg.SecureCookies), nil
}

func NewCookieAuthenticator(claims *ClaimsCache, secure bool) *CookieAuthenticator {
	return &CookieAuthenticator{
		claims: claims,
		secure: secure,
	}
}

func (a *CookieAuthenticator) Authenticate(ec echo.Context) *Session {
	for _, role := range []Role{RoleAdmin, RoleVcm} {
		cookie, err := ec.Cookie(cookieNames[role])
		if err != nil || cookie.Value == "" {
			continue
		}
		claims, err := a.claims.Claims(cookie.Value)
		if err != nil {
			continue
		}
		return &Session{Role: role, Token: cookie.Value, Claims: *claims}
	}
	return nil
}

func (a *CookieAuthenticator) StartSession(ec echo.Context, role Role, token string) (*Session, error) {
	claims, err := a.claims.Claims(token)
	if err != nil {
		return nil, err
	}
	a.EndSession(ec)
	ec.SetCookie(a.cookie(cookieNames[role], token, claims.ExpiresAt))
	return &Session{Role: role, Token: token, Claims: *claims}, nil
}

func (a *CookieAuthenticator) EndSession(ec echo.Context) {
	for _, name := range cookieNames {
		if cookie, err := ec.Cookie(name); err == nil {
			a.claims.Forget(cookie.Value)
			expired := a.cookie(name, "", time.Unix(0, 0))
			expired.MaxAge = -1
			ec.SetCookie(expired)
		}
	}
}

func (a *CookieAuthenticator) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func GetSession(ctx context.Context) *Session {
	if session, ok := ctx.Value(SessionContextKey).(*Session); ok {
		return session
	}

	return nil
}

func SetSession(ec echo.Context, session *Session) {
	ctx := context.WithValue(ec.Request().Context(), SessionContextKey, session)
	ec.SetRequest(ec.Request().WithContext(ctx))
}
