package httpadapter

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	flashCookie = "flash"
	flashTTL    = 5 * time.Minute
)

const (
	levelError   = "error"
	levelSuccess = "success"
)

// flash is a one-shot message shown on the page after a redirect.
type flash struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	jwt.RegisteredClaims
}

// flashCodec stores flashes in a short-lived HS256-signed cookie so a
// message cannot be forged through a crafted link.
type flashCodec struct {
	secret []byte
	now    func() time.Time
}

func newFlashCodec(secret string) *flashCodec {
	return &flashCodec{secret: []byte(secret), now: time.Now}
}

func (c *flashCodec) set(w http.ResponseWriter, level, message string) error {
	now := c.now()
	claims := flash{
		Level:   level,
		Message: message,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(flashTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// pop returns the pending flash, if any, and clears the cookie. Expired or
// tampered cookies are dropped silently.
func (c *flashCodec) pop(w http.ResponseWriter, r *http.Request) *flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	var f flash
	_, err = jwt.ParseWithClaims(cookie.Value, &f, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(c.now))
	if err != nil {
		return nil
	}
	return &f
}
