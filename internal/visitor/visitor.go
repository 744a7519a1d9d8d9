// Package visitor issues anonymous visitor tokens. A visitor id scopes the
// key-value store the way a browser profile scopes localStorage.
package visitor

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
)

// TokenTTL is how long an issued visitor token stays valid.
const TokenTTL = 72 * time.Hour

// Issuer signs visitor tokens with an HS256 secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Issue creates a new visitor id and a signed token carrying it.
func (i *Issuer) Issue() (string, string, error) {
	id := uuid.NewString()
	claims := jwt.MapClaims{
		"visitor_id": id,
		"exp":        i.now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", "", serr.Wrap(err, "failed to sign visitor token")
	}
	return id, signed, nil
}

// Parse validates a signed token and returns it. Used by tests and by
// callers that are not behind the jwt middleware.
func (i *Issuer) Parse(signed string) (*jwt.Token, error) {
	tok, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, serr.Wrap(err, "invalid visitor token")
	}
	return tok, nil
}

// GetVisitorIDFromCtx extracts the visitor_id claim from the JWT token stored
// in `c.Locals("user")` by the jwt middleware.
func GetVisitorIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", fiber.ErrUnauthorized
	}
	return visitorID(tok)
}

func visitorID(tok *jwt.Token) (string, error) {
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	id, ok := claims["visitor_id"].(string)
	if !ok || id == "" {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}
