package httpapi

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/service"
)

const contextPrincipalKey = "principal"

// Claims are the access-token claims issued by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// authMiddleware verifies a Bearer HS256 token and stores the caller's principal in the
// context. Without a token the request continues anonymously unless required is set; a token
// that fails verification is always rejected.
func authMiddleware(cfg config.AuthConfig, required bool) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				if required {
					return errUnauthorized
				}
				return next(c)
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return errUnauthorized
			}
			claims := &Claims{}
			_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
				return key, nil
			})
			if err != nil || (claims.Subject == "" && claims.Email == "") {
				return errUnauthorized
			}

			c.Set(contextPrincipalKey, &service.Principal{Subject: claims.Subject, Email: claims.Email})
			return next(c)
		}
	}
}

func getContextPrincipal(c echo.Context) *service.Principal {
	p, _ := c.Get(contextPrincipalKey).(*service.Principal)
	return p
}
