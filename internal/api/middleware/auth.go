package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the JWT from the Authorization header and injects the
// decoded identity into the echo context under "sub" and "role".
//
// The header value is the token itself; a conventional "Bearer " prefix is
// stripped when present.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			if rest, ok := strings.CutPrefix(raw, "Bearer "); ok {
				raw = rest
			}
			if raw == "" || strings.ContainsRune(raw, ' ') {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			if jwtSecret == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "authentication is not configured")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("sub", claims["sub"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
