package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthJWT memverifikasi token admin yang diterbitkan layanan auth eksternal.
// Token diambil dari Authorization: Bearer xxx, fallback ke cookie access_token.
func AuthJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimSpace(secret)
		if key == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "JWT secret belum dikonfigurasi")
		}

		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(key), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// role dicek hanya bila claim-nya ada (token lama tidak membawa role)
		if v, ok := claims["role"]; ok {
			if s, _ := v.(string); s != "" && !strings.EqualFold(s, "admin") {
				return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
			}
		}

		c.Locals("jwt_claims", claims)
		return c.Next()
	}
}
