package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"ob-forms-backend/config"
	adminauthprovider "ob-forms-backend/lib/adminauth"
	apimodels "ob-forms-backend/models/api"
)

// AdminRequired guards mutation endpoints with the admin session cookie.
func AdminRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "cookie:" + adminauthprovider.CookieName,
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewAdminError("Not authenticated"))
		},
	})
}
