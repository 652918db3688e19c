package adminauthprovider

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"ob-forms-backend/config"
	settingsprovider "ob-forms-backend/lib/settings"
	"ob-forms-backend/models"
)

// CookieName is the admin session cookie. The cookie is a signed JWT; its
// presence and signature are the whole session state, so changing the password
// does not invalidate cookies issued earlier.
const CookieName = "adminAuth"

type Provider interface {
	Login(password string) (token string, ttl time.Duration, err error)
	ChangePassword(oldPassword, newPassword string) error
	ValidateToken(token string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		settings: settingsprovider.Instance,
	}
}

type impl struct {
	settings settingsprovider.Provider
}

func (i impl) Login(password string) (string, time.Duration, error) {
	expected, err := i.settings.ResolveAdminPassword()
	if err != nil {
		return "", 0, err
	}
	if password != expected {
		return "", 0, models.NewAuthError("Incorrect password")
	}
	ttl := time.Duration(config.Conf.Auth.SessionTTLHour) * time.Hour
	token, err := issueToken(ttl)
	if err != nil {
		return "", 0, err
	}
	log.Info("admin logged in")
	return token, ttl, nil
}

func (i impl) ChangePassword(oldPassword, newPassword string) error {
	if len(newPassword) < 4 {
		return models.NewValidationError("New password must be at least 4 characters long")
	}
	expected, err := i.settings.ResolveAdminPassword()
	if err != nil {
		return err
	}
	if oldPassword != expected {
		return models.NewAuthError("Current password is incorrect")
	}
	if err = i.settings.SetAdminPassword(newPassword); err != nil {
		return err
	}
	log.Info("admin password changed")
	return nil
}

func (i impl) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return models.NewAuthError("Not authenticated")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, models.NewAuthError("unexpected signing method")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.NewAuthError("Not authenticated")
	}
	return nil
}

func issueToken(ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}
