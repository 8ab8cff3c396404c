package helper

import (
	"errors"
	"lottery_manager/config"
	"lottery_manager/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const ROLE_ADMIN = "admin"

// AdminAuthEnabled: chỉ bật xác thực admin khi đã cấu hình mật khẩu và secret
func AdminAuthEnabled() bool {
	return config.Config("ADMIN_PASSWORD_HASH") != "" && config.Config("JWT_SECRET") != ""
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckAdminCredentials compares against ADMIN_USERNAME (default "admin") and ADMIN_PASSWORD_HASH.
func CheckAdminCredentials(username, password string) bool {
	if username != config.ConfigOr("ADMIN_USERNAME", "admin") {
		return false
	}
	return CheckPasswordHash(password, config.Config("ADMIN_PASSWORD_HASH"))
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

func ParseAccessToken(tokenString string) (*model.TokenClaim, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if role != ROLE_ADMIN {
		return nil, errors.New("not an admin token")
	}
	return &model.TokenClaim{Username: username, Role: role}, nil
}
