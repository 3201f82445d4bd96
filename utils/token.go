package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// AdminSessionCookie est le cookie httpOnly porté par le dashboard admin
const AdminSessionCookie = "totono_admin_session"

// AdminSessionMaxAge est la durée de vie de la session admin en secondes
const AdminSessionMaxAge = 14 * 24 * 60 * 60

func adminSecret() ([]byte, error) {
	secret := os.Getenv("ADMIN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ADMIN_SECRET is required in environment variables")
	}
	return []byte(secret), nil
}

func GenerateAdminToken() (string, error) {
	secret, err := adminSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"scope": "admin",
		"exp":   time.Now().Add(AdminSessionMaxAge * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func VerifyAdminToken(tokenString string) error {
	secret, err := adminSecret()
	if err != nil {
		return err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid or expired token")
	}

	if claims["scope"] != "admin" {
		return fmt.Errorf("token is not an admin session")
	}
	return nil
}
