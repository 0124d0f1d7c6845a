package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrMissingSecret error = errors.New("jwt secret is not configured")

type TokenInfo struct {
	UserName   string
	Subject    string
	Expiration time.Duration
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	issuedAt := TimeNow()
	claims := jwt.MapClaims{
		"sub":      data.Subject,
		"iat":      issuedAt.Unix(),
		"exp":      issuedAt.Add(data.Expiration).Unix(),
		"username": data.UserName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	if len(gen.secret) == 0 {
		return "", ErrMissingSecret
	}

	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	if len(gen.secret) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMissingSecret, ErrTokenNotValid)
	}

	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w: %w", ErrTokenExpired, ErrTokenNotValid)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("jwt claims type assertion failed: %w", ErrTokenNotValid)
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w: %w", time.Unix(int64(expVal), 0), ErrTokenExpired, ErrTokenNotValid)
	}

	return claims, nil
}
