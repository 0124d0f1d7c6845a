package jwt_test

import (
	"time"

	tokenIssuer "taskboard/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service   *tokenIssuer.JWTService
		tokenInfo tokenIssuer.TokenInfo
		signed    string
		claims    jwt.MapClaims
		err       error
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("super-secret"))
		tokenInfo = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "5b1f7d0e-8c39-4c1e-9a57-1b0f4e3c2d11",
			Expiration: 7 * 24 * time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("should set subject, username and a seven day expiry", func() {
			now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
			tokenIssuer.TimeNow = func() time.Time { return now }

			token := service.Generate(tokenInfo)
			mapClaims := token.Claims.(jwt.MapClaims)

			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
			Expect(mapClaims["sub"]).To(Equal(tokenInfo.Subject))
			Expect(mapClaims["username"]).To(Equal("alice"))
			Expect(mapClaims["iat"]).To(Equal(now.Unix()))
			Expect(mapClaims["exp"]).To(Equal(now.Add(7 * 24 * time.Hour).Unix()))
		})
	})

	Describe("Sign and Validate", func() {
		JustBeforeEach(func() {
			signed, err = service.Sign(service.Generate(tokenInfo))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is fresh", func() {
			It("should return its claims", func() {
				claims, err = service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal(tokenInfo.Subject))
				Expect(claims["username"]).To(Equal("alice"))
			})
		})

		When("the token was signed with a different secret", func() {
			It("should reject it", func() {
				other := tokenIssuer.NewJWTService([]byte("another-secret"))
				_, err = other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-8 * 24 * time.Hour)
				}
			})

			It("should reject it as expired", func() {
				tokenIssuer.TimeNow = time.Now
				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token is tampered with", func() {
			It("should reject it", func() {
				_, err = service.Validate(signed + "x")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	Describe("Validate", func() {
		When("the token is not a jwt", func() {
			It("should reject it", func() {
				_, err = service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token uses the none algorithm", func() {
			It("should reject it", func() {
				unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"sub": tokenInfo.Subject,
					"exp": time.Now().Add(time.Hour).Unix(),
				})
				str, signErr := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(signErr).NotTo(HaveOccurred())

				_, err = service.Validate(str)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	When("no secret is configured", func() {
		BeforeEach(func() {
			service = tokenIssuer.NewJWTService(nil)
		})

		It("should refuse to sign", func() {
			_, err = service.Sign(service.Generate(tokenInfo))
			Expect(err).To(MatchError(tokenIssuer.ErrMissingSecret))
		})

		It("should refuse to validate", func() {
			_, err = service.Validate("a.b.c")
			Expect(err).To(MatchError(tokenIssuer.ErrMissingSecret))
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
