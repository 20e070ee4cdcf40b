package jwt_test

import (
	"time"

	gojwt "github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"slangopedia/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var (
		service   *jwt.JWTService
		secret    []byte
		tokenInfo jwt.TokenInfo
	)

	BeforeEach(func() {
		secret = []byte("test-secret")
		service = jwt.NewJWTService(secret)

		tokenInfo = jwt.TokenInfo{
			Username:   "testuser",
			Subject:    "user-123",
			Expiration: time.Hour,
		}
	})

	Describe("Generate and Sign", func() {
		It("produces a signed HS512 token carrying the expected claims", func() {
			token := service.Generate(tokenInfo)
			Expect(token.Method).To(Equal(gojwt.SigningMethodHS512))

			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-123"))
			Expect(claims["username"]).To(Equal("testuser"))
			Expect(claims).To(HaveKey("iat"))
			Expect(claims).To(HaveKey("exp"))
		})
	})

	Describe("Validate", func() {
		var signed string

		BeforeEach(func() {
			var err error
			signed, err = service.Sign(service.Generate(tokenInfo))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is signed with a different secret", func() {
			It("returns ErrTokenNotValid", func() {
				other := jwt.NewJWTService([]byte("other-secret"))
				_, err := other.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is tampered with", func() {
			It("returns ErrTokenNotValid", func() {
				_, err := service.Validate(signed + "x")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token is garbage", func() {
			It("returns ErrTokenNotValid", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(jwt.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			BeforeEach(func() {
				jwt.TimeNow = func() time.Time {
					return time.Now().Add(-2 * time.Hour)
				}
				var err error
				signed, err = service.Sign(service.Generate(tokenInfo))
				Expect(err).NotTo(HaveOccurred())
				jwt.TimeNow = time.Now
			})

			It("returns ErrTokenExpired", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(jwt.ErrTokenExpired))
			})
		})
	})
})
