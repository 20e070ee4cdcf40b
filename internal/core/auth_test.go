package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"slangopedia/internal/core"
	"slangopedia/internal/core/fake"
	"slangopedia/internal/repository"
	tokenIssuer "slangopedia/pkg/jwt"
)

var _ = Describe("Auth", func() {
	var (
		fakeUsers  *fake.UserStore
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		auth *core.Auth

		genToken *jwt.Token
		fakeErr  error
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserStore)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		auth = core.NewAuth(fakeLogger, fakeUsers, fakeJWT, 24*time.Hour)

		genToken = jwt.New(jwt.SigningMethodHS512)
		fakeJWT.GenerateReturns(genToken)
		fakeJWT.SignReturns("signed.token", nil)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg    core.RegisterMessage
			result core.AuthResult
			err    error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "  testuser ",
				Email:    "Test@Example.COM",
				Password: "testpass",
			}

			fakeUsers.CreateUserStub = func(_ context.Context, user repository.User) (repository.User, error) {
				return user, nil
			}
		})

		JustBeforeEach(func() {
			result, err = auth.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("stores a bcrypt hash, never the plaintext password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeUsers.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeUsers.CreateUserArgsForCall(0)
				Expect(argUser.PasswordHash).NotTo(ContainSubstring("testpass"))
				Expect(bcrypt.CompareHashAndPassword(
					[]byte(argUser.PasswordHash), []byte("testpass"))).To(Succeed())
			})

			It("normalizes the username and email", func() {
				Expect(err).NotTo(HaveOccurred())

				_, argUser := fakeUsers.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("testuser"))
				Expect(argUser.Email).To(Equal("test@example.com"))
				Expect(argUser.ID).NotTo(BeEmpty())
			})

			It("issues a token for the created user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("signed.token"))
				Expect(result.User.Username).To(Equal("testuser"))
				Expect(result.User.Email).To(Equal("test@example.com"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen.Username).To(Equal("testuser"))
				Expect(argGen.Subject).To(Equal(result.User.ID))
				Expect(argGen.Expiration).To(Equal(24 * time.Hour))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the email is already taken", func() {
			BeforeEach(func() {
				fakeUsers.CreateUserStub = nil
				fakeUsers.CreateUserReturns(repository.User{}, repository.ErrEmailExists)
			})

			It("returns email exists error", func() {
				Expect(err).To(MatchError(core.ErrEmailExists))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.LoginMessage
			result         core.AuthResult
			err            error
			hashedPassword string
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			msg = core.LoginMessage{
				Email:    "Test@Example.com",
				Password: "testpass",
			}

			fakeUsers.GetUserByEmailReturns(repository.User{
				ID:           "user-123",
				Username:     "testuser",
				Email:        "test@example.com",
				PasswordHash: hashedPassword,
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = auth.Login(ctx, msg)
		})

		When("credentials are correct", func() {
			It("returns a signed token and the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Token).To(Equal("signed.token"))
				Expect(result.User.ID).To(Equal("user-123"))

				Expect(fakeUsers.GetUserByEmailCallCount()).To(Equal(1))
				_, argEmail := fakeUsers.GetUserByEmailArgsForCall(0)
				Expect(argEmail).To(Equal("test@example.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns invalid credentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				msg.Password = "wrongpass"
			})

			It("returns the same invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Profile", func() {
		var (
			profile core.UserProfile
			err     error
		)

		BeforeEach(func() {
			fakeUsers.GetUserByIDReturns(repository.User{
				ID:       "user-123",
				Username: "testuser",
				Email:    "test@example.com",
			}, nil)
			fakeUsers.GetFavoritesReturns([]repository.Slang{
				{ID: "slang-1", Word: "yeet"},
				{ID: "slang-2", Word: "bet"},
			}, nil)
		})

		JustBeforeEach(func() {
			profile, err = auth.Profile(ctx, "user-123")
		})

		When("the user exists", func() {
			It("returns the profile with resolved favorites", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile.ID).To(Equal("user-123"))
				Expect(profile.Favorites).To(HaveLen(2))
				Expect(profile.Favorites[0].Word).To(Equal("yeet"))

				Expect(fakeUsers.GetFavoritesCallCount()).To(Equal(1))
				_, argUserId := fakeUsers.GetFavoritesArgsForCall(0)
				Expect(argUserId).To(Equal("user-123"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeUsers.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeUsers.GetFavoritesCallCount()).To(Equal(0))
			})
		})

		When("loading favorites fails", func() {
			BeforeEach(func() {
				fakeUsers.GetFavoritesReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("issued token contents", func() {
		It("round-trips through a real token service", func() {
			service := tokenIssuer.NewJWTService([]byte("test-secret"))
			realAuth := core.NewAuth(fakeLogger, fakeUsers, service, time.Hour)

			fakeUsers.GetUserByEmailReturns(repository.User{
				ID:           "user-123",
				Username:     "testuser",
				Email:        "test@example.com",
				PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
			}, nil)

			result, err := realAuth.Login(ctx, core.LoginMessage{
				Email:    "test@example.com",
				Password: "testpass",
			})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.Validate(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-123"))
			Expect(claims["username"]).To(Equal("testuser"))
		})
	})
})
