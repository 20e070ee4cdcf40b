package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"slangopedia/internal/core"
	"slangopedia/internal/http/handler"
	"slangopedia/internal/http/handler/fake"
	"slangopedia/internal/http/handler/middleware"
)

var _ = Describe("AuthHandler", func() {
	var (
		ah            *handler.AuthHandler
		fakeAuth      *fake.AuthService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeAuth = new(fake.AuthService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ah = handler.NewAuthHandler(fakeLogger, fakeValidator, fakeAuth)
	})

	Describe("HandleRegister", func() {
		var authResult core.AuthResult

		BeforeEach(func() {
			authResult = core.AuthResult{
				Token: "signed.token",
				User: core.UserRecord{
					ID:       "user-123",
					Username: "testuser",
					Email:    "test@example.com",
				},
			}
			fakeAuth.RegisterReturns(authResult, nil)

			body := strings.NewReader(`{"username":"testuser","email":"test@example.com","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/api/auth/register", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			ah.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("returns 201 with the token and user", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response core.AuthResult
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Token).To(Equal("signed.token"))
				Expect(response.User.Username).To(Equal("testuser"))

				Expect(fakeAuth.RegisterCallCount()).To(Equal(1))
				_, argMsg := fakeAuth.RegisterArgsForCall(0)
				Expect(argMsg.Email).To(Equal("test@example.com"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("returns status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeAuth.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the email is already taken", func() {
			BeforeEach(func() {
				fakeAuth.RegisterReturns(core.AuthResult{}, core.ErrEmailExists)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("email already exists"))
			})
		})

		When("registration fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAuth.RegisterReturns(core.AuthResult{}, fakeErr)
			})

			It("returns status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			fakeAuth.LoginReturns(core.AuthResult{Token: "signed.token"}, nil)

			body := strings.NewReader(`{"email":"test@example.com","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/api/auth/login", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			ah.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("returns 200 with the token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response core.AuthResult
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Token).To(Equal("signed.token"))
			})
		})

		When("credentials are wrong", func() {
			BeforeEach(func() {
				fakeAuth.LoginReturns(core.AuthResult{}, core.ErrInvalidCredentials)
			})

			It("returns status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("invalid credentials"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("returns status 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAuth.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleMe", func() {
		BeforeEach(func() {
			fakeAuth.ProfileReturns(core.UserProfile{
				ID:        "user-123",
				Username:  "testuser",
				Favorites: []core.SlangRecord{{ID: "slang-1", Word: "yeet"}},
			}, nil)

			req = httptest.NewRequest("GET", "/api/auth/me", nil)
			ctx := context.WithValue(req.Context(), middleware.UserIDKey, "user-123")
			req = req.WithContext(ctx)
		})

		JustBeforeEach(func() {
			ah.HandleMe(w, req)
		})

		When("the user is authenticated", func() {
			It("returns the profile", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response core.UserProfile
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.ID).To(Equal("user-123"))
				Expect(response.Favorites).To(HaveLen(1))

				Expect(fakeAuth.ProfileCallCount()).To(Equal(1))
				_, argUserId := fakeAuth.ProfileArgsForCall(0)
				Expect(argUserId).To(Equal("user-123"))
			})
		})

		When("no user id is in the context", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/auth/me", nil)
			})

			It("returns status 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeAuth.ProfileCallCount()).To(Equal(0))
			})
		})

		When("the user record is gone", func() {
			BeforeEach(func() {
				fakeAuth.ProfileReturns(core.UserProfile{}, core.ErrUserNotFound)
			})

			It("returns status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
