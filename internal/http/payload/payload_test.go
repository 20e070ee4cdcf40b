package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"slangopedia/internal/http/payload"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv  payload.DecodeValidator
		req *http.Request
	)

	newRequest := func(body string) *http.Request {
		r := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		return r
	}

	BeforeEach(func() {
		dv = payload.DecodeValidator{}
	})

	Describe("RegisterRequest", func() {
		When("the payload is valid", func() {
			BeforeEach(func() {
				req = newRequest(`{"username":"testuser","email":"test@example.com","password":"testpass"}`)
			})

			It("decodes without error", func() {
				var r payload.RegisterRequest
				Expect(dv.DecodeAndValidateJSONPayload(req, &r)).To(Succeed())
				Expect(r.Username).To(Equal("testuser"))
			})
		})

		When("the username is too short", func() {
			BeforeEach(func() {
				req = newRequest(`{"username":"ab","email":"test@example.com","password":"testpass"}`)
			})

			It("fails validation", func() {
				var r payload.RegisterRequest
				err := dv.DecodeAndValidateJSONPayload(req, &r)
				Expect(err).To(MatchError(ContainSubstring("username")))
			})
		})

		When("the email is malformed", func() {
			BeforeEach(func() {
				req = newRequest(`{"username":"testuser","email":"not-an-email","password":"testpass"}`)
			})

			It("fails validation", func() {
				var r payload.RegisterRequest
				err := dv.DecodeAndValidateJSONPayload(req, &r)
				Expect(err).To(MatchError(ContainSubstring("email")))
			})
		})

		When("the payload has unknown fields", func() {
			BeforeEach(func() {
				req = newRequest(`{"username":"testuser","email":"test@example.com","password":"testpass","admin":true}`)
			})

			It("rejects the payload", func() {
				var r payload.RegisterRequest
				err := dv.DecodeAndValidateJSONPayload(req, &r)
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("CreateSlangRequest", func() {
		When("word and meaning are present", func() {
			BeforeEach(func() {
				req = newRequest(`{"word":"yeet","meaning":"to throw","catagory":"sports"}`)
			})

			It("decodes the misspelled category field", func() {
				var r payload.CreateSlangRequest
				Expect(dv.DecodeAndValidateJSONPayload(req, &r)).To(Succeed())
				Expect(r.Category).To(Equal("sports"))
			})
		})

		When("the meaning is missing", func() {
			BeforeEach(func() {
				req = newRequest(`{"word":"yeet"}`)
			})

			It("fails validation", func() {
				var r payload.CreateSlangRequest
				err := dv.DecodeAndValidateJSONPayload(req, &r)
				Expect(err).To(MatchError(ContainSubstring("meaning")))
			})
		})
	})

	Describe("UpdateSlangRequest", func() {
		When("only one field is sent", func() {
			BeforeEach(func() {
				req = newRequest(`{"meaning":"updated"}`)
			})

			It("leaves the other fields nil", func() {
				var r payload.UpdateSlangRequest
				Expect(dv.DecodeAndValidateJSONPayload(req, &r)).To(Succeed())
				Expect(r.Word).To(BeNil())
				Expect(r.Meaning).NotTo(BeNil())
				Expect(*r.Meaning).To(Equal("updated"))
			})
		})

		When("the word is sent but empty", func() {
			BeforeEach(func() {
				req = newRequest(`{"word":""}`)
			})

			It("fails validation", func() {
				var r payload.UpdateSlangRequest
				err := dv.DecodeAndValidateJSONPayload(req, &r)
				Expect(err).To(MatchError(ContainSubstring("word")))
			})
		})
	})
})
