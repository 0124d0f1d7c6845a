package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"taskboard/internal/core"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/fake"
	"taskboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AuthHandler", func() {
	var (
		ah          *handler.AuthHandler
		fakeService *fake.AuthService
		w           *httptest.ResponseRecorder
		req         *http.Request
		body        string
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		body = `{"username":" ann ","password":"secret"}`
		fakeService = new(fake.AuthService)
		w = httptest.NewRecorder()
		ah = handler.NewAuthHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeService)
	})

	Describe("HandleRegister", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
			ah.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the success message", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{"message":"User registered successfully"}`))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, creds := fakeService.RegisterArgsForCall(0)
				Expect(creds).To(Equal(core.Credentials{Username: "ann", Password: "secret"}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.ErrUsernameTaken)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(MatchJSON(`{"message":"Username already exists"}`))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				body = `{"username":"ann"}`
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the body has unknown fields", func() {
			BeforeEach(func() {
				body = `{"username":"ann","password":"pw","admin":true}`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(fakeErr)
			})

			It("should hide the cause behind a 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleLogin", func() {
		JustBeforeEach(func() {
			req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
			ah.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{
					Token: "test-token",
					User:  core.UserSummary{ID: "u1", Username: "ann"},
				}, nil)
			})

			It("should return the token and the user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp payload.LoginResponse
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Token).To(Equal("test-token"))
				Expect(resp.User).To(Equal(payload.UserResponse{ID: "u1", Username: "ann"}))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				body = `username=ann`
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogin failures", func() {
		DescribeTable("failures",
			func(err error, code int, message string) {
				fakeService.LoginReturns(core.Session{}, err)
				req = httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
				w = httptest.NewRecorder()
				ah.HandleLogin(w, req)

				Expect(w.Code).To(Equal(code))
				var resp handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Message).To(Equal(message))
			},
			Entry("unknown user", core.ErrUserNotFound, http.StatusNotFound, "User not found"),
			Entry("wrong password", core.ErrIncorrectPassword, http.StatusUnauthorized, "Incorrect password"),
			Entry("storage error", errors.New("db down"), http.StatusInternalServerError, "Login failed"),
		)
	})
})
