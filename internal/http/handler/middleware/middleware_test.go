package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"taskboard/internal/core"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/handler/middleware/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		seen    string
		handler http.Handler
	)

	BeforeEach(func() {
		seen = ""
		handler = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.RequestIDFromContext(r.Context())
		}))
	})

	It("generates an id when none is sent", func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		Expect(uuid.Validate(seen)).To(Succeed())
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
	})

	It("honours an inbound id", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(seen).To(Equal("abc-123"))
		Expect(rec.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("logs method, path, status and request id", func() {
		obsCore, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(obsCore).Sugar()

		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
		handler := middleware.NewRequestIDMiddleware().RequestID(
			middleware.NewLoggingMiddleware(logger).Logging(inner))

		req := httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusTeapot))
		Expect(logs.Len()).To(Equal(1))
		fields := logs.All()[0].ContextMap()
		Expect(fields).To(HaveKeyWithValue("method", http.MethodDelete))
		Expect(fields).To(HaveKeyWithValue("path", "/api/tasks/1"))
		Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusTeapot)))
		Expect(fields).To(HaveKeyWithValue("request_id", "rid"))
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		authorizer *fake.Authorizer
		handler    http.Handler
		called     bool
		identity   core.Identity
	)

	BeforeEach(func() {
		called = false
		identity = core.Identity{}
		authorizer = &fake.Authorizer{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			identity, _ = middleware.IdentityFromContext(r.Context())
			w.WriteHeader(http.StatusCreated)
		})
		handler = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), authorizer).Authorize(next)
	})

	It("passes the identity to the next handler", func() {
		authorizer.AuthorizeReturns(core.Identity{UserID: "u1", Username: "ann"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(called).To(BeTrue())
		Expect(identity).To(Equal(core.Identity{UserID: "u1", Username: "ann"}))
		Expect(authorizer.AuthorizeArgsForCall(0)).To(Equal("Bearer tok"))
	})

	DescribeTable("rejects with 401",
		func(authErr error, message string) {
			authorizer.AuthorizeReturns(core.Identity{}, authErr)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/tasks/1", nil))

			Expect(called).To(BeFalse())
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(rec.Body.String()).To(MatchJSON(fmt.Sprintf(`{"message":%q}`, message)))
		},
		Entry("missing header", core.ErrMissingToken, "No token provided"),
		Entry("malformed header", core.ErrMalformedHeader, "Invalid authorization format"),
		Entry("bad token", fmt.Errorf("validate: %w", core.ErrInvalidToken), "Invalid or expired token"),
		Entry("anything else", errors.New("boom"), "Invalid or expired token"),
	)

	It("reports no identity outside the gate", func() {
		_, ok := middleware.IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
		Expect(ok).To(BeFalse())
	})
})
