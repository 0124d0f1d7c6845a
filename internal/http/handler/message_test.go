package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/fake"
	"taskboard/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// brokenWriter fails every body write and counts status lines.
type brokenWriter struct {
	header      http.Header
	statusCodes []int
}

func (b *brokenWriter) Header() http.Header {
	return b.header
}

func (b *brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func (b *brokenWriter) WriteHeader(code int) {
	b.statusCodes = append(b.statusCodes, code)
}

var _ = Describe("respond", func() {
	It("writes the status once and logs when the body cannot be written", func() {
		obsCore, logs := observer.New(zapcore.ErrorLevel)
		bh := handler.NewBoardHandler(zap.New(obsCore).Sugar(), payload.Decoder{}, new(fake.BoardService))
		w := &brokenWriter{header: http.Header{}}

		bh.HandleSeed(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))

		Expect(w.statusCodes).To(Equal([]int{http.StatusOK}))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
		Expect(logs.FilterMessage("failed to encode response").Len()).To(Equal(1))
	})
})
