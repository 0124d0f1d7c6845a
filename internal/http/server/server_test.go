package server_test

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"taskboard/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("serves until shut down", func() {
		port := freePort()
		mux := http.NewServeMux()
		mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		})

		srv := server.NewHTTP(zap.NewNop().Sugar(), mux, port, time.Second, time.Second)
		Expect(srv.Addr()).To(Equal(":" + port))
		errChan := srv.Run()

		Eventually(func() (string, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/healthz")
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			return string(body), err
		}).WithTimeout(2 * time.Second).Should(Equal("ok"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
