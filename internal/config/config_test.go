package config_test

import (
	"os"
	"path/filepath"
	"time"

	"taskboard/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"API_PORT", "DB_CONNECTION_URL", "JWT_SECRET", "FRONTEND_URL", "LOG_LEVEL",
	"DB_LOG_LEVEL", "SHUTDOWN_TIMEOUT", "REQUEST_TIMEOUT", "TOKEN_TTL",
}

func setenv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("NewAppFromFile", func() {
	var envFile string

	BeforeEach(func() {
		for _, key := range envKeys {
			if old, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, old)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		envFile = filepath.Join(GinkgoT().TempDir(), "missing.env")
	})

	It("applies defaults", func() {
		setenv("DB_CONNECTION_URL", "postgres://localhost/board")

		app, err := config.NewAppFromFile(envFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("5000"))
		Expect(app.LogLevel).To(Equal("info"))
		Expect(app.DBLogLevel).To(Equal("warn"))
		Expect(app.ShutdownTimeout).To(Equal(5 * time.Second))
		Expect(app.RequestTimeout).To(Equal(10 * time.Second))
		Expect(app.TokenTTL).To(Equal(7 * 24 * time.Hour))
		Expect(app.JWTSecret).To(BeEmpty())
		Expect(app.AllowedOrigins()).To(Equal([]string{"http://localhost:5173"}))
	})

	It("reads overrides from the environment", func() {
		setenv("DB_CONNECTION_URL", "postgres://localhost/board")
		setenv("API_PORT", "8080")
		setenv("JWT_SECRET", "s3cret")
		setenv("FRONTEND_URL", "https://board.example.com")
		setenv("TOKEN_TTL", "1h")

		app, err := config.NewAppFromFile(envFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("8080"))
		Expect(app.JWTSecret).To(Equal("s3cret"))
		Expect(app.TokenTTL).To(Equal(time.Hour))
		Expect(app.AllowedOrigins()).To(ConsistOf("http://localhost:5173", "https://board.example.com"))
	})

	It("loads missing keys from the env file without overriding the environment", func() {
		envFile = filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(envFile, []byte("DB_CONNECTION_URL=postgres://file/board\nAPI_PORT=7000\n"), 0o600)).To(Succeed())
		setenv("API_PORT", "9000")

		app, err := config.NewAppFromFile(envFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(app.DBConnectionURL).To(Equal("postgres://file/board"))
		Expect(app.Port).To(Equal("9000"))
	})

	It("reports a malformed env file", func() {
		envFile = filepath.Join(GinkgoT().TempDir(), ".env")
		Expect(os.WriteFile(envFile, []byte("NOT VALID\n"), 0o600)).To(Succeed())
		setenv("DB_CONNECTION_URL", "postgres://localhost/board")

		_, err := config.NewAppFromFile(envFile)
		Expect(err).To(MatchError(ContainSubstring(envFile)))
	})

	It("requires a database url", func() {
		_, err := config.NewAppFromFile(envFile)
		Expect(err).To(MatchError(ContainSubstring("DBConnectionURL")))
	})

	It("rejects a bad port and log level", func() {
		setenv("DB_CONNECTION_URL", "postgres://localhost/board")
		setenv("API_PORT", "http")
		setenv("LOG_LEVEL", "loud")

		_, err := config.NewAppFromFile(envFile)
		Expect(err).To(MatchError(ContainSubstring("Port")))
		Expect(err).To(MatchError(ContainSubstring("LogLevel")))
	})
})
