package log_test

import (
	"taskboard/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("ParseLevel", func() {
	DescribeTable("levels",
		func(input string, expected zapcore.Level) {
			Expect(log.ParseLevel(input)).To(Equal(expected))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("warn", "warn", zapcore.WarnLevel),
		Entry("error", "error", zapcore.ErrorLevel),
		Entry("empty falls back to info", "", zapcore.InfoLevel),
		Entry("unknown falls back to info", "chatty", zapcore.InfoLevel),
	)
})

var _ = Describe("NewZapLogger", func() {
	It("honours the level", func() {
		logger := log.NewZapLogger("taskboard", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})
})
