package ancestor

import (
	"go.uber.org/zap/zapcore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Default finder", func() {
	It("should not log at any level", func() {
		for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel} {
			Expect(defaultFinder.opts.Logger.Core().Enabled(level)).To(BeFalse())
		}
	})
})
