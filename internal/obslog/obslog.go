// Package obslog centralizes structured logging for everything below the
// CLI boundary: the search driver, the batch runner, and the progress
// daemon. It is grounded on the pack's xatu service setup (a single
// logrus.Logger, one level parsed from configuration, component-tagged via
// WithField) rather than the teacher's own bare log.Fatalf, since the
// teacher never had a structured internal logging concern to draw from.
package obslog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	base *logrus.Logger
)

func root() *logrus.Logger {
	once.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if lvl, err := logrus.ParseLevel(os.Getenv("ALGEX_LOG_LEVEL")); err == nil {
			base.SetLevel(lvl)
		} else {
			base.SetLevel(logrus.WarnLevel)
		}
	})
	return base
}

// New returns a logger entry tagged with component.
func New(component string) *logrus.Entry {
	return root().WithField("component", component)
}

// SetLevel overrides the process-wide log level that was initialized from
// ALGEX_LOG_LEVEL.
func SetLevel(lvl logrus.Level) {
	root().SetLevel(lvl)
}
