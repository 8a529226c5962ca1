package trietesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

// NewTestContext initialises the shared logger at level and returns a context
// whose Log is labelled with the test name.
//
// Callers should `defer logger.OnExit()`.
func NewTestContext(t *testing.T, level string) TestContext {
	logger.New(level)
	return TestContext{
		Log: logger.Sugar.WithServiceName(t.Name()),
		T:   t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
