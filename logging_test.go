package gekko

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewDefaultLoggerTo(&buf, "particles", false)

	assert.False(t, log.DebugEnabled())
	log.Debugf("hidden %d", 1)
	assert.NotContains(t, buf.String(), "hidden")

	log.Infof("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "particles")

	log.SetDebug(true)
	assert.True(t, log.DebugEnabled())
	log.Debugf("visible %s", "now")
	assert.Contains(t, buf.String(), "visible now")
}

func TestLoggingModule_ProvidesLogger(t *testing.T) {
	app := NewAppBuilder().UseModule(LoggingModule{Prefix: "test", Debug: true}).Build()

	_, ok := app.Logger().(*DefaultLogger)
	assert.True(t, ok)
	assert.True(t, app.Logger().DebugEnabled())
}
