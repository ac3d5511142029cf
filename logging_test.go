package lightassist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger("la", false, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[la] INFO: shown 2")
	assert.Contains(t, errOut.String(), "[la] WARN: careful")
	assert.Contains(t, errOut.String(), "[la] ERROR: broken")

	l.SetDebug(true)
	l.Debugf("visible")
	assert.Contains(t, out.String(), "[la] DEBUG: visible")
}

func TestLoggingModule_InstallsLogger(t *testing.T) {
	app := NewApp().UseModules(LoggingModule{Prefix: "la", Debug: true})
	app.build()

	assert.True(t, app.Logger().DebugEnabled())
	assert.NotNil(t, Resource[DefaultLogger](app))
}
