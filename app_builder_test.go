package lightassist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockModule struct {
	installed int
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed++
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	builder.UseModule(&MockModule{})

	assert.Len(t, builder.modules, 1)
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	app := builder.Build()
	app.Step()
	app.Step()

	assert.Equal(t, 1, module.installed, "Install runs once per app")
}
