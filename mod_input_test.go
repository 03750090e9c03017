package gekko

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_Edges(t *testing.T) {
	input := &Input{}

	input.setKey(KeySpace, true)
	assert.True(t, input.Pressed[KeySpace])
	assert.True(t, input.JustPressed[KeySpace])

	input.setKey(KeySpace, true)
	assert.True(t, input.Pressed[KeySpace])
	assert.False(t, input.JustPressed[KeySpace], "held keys fire once")

	input.setKey(KeySpace, false)
	assert.False(t, input.Pressed[KeySpace])
	assert.True(t, input.JustReleased[KeySpace])

	input.setKey(KeySpace, false)
	assert.False(t, input.JustReleased[KeySpace])
}

func TestInputControlsSystem(t *testing.T) {
	app := NewAppBuilder().UseModule(LoggingModule{Prefix: "test"}).Build()
	input := &Input{}
	cmd := app.Commands()

	input.setKey(KeyF3, true)
	inputControlsSystem(input, cmd)
	assert.True(t, app.Logger().DebugEnabled())
	assert.False(t, app.quitRequested)

	input.setKey(KeyF3, false)
	input.setKey(KeyEscape, true)
	inputControlsSystem(input, cmd)
	assert.True(t, app.Logger().DebugEnabled())
	assert.True(t, app.quitRequested)
}
