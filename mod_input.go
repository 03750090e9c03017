package gekko

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key int

const (
	KeyEscape Key = iota
	KeySpace
	KeyF3
	KeyR
	keyCount
)

var keyToGlfw = [keyCount]glfw.Key{
	KeyEscape: glfw.KeyEscape,
	KeySpace:  glfw.KeySpace,
	KeyF3:     glfw.KeyF3,
	KeyR:      glfw.KeyR,
}

// InputModule samples the keys the particle viewer reacts to. It needs the
// shared window, so install it after the renderer.
//
//	Escape quits, F3 toggles debug logging, Space pauses the orbit camera
//	and R resets it.
type InputModule struct{}

type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
	app.UseSystem(
		System(inputControlsSystem).
			InStage(PreUpdate).
			RunAlways(),
	)
}

func inputSystem(s *WindowState, input *Input) {
	for key := Key(0); key < keyCount; key++ {
		input.setKey(key, s.windowGlfw.GetKey(keyToGlfw[key]) == glfw.Press)
	}
}

// setKey records the key's state for this frame and derives the edges.
func (input *Input) setKey(key Key, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

func inputControlsSystem(input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
	}
	if input.JustPressed[KeyF3] {
		log := cmd.Logger()
		log.SetDebug(!log.DebugEnabled())
		log.Infof("debug logging: %v", log.DebugEnabled())
	}
}
