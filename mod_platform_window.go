package gekko

import (
	"reflect"
)

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is created
// and made available as a resource for the renderer.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState resource.
// If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Gekko Particles"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

// Install provides the WindowState resource if missing, presents it after
// every rendered frame and quits once the user closes it.
func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		// Already created by another module (or user code); no-op to preserve single-window invariant.
		return
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title)
	if err != nil {
		app.Logger().Errorf("window: %v", err)
		panic(err)
	}
	app.addResources(ws)
	app.Logger().Infof("Created shared window (%dx%d) '%s'", m.Width, m.Height, m.Title)

	app.UseSystem(System(windowPresentSystem).InStage(PostRender).RunAlways())
	app.OnShutdown(ws.Destroy)
}

func windowPresentSystem(ws *WindowState, cmd *Commands) {
	ws.Present()
	if ws.ShouldClose() {
		cmd.Quit()
	}
}
