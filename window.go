package gekko

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowState is the shared GLFW window and its current GL context.
type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Core-profile 4.1 is the newest context macOS offers and has instancing and divisors.
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	ws := &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		ws.WindowWidth = width
		ws.WindowHeight = height
	})
	return ws, nil
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on high-DPI displays.
func (ws *WindowState) FramebufferSize() (int, int) {
	return ws.windowGlfw.GetFramebufferSize()
}

func (ws *WindowState) ShouldClose() bool {
	return ws.windowGlfw.ShouldClose()
}

func (ws *WindowState) Present() {
	ws.windowGlfw.SwapBuffers()
	glfw.PollEvents()
}

func (ws *WindowState) Destroy() {
	ws.windowGlfw.Destroy()
	glfw.Terminate()
}
