package gekko

import (
	"reflect"
)

// RendererName identifies a concrete renderer module.
// Keep names aligned with ensureSingleRenderer tags.
type RendererName string

const (
	RendererParticles RendererName = "particles"
)

// Renderer is an alias to Module for semantic clarity in APIs.
type Renderer interface {
	Module
}

// ensureWindowResource guarantees a single shared WindowState resource exists.
// If missing, it installs a PlatformWindowModule with the given size and title.
func ensureWindowResource(app *App, width, height int, title string) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}
	app.UseModules(NewPlatformWindow(width, height, title))
}

// UseRenderer installs exactly one renderer module, enforcing exclusivity via ensureSingleRenderer,
// and ensures a shared WindowState exists (created with defaults if missing).
// Usage:
//
//	app.UseRenderer(RendererParticles, ParticleRenderModule{...})
func (app *App) UseRenderer(name RendererName, mod Renderer) *App {
	return app.UseRendererWithWindow(name, mod, 0, 0, "")
}

// UseRendererWithWindow installs the renderer and ensures a shared window with explicit size/title.
func (app *App) UseRendererWithWindow(name RendererName, mod Renderer, width, height int, title string) *App {
	ensureSingleRenderer(app, string(name))
	ensureWindowResource(app, width, height, title)
	app.Logger().Infof("Renderer selected: %s", name)
	app.UseModules(mod)
	return app
}

// UseParticles selects the particle renderer with a window sized from cfg.
func (app *App) UseParticles(cfg Config, sim ParticleSimulationFactory, geom ParticleGeometryFactory) *App {
	return app.UseRendererWithWindow(RendererParticles, ParticleRenderModule{
		Config:        cfg,
		NewSimulation: sim,
		NewGeometry:   geom,
	}, cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
}
