package renderer

import (
	"fmt"
	"log"

	graphics "github.com/richinsley/glcolorpicker/graphics"
	options "github.com/richinsley/glcolorpicker/options"
	picker "github.com/richinsley/glcolorpicker/picker"
)

// QuadVertices covers the viewport: top left, top right, bottom left, bottom right.
var QuadVertices = []float32{
	-1.0, 1.0,
	1.0, 1.0,
	-1.0, -1.0,
	1.0, -1.0,
}

const (
	uniformCircleOrigin = "circleOrigin"
	uniformRadius       = "radius"
	uniformWindowSize   = "windowSize"
	uniformClickPos     = "clickPos"
)

// ProgramLoader builds the picker's shader program.
type ProgramLoader func() (graphics.Program, error)

type Renderer struct {
	window  graphics.Window
	device  graphics.Device
	state   *picker.State
	load    ProgramLoader
	program graphics.Program
	quad    graphics.Mesh

	circleOriginLoc int32
	radiusLoc       int32
	windowSizeLoc   int32
	clickPosLoc     int32

	radius          [2]float32
	windowWidth     int
	windowHeight    int
	trackWindowSize bool

	reload <-chan string
	fps    *FPSCounter
	closed bool
}

// New loads the program, uploads the static uniforms and the quad. The
// window's context must be current.
func New(window graphics.Window, device graphics.Device, state *picker.State, load ProgramLoader, options *options.PickerOptions) (*Renderer, error) {
	r := &Renderer{
		window:          window,
		device:          device,
		state:           state,
		load:            load,
		radius:          [2]float32{float32(*options.RadiusInner), float32(*options.RadiusOuter)},
		trackWindowSize: *options.TrackWindowSize,
	}
	r.windowWidth, r.windowHeight = window.GetSize()

	program, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load shader program: %w", err)
	}

	// white background
	device.ClearColor(1.0, 1.0, 1.0, 0.0)
	r.useProgram(program)
	r.quad = device.NewMesh(QuadVertices, 2)

	if *options.ShowFPS {
		r.fps = NewFPSCounter(window.Time())
	}
	return r, nil
}

// SetReloadSource makes the renderer rebuild its program whenever a value
// arrives on changes. The channel is drained without blocking once per frame.
func (r *Renderer) SetReloadSource(changes <-chan string) {
	r.reload = changes
}

func (r *Renderer) useProgram(p graphics.Program) {
	r.program = p
	p.Use()
	r.circleOriginLoc = p.UniformLocation(uniformCircleOrigin)
	r.radiusLoc = p.UniformLocation(uniformRadius)
	r.windowSizeLoc = p.UniformLocation(uniformWindowSize)
	r.clickPosLoc = p.UniformLocation(uniformClickPos)

	r.device.Uniform2f(r.circleOriginLoc, 0.0, 0.0)
	r.device.Uniform2f(r.radiusLoc, r.radius[0], r.radius[1])
	r.device.Uniform2f(r.windowSizeLoc, float32(r.windowWidth), float32(r.windowHeight))
}

func (r *Renderer) reloadProgram(path string) {
	p, err := r.load()
	if err != nil {
		log.Printf("Shader reload after change to %s failed, keeping previous program: %v", path, err)
		return
	}
	r.program.Delete()
	r.useProgram(p)
	log.Printf("Reloaded shaders after change to %s", path)
}

// Frame renders and presents one frame.
func (r *Renderer) Frame() {
	r.window.PollEvents()

	select {
	case path := <-r.reload:
		r.reloadProgram(path)
	default:
	}

	r.device.Clear()

	clickX, clickY := r.state.Click()
	r.device.Uniform2f(r.clickPosLoc, float32(clickX), float32(clickY))

	width, height := r.window.GetSize()
	r.device.Viewport(0, 0, width, height)
	if r.trackWindowSize && (width != r.windowWidth || height != r.windowHeight) {
		r.windowWidth, r.windowHeight = width, height
		r.device.Uniform2f(r.windowSizeLoc, float32(width), float32(height))
	}

	r.quad.Draw()

	if r.fps != nil {
		if fps, ok := r.fps.Tick(r.window.Time()); ok {
			r.window.SetTitle(fmt.Sprintf("colorPicker @fps(%.1f)", fps))
		}
	}

	r.window.SwapBuffers()
}

// Run renders frames until the window is asked to close.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.Frame()
	}
}

// Shutdown releases the quad and the program. Calling it again does nothing.
func (r *Renderer) Shutdown() {
	if r.closed {
		return
	}
	r.closed = true
	r.quad.Delete()
	r.program.Delete()
}
