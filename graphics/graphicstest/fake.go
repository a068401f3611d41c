// Package graphicstest provides in-memory implementations of the graphics
// interfaces for tests.
package graphicstest

import (
	"fmt"

	graphics "github.com/richinsley/glcolorpicker/graphics"
)

// Window is a graphics.Window whose input is scripted by the test. Events
// queued with the Queue helpers are delivered on the next PollEvents.
type Window struct {
	Width, Height     int
	FBWidth, FBHeight int
	CursorX, CursorY  float64
	Title             string
	Clock             float64
	Swaps             int
	Polls             int

	closing bool
	handler graphics.InputHandler
	pending []func()
}

// NewWindow returns a window of the given size with a matching framebuffer.
func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height, FBWidth: width, FBHeight: height}
}

// QueueClick moves the cursor to (x, y) and queues a press of button.
func (w *Window) QueueClick(button graphics.MouseButton, x, y float64) {
	w.pending = append(w.pending, func() {
		w.CursorX, w.CursorY = x, y
		if w.handler != nil {
			w.handler.OnMouseButton(button, graphics.Press)
		}
	})
}

// QueueMouse queues a raw mouse button event at the current cursor position.
func (w *Window) QueueMouse(button graphics.MouseButton, action graphics.Action) {
	w.pending = append(w.pending, func() {
		if w.handler != nil {
			w.handler.OnMouseButton(button, action)
		}
	})
}

func (w *Window) QueueKey(key graphics.Key, action graphics.Action) {
	w.pending = append(w.pending, func() {
		if w.handler != nil {
			w.handler.OnKey(key, action)
		}
	})
}

// QueueResize changes the window and framebuffer size on the next poll.
func (w *Window) QueueResize(width, height int) {
	w.pending = append(w.pending, func() {
		w.Width, w.Height = width, height
		w.FBWidth, w.FBHeight = width, height
	})
}

// QueueClose simulates the window manager's close button.
func (w *Window) QueueClose() {
	w.pending = append(w.pending, func() { w.closing = true })
}

func (w *Window) PollEvents() {
	w.Polls++
	pending := w.pending
	w.pending = nil
	for _, ev := range pending {
		ev()
	}
}

func (w *Window) SwapBuffers()                     { w.Swaps++ }
func (w *Window) ShouldClose() bool                { return w.closing }
func (w *Window) SetShouldClose(v bool)            { w.closing = v }
func (w *Window) GetSize() (int, int)              { return w.Width, w.Height }
func (w *Window) GetFramebufferSize() (int, int)   { return w.FBWidth, w.FBHeight }
func (w *Window) GetCursorPos() (float64, float64) { return w.CursorX, w.CursorY }
func (w *Window) SetTitle(title string)            { w.Title = title }
func (w *Window) SetInputHandler(h graphics.InputHandler) {
	w.handler = h
}
func (w *Window) Time() float64 { return w.Clock }

// Call is one recorded Device operation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Device records every call made on it.
type Device struct {
	Calls []Call
	// Pixel is returned by ReadPixel.
	Pixel    [4]float32
	Meshes   []*Mesh
	Programs []*Program
	// ProgramErr, when set, is returned by NewProgram.
	ProgramErr error
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

// Named returns the recorded calls with the given name, in order.
func (d *Device) Named(name string) []Call {
	var out []Call
	for _, c := range d.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded calls.
func (d *Device) Reset() {
	d.Calls = nil
}

func (d *Device) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }
func (d *Device) Clear()                        { d.record("Clear") }
func (d *Device) Uniform2f(location int32, x, y float32) {
	d.record("Uniform2f", location, x, y)
}
func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport", x, y, width, height)
}

func (d *Device) ReadPixel(x, y int) [4]float32 {
	d.record("ReadPixel", x, y)
	return d.Pixel
}

func (d *Device) NewMesh(vertices []float32, components int) graphics.Mesh {
	m := &Mesh{device: d, Vertices: append([]float32(nil), vertices...), Components: components}
	d.Meshes = append(d.Meshes, m)
	d.record("NewMesh", len(vertices), components)
	return m
}

func (d *Device) NewProgram(vertexSource, fragmentSource string, names map[string]string) (graphics.Program, error) {
	if d.ProgramErr != nil {
		return nil, d.ProgramErr
	}
	p := &Program{
		device:         d,
		VertexSource:   vertexSource,
		FragmentSource: fragmentSource,
		Locations: map[string]int32{
			"circleOrigin": 0,
			"radius":       1,
			"windowSize":   2,
			"clickPos":     3,
		},
	}
	d.Programs = append(d.Programs, p)
	d.record("NewProgram")
	return p, nil
}

type Mesh struct {
	device     *Device
	Vertices   []float32
	Components int
	Deleted    int
}

func (m *Mesh) Draw() {
	m.device.record("Draw", len(m.Vertices)/m.Components)
}

func (m *Mesh) Delete() {
	m.Deleted++
	m.device.record("DeleteMesh")
}

type Program struct {
	device         *Device
	VertexSource   string
	FragmentSource string
	Locations      map[string]int32
	Deleted        int
}

func (p *Program) Use() { p.device.record("UseProgram") }

func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.Locations[name]; ok {
		return loc
	}
	return -1
}

func (p *Program) Delete() {
	p.Deleted++
	p.device.record("DeleteProgram")
}

var (
	_ graphics.Window  = (*Window)(nil)
	_ graphics.Device  = (*Device)(nil)
	_ graphics.Mesh    = (*Mesh)(nil)
	_ graphics.Program = (*Program)(nil)
)
