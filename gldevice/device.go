package gldevice

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	graphics "github.com/richinsley/glcolorpicker/graphics"
)

var (
	glInit     = gl.Init
	glInitOnce sync.Once
	glInitErr  error
)

// Device issues OpenGL calls on the current context.
type Device struct{}

// New loads the OpenGL function pointers. A context must be current on the calling thread.
func New() (*Device, error) {
	glInitOnce.Do(func() {
		glInitErr = glInit()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", glInitErr)
	}
	return &Device{}, nil
}

// Version reports the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) ReadPixel(x, y int) [4]float32 {
	var pixel [4]float32
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.FLOAT, gl.Ptr(&pixel[0]))
	return pixel
}

// mesh is a vertex array with a single static buffer bound to attribute 0.
type mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func (d *Device) NewMesh(vertices []float32, components int) graphics.Mesh {
	m := &mesh{count: int32(len(vertices) / components)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, int32(components), gl.FLOAT, false, int32(components*4), gl.PtrOffset(0))
	return m
}

func (m *mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, m.count)
}

func (m *mesh) Delete() {
	gl.BindVertexArray(m.vao)
	gl.DisableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

var _ graphics.Device = (*Device)(nil)
