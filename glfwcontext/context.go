package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	graphics "github.com/richinsley/glcolorpicker/graphics"
	options "github.com/richinsley/glcolorpicker/options"
)

const windowTitle = "colorPicker"

// Context wraps a GLFW window and forwards its input to a graphics.InputHandler.
type Context struct {
	window  *glfw.Window
	handler graphics.InputHandler
}

// New creates a window with an OpenGL 3.3 core context and makes the context current.
func New(options *options.PickerOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(*options.Width, *options.Height, windowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open GLFW window (an OpenGL 3.3 capable GPU is required): %w", err)
	}
	win.MakeContextCurrent()

	c := &Context{
		window: win,
	}

	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

// SetInputHandler registers the handler that receives mouse and key events.
func (c *Context) SetInputHandler(h graphics.InputHandler) {
	c.handler = h
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if c.handler == nil {
		return
	}
	c.handler.OnMouseButton(graphics.MouseButton(button), graphics.Action(action))
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.handler == nil {
		return
	}
	c.handler.OnKey(graphics.Key(key), graphics.Action(action))
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(value bool) {
	c.window.SetShouldClose(value)
}

// PollEvents processes pending events, invoking the input handler for each.
func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetSize() (int, int) {
	return c.window.GetSize()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) GetCursorPos() (float64, float64) {
	return c.window.GetCursorPos()
}

func (c *Context) SetTitle(title string) {
	c.window.SetTitle(title)
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

var _ graphics.Window = (*Context)(nil)

// The callbacks convert GLFW enums by value; these fail to compile if the
// graphics constants drift from GLFW's.
var (
	_ = [1]struct{}{}[graphics.KeyEscape-graphics.Key(glfw.KeyEscape)]
	_ = [1]struct{}{}[graphics.MouseButtonLeft-graphics.MouseButton(glfw.MouseButtonLeft)]
	_ = [1]struct{}{}[graphics.MouseButtonRight-graphics.MouseButton(glfw.MouseButtonRight)]
	_ = [1]struct{}{}[graphics.MouseButtonMiddle-graphics.MouseButton(glfw.MouseButtonMiddle)]
	_ = [1]struct{}{}[graphics.Release-graphics.Action(glfw.Release)]
	_ = [1]struct{}{}[graphics.Press-graphics.Action(glfw.Press)]
	_ = [1]struct{}{}[graphics.Repeat-graphics.Action(glfw.Repeat)]
)
