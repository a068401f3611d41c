package graphics

// Key identifies a keyboard key. Values follow GLFW's key codes.
type Key int

// KeyEscape is the only key the picker reacts to.
const KeyEscape Key = 256

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Action is the state transition reported for a key or button.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// InputHandler receives input events. Implementations are called synchronously
// from Window.PollEvents on the render thread.
type InputHandler interface {
	OnMouseButton(button MouseButton, action Action)
	OnKey(key Key, action Action)
}

// Window defines the interface for a window owning an OpenGL context.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	// GetSize returns the window size in screen coordinates.
	GetSize() (int, int)
	GetFramebufferSize() (int, int)
	// GetCursorPos returns the cursor position in window coordinates, origin top-left.
	GetCursorPos() (float64, float64)
	SetTitle(title string)
	SetInputHandler(h InputHandler)
	Time() float64
}
