// Package picker holds the click state of the color picker and reacts to input.
package picker

import (
	"fmt"
	"io"
	"os"

	graphics "github.com/richinsley/glcolorpicker/graphics"
)

// NoClick is the click coordinate held before the first left click.
const NoClick = -1

// State is the application state mutated by input events. It is owned by the
// render thread; handlers run synchronously from Window.PollEvents.
type State struct {
	window graphics.Window
	device graphics.Device
	out    io.Writer

	clickX, clickY int
	color          [4]float32
	sampled        bool
}

// New returns a state with no click recorded. Sampled colors are printed to stdout.
func New(window graphics.Window, device graphics.Device) *State {
	return &State{
		window: window,
		device: device,
		out:    os.Stdout,
		clickX: NoClick,
		clickY: NoClick,
	}
}

// SetOutput redirects the printed color samples.
func (s *State) SetOutput(w io.Writer) {
	s.out = w
}

// Click returns the last click position in window coordinates.
func (s *State) Click() (int, int) {
	return s.clickX, s.clickY
}

// LastColor returns the RGBA value sampled by the last left click.
func (s *State) LastColor() ([4]float32, bool) {
	return s.color, s.sampled
}

// OnMouseButton samples the pixel under the cursor and records the click on a left press.
func (s *State) OnMouseButton(button graphics.MouseButton, action graphics.Action) {
	if button != graphics.MouseButtonLeft || action != graphics.Press {
		return
	}
	xpos, ypos := s.window.GetCursorPos()

	fx, fy := s.framebufferPixel(xpos, ypos)
	s.color = s.device.ReadPixel(fx, fy)
	s.sampled = true
	fmt.Fprintf(s.out, "%g %g %g\n", s.color[0], s.color[1], s.color[2])

	s.clickX = int(xpos)
	s.clickY = int(ypos)
}

// OnKey closes the window when Escape is pressed.
func (s *State) OnKey(key graphics.Key, action graphics.Action) {
	if key == graphics.KeyEscape && action == graphics.Press {
		s.window.SetShouldClose(true)
	}
}

// framebufferPixel maps a cursor position to the framebuffer pixel under it.
// Window coordinates start at the top-left; GL reads from the bottom-left.
func (s *State) framebufferPixel(xpos, ypos float64) (int, int) {
	fbWidth, fbHeight := s.window.GetFramebufferSize()
	winWidth, winHeight := s.window.GetSize()
	scaleX, scaleY := 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	px := int(xpos * scaleX)
	py := fbHeight - 1 - int(ypos*scaleY)
	return px, py
}

var _ graphics.InputHandler = (*State)(nil)
