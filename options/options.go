package options

import "flag"

const (
	DefaultWidth       = 640
	DefaultHeight      = 640
	DefaultVertexFile  = "colorPickerVert.glsl"
	DefaultFragFile    = "colorPickerFrag.glsl"
	DefaultRadiusInner = 0.8
	DefaultRadiusOuter = 0.9
)

type PickerOptions struct {
	Help            *bool
	Width           *int
	Height          *int
	VertexFile      *string
	FragmentFile    *string
	RadiusInner     *float64
	RadiusOuter     *float64
	TrackWindowSize *bool // Re-upload windowSize when the window is resized
	Watch           *bool // Reload shaders when their files change
	ShowFPS         *bool // Show frames per second in the window title
}

// Register defines the picker flags on fs. The defaults reproduce the
// program's fixed behavior when no flags are given.
func Register(fs *flag.FlagSet) *PickerOptions {
	return &PickerOptions{
		Help:            fs.Bool("help", false, "Show help message"),
		Width:           fs.Int("width", DefaultWidth, "Initial window width"),
		Height:          fs.Int("height", DefaultHeight, "Initial window height"),
		VertexFile:      fs.String("vert", DefaultVertexFile, "Vertex shader source file"),
		FragmentFile:    fs.String("frag", DefaultFragFile, "Fragment shader source file"),
		RadiusInner:     fs.Float64("radius-inner", DefaultRadiusInner, "Inner circle radius in normalized device coordinates"),
		RadiusOuter:     fs.Float64("radius-outer", DefaultRadiusOuter, "Outer circle radius in normalized device coordinates"),
		TrackWindowSize: fs.Bool("track-window-size", false, "Update the windowSize uniform when the window is resized"),
		Watch:           fs.Bool("watch", false, "Reload shaders when their source files change"),
		ShowFPS:         fs.Bool("fps", false, "Show frames per second in the window title"),
	}
}

// Default returns options holding the flag defaults without parsing anything.
func Default() *PickerOptions {
	return Register(flag.NewFlagSet("colorpicker", flag.ContinueOnError))
}
