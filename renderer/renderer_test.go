package renderer

import (
	"errors"
	"io"
	"testing"

	graphics "github.com/richinsley/glcolorpicker/graphics"
	"github.com/richinsley/glcolorpicker/graphics/graphicstest"
	options "github.com/richinsley/glcolorpicker/options"
	picker "github.com/richinsley/glcolorpicker/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	locCircleOrigin int32 = 0
	locRadius       int32 = 1
	locWindowSize   int32 = 2
	locClickPos     int32 = 3
)

type fixture struct {
	win   *graphicstest.Window
	dev   *graphicstest.Device
	state *picker.State
	r     *Renderer
	loads int
}

func newFixture(t *testing.T, configure func(*options.PickerOptions)) *fixture {
	t.Helper()
	opts := options.Default()
	if configure != nil {
		configure(opts)
	}
	f := &fixture{
		win: graphicstest.NewWindow(*opts.Width, *opts.Height),
		dev: graphicstest.NewDevice(),
	}
	f.state = picker.New(f.win, f.dev)
	f.state.SetOutput(io.Discard)
	f.win.SetInputHandler(f.state)

	load := func() (graphics.Program, error) {
		f.loads++
		return f.dev.NewProgram("vs", "fs", nil)
	}
	r, err := New(f.win, f.dev, f.state, load, opts)
	require.NoError(t, err)
	f.r = r
	return f
}

// uniforms returns the values uploaded to loc, in order.
func (f *fixture) uniforms(loc int32) [][2]float32 {
	var out [][2]float32
	for _, c := range f.dev.Named("Uniform2f") {
		if c.Args[0].(int32) == loc {
			out = append(out, [2]float32{c.Args[1].(float32), c.Args[2].(float32)})
		}
	}
	return out
}

func (f *fixture) names() []string {
	var out []string
	for _, c := range f.dev.Calls {
		out = append(out, c.Name)
	}
	return out
}

func TestNewUploadsStaticState(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, 1, f.loads)
	require.Len(t, f.dev.Named("ClearColor"), 1)
	assert.Equal(t, []any{float32(1), float32(1), float32(1), float32(0)}, f.dev.Named("ClearColor")[0].Args)

	assert.Equal(t, [][2]float32{{0, 0}}, f.uniforms(locCircleOrigin))
	assert.Equal(t, [][2]float32{{0.8, 0.9}}, f.uniforms(locRadius))
	assert.Equal(t, [][2]float32{{640, 640}}, f.uniforms(locWindowSize))

	require.Len(t, f.dev.Meshes, 1)
	assert.Equal(t, QuadVertices, f.dev.Meshes[0].Vertices)
	assert.Equal(t, 2, f.dev.Meshes[0].Components)
}

func TestNewFailsWhenProgramFails(t *testing.T) {
	win := graphicstest.NewWindow(640, 640)
	dev := graphicstest.NewDevice()
	state := picker.New(win, dev)
	load := func() (graphics.Program, error) { return nil, errors.New("compile error") }

	_, err := New(win, dev, state, load, options.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile error")
}

func TestFrameOrder(t *testing.T) {
	f := newFixture(t, nil)
	f.dev.Reset()

	f.r.Frame()

	assert.Equal(t, []string{"Clear", "Uniform2f", "Viewport", "Draw"}, f.names())
	assert.Equal(t, 1, f.win.Polls)
	assert.Equal(t, 1, f.win.Swaps)
	// a 4 vertex triangle strip
	assert.Equal(t, []any{4}, f.dev.Named("Draw")[0].Args)
}

func TestNoClickSendsSentinel(t *testing.T) {
	f := newFixture(t, nil)
	for i := 0; i < 3; i++ {
		f.r.Frame()
	}
	assert.Equal(t, [][2]float32{{-1, -1}, {-1, -1}, {-1, -1}}, f.uniforms(locClickPos))
}

func TestClickReachesNextFrame(t *testing.T) {
	f := newFixture(t, nil)
	f.r.Frame()

	f.win.QueueClick(graphics.MouseButtonLeft, 100, 200)
	f.r.Frame()
	f.r.Frame()

	assert.Equal(t, [][2]float32{{-1, -1}, {100, 200}, {100, 200}}, f.uniforms(locClickPos))
}

func TestRightClickDoesNotMoveClick(t *testing.T) {
	f := newFixture(t, nil)
	f.win.QueueClick(graphics.MouseButtonRight, 100, 200)
	f.win.QueueClick(graphics.MouseButtonMiddle, 300, 20)
	f.r.Frame()
	assert.Equal(t, [][2]float32{{-1, -1}}, f.uniforms(locClickPos))
}

func TestViewportFollowsWindowSize(t *testing.T) {
	sizes := [][2]int{{1, 1}, {800, 480}, {1920, 1080}, {3, 7000}}
	f := newFixture(t, nil)
	for _, s := range sizes {
		f.win.QueueResize(s[0], s[1])
		f.dev.Reset()
		f.r.Frame()
		vp := f.dev.Named("Viewport")
		require.Len(t, vp, 1)
		assert.Equal(t, []any{0, 0, s[0], s[1]}, vp[0].Args)
	}
}

func TestResizeKeepsInitialWindowSizeUniform(t *testing.T) {
	f := newFixture(t, nil)
	f.win.QueueResize(800, 480)
	f.r.Frame()

	assert.Equal(t, []any{0, 0, 800, 480}, f.dev.Named("Viewport")[0].Args)
	assert.Equal(t, [][2]float32{{640, 640}}, f.uniforms(locWindowSize))
}

func TestTrackWindowSize(t *testing.T) {
	f := newFixture(t, func(o *options.PickerOptions) { *o.TrackWindowSize = true })
	f.r.Frame()
	f.win.QueueResize(800, 480)
	f.r.Frame()
	f.r.Frame()

	assert.Equal(t, [][2]float32{{640, 640}, {800, 480}}, f.uniforms(locWindowSize))
}

func TestEscapeStopsRun(t *testing.T) {
	f := newFixture(t, nil)
	f.win.QueueKey(graphics.KeyEscape, graphics.Press)

	f.r.Run()

	assert.True(t, f.win.ShouldClose())
	assert.Equal(t, 1, f.win.Polls)
	assert.Equal(t, 1, f.win.Swaps)
}

func TestWindowCloseStopsRun(t *testing.T) {
	f := newFixture(t, nil)
	f.r.Frame()
	f.win.QueueClose()

	f.r.Run()
	assert.Equal(t, 2, f.win.Swaps)
}

func TestShutdownReleasesOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.r.Shutdown()
	f.r.Shutdown()

	assert.Equal(t, 1, f.dev.Meshes[0].Deleted)
	assert.Equal(t, 1, f.dev.Programs[0].Deleted)
}

func TestReloadReplacesProgram(t *testing.T) {
	f := newFixture(t, nil)
	changes := make(chan string, 1)
	f.r.SetReloadSource(changes)

	f.win.QueueClick(graphics.MouseButtonLeft, 10, 20)
	f.r.Frame()
	changes <- "/tmp/colorPickerFrag.glsl"
	f.r.Frame()

	assert.Equal(t, 2, f.loads)
	require.Len(t, f.dev.Programs, 2)
	assert.Equal(t, 1, f.dev.Programs[0].Deleted)
	assert.Equal(t, 0, f.dev.Programs[1].Deleted)
	// static uniforms are pushed again for the new program
	assert.Len(t, f.uniforms(locRadius), 2)
	assert.Equal(t, [][2]float32{{640, 640}, {640, 640}}, f.uniforms(locWindowSize))
	assert.Equal(t, [][2]float32{{10, 20}, {10, 20}}, f.uniforms(locClickPos))

	f.r.Shutdown()
	assert.Equal(t, 1, f.dev.Programs[1].Deleted)
}

func TestReloadFailureKeepsProgram(t *testing.T) {
	f := newFixture(t, nil)
	changes := make(chan string, 1)
	f.r.SetReloadSource(changes)

	f.dev.ProgramErr = errors.New("syntax error")
	changes <- "frag.glsl"
	f.r.Frame()

	require.Len(t, f.dev.Programs, 1)
	assert.Equal(t, 0, f.dev.Programs[0].Deleted)
	assert.Len(t, f.dev.Named("Draw"), 1)
}

func TestFPSTitle(t *testing.T) {
	f := newFixture(t, func(o *options.PickerOptions) { *o.ShowFPS = true })
	for i := 0; i < 10; i++ {
		f.win.Clock = float64(i) * 0.0625
		f.r.Frame()
	}
	// one report, at t=0.3125 after five counted frames
	assert.Equal(t, "colorPicker @fps(16.0)", f.win.Title)
}

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(0)
	_, ok := c.Tick(0.1)
	assert.False(t, ok)
	_, ok = c.Tick(0.25)
	assert.False(t, ok)
	fps, ok := c.Tick(0.5)
	require.True(t, ok)
	assert.InDelta(t, 4.0, fps, 1e-9)

	_, ok = c.Tick(0.6)
	assert.False(t, ok)
	fps, ok = c.Tick(1.0)
	require.True(t, ok)
	assert.InDelta(t, 4.0, fps, 1e-9)
}
