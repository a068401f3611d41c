package graphics

// Program is a linked GPU program.
type Program interface {
	Use()
	// UniformLocation returns -1 when the program has no active uniform by that name.
	UniformLocation(name string) int32
	Delete()
}

// Mesh is GPU-resident vertex data together with its layout.
type Mesh interface {
	// Draw issues one triangle-strip draw call over all vertices.
	Draw()
	Delete()
}

// Device is the subset of OpenGL the picker uses.
type Device interface {
	ClearColor(r, g, b, a float32)
	Clear()
	Uniform2f(location int32, x, y float32)
	Viewport(x, y, width, height int)
	// NewMesh uploads vertices bound to attribute 0, components floats per vertex.
	NewMesh(vertices []float32, components int) Mesh
	// ReadPixel reads one RGBA pixel from the current framebuffer. Coordinates
	// are in framebuffer pixels with GL's bottom-left origin.
	ReadPixel(x, y int) [4]float32
	// NewProgram compiles and links a vertex/fragment pair. names maps the
	// uniform names used by callers to the names present in the sources.
	NewProgram(vertexSource, fragmentSource string, names map[string]string) (Program, error)
}
