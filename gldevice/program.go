package gldevice

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	graphics "github.com/richinsley/glcolorpicker/graphics"
)

type program struct {
	id    uint32
	names map[string]string
}

func (p *program) Use() {
	gl.UseProgram(p.id)
}

func (p *program) UniformLocation(name string) int32 {
	if mapped, ok := p.names[name]; ok {
		name = mapped
	}
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

func (p *program) Delete() {
	gl.DeleteProgram(p.id)
}

// NewProgram links a vertex/fragment pair. names maps the uniform names callers
// ask for to the names the sources actually declare, as produced by shader
// translation; names absent from the map are looked up unchanged.
func (d *Device) NewProgram(vertexSource, fragmentSource string, names map[string]string) (graphics.Program, error) {
	id, err := newProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return &program{id: id, names: names}, nil
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}
