package shader

import (
	"fmt"

	graphics "github.com/richinsley/glcolorpicker/graphics"
	translator "github.com/richinsley/glcolorpicker/translator"
)

// Compiler links vertex and fragment sources into a program.
type Compiler interface {
	NewProgram(vertexSource, fragmentSource string, names map[string]string) (graphics.Program, error)
}

// TranslateFunc converts a GLSL ES source of the given stage to desktop GLSL,
// returning the translated code and the original-to-translated name map.
type TranslateFunc func(source, stage string) (string, map[string]string, error)

// Loader turns a pair of shader files into a linked program.
type Loader struct {
	Compiler  Compiler
	Translate TranslateFunc
}

func NewLoader(c Compiler) *Loader {
	return &Loader{
		Compiler:  c,
		Translate: translator.Translate,
	}
}

// Load reads, translates if needed, and links the two shaders.
func (l *Loader) Load(vertexPath, fragmentPath string) (graphics.Program, error) {
	names := make(map[string]string)

	vs, err := l.source(vertexPath, "vertex", names)
	if err != nil {
		return nil, err
	}
	fs, err := l.source(fragmentPath, "fragment", names)
	if err != nil {
		return nil, err
	}

	prog, err := l.Compiler.NewProgram(vs, fs, names)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program from %s and %s: %w", vertexPath, fragmentPath, err)
	}
	return prog, nil
}

func (l *Loader) source(path, stage string, names map[string]string) (string, error) {
	src, err := ReadSource(path)
	if err != nil {
		return "", err
	}
	if !NeedsTranslation(src) {
		return src, nil
	}
	code, mapped, err := l.Translate(src, stage)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range mapped {
		names[k] = v
	}
	return code, nil
}
