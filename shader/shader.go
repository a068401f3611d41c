package shader

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed glsl/*.glsl
var builtin embed.FS

// ReadSource returns the contents of the shader file at path. When the file
// does not exist and a built-in shader has the same base name, the built-in
// source is returned instead.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	data, berr := builtin.ReadFile("glsl/" + filepath.Base(path))
	if berr != nil {
		return "", fmt.Errorf("failed to read shader %s: %w", path, err)
	}
	return string(data), nil
}

// Builtin returns the names of the embedded shader sources.
func Builtin() []string {
	entries, _ := builtin.ReadDir("glsl")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// NeedsTranslation reports whether source is GLSL ES 3.00 and must be
// translated before a desktop core context can compile it.
func NeedsTranslation(source string) bool {
	return version(source) == "300 es"
}

// version returns the argument of the first #version directive, or "".
func version(source string) string {
	sc := bufio.NewScanner(strings.NewReader(source))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "#version"); ok {
			return strings.Join(strings.Fields(rest), " ")
		}
	}
	return ""
}
