package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	gldevice "github.com/richinsley/glcolorpicker/gldevice"
	glfwcontext "github.com/richinsley/glcolorpicker/glfwcontext"
	graphics "github.com/richinsley/glcolorpicker/graphics"
	options "github.com/richinsley/glcolorpicker/options"
	picker "github.com/richinsley/glcolorpicker/picker"
	renderer "github.com/richinsley/glcolorpicker/renderer"
	shader "github.com/richinsley/glcolorpicker/shader"
)

// exitFailure is the status for any initialization failure.
const exitFailure = -1

func runPicker(options *options.PickerOptions) int {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Printf("Failed to initialize GLFW: %v", err)
		return exitFailure
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(options)
	if err != nil {
		log.Printf("Failed to create window: %v", err)
		return exitFailure
	}
	defer ctx.Shutdown()

	dev, err := gldevice.New()
	if err != nil {
		log.Printf("Failed to initialize OpenGL: %v", err)
		return exitFailure
	}
	log.Printf("OpenGL version: %s", dev.Version())

	state := picker.New(ctx, dev)
	ctx.SetInputHandler(state)

	loader := shader.NewLoader(dev)
	load := func() (graphics.Program, error) {
		return loader.Load(*options.VertexFile, *options.FragmentFile)
	}

	r, err := renderer.New(ctx, dev, state, load, options)
	if err != nil {
		log.Printf("Failed to create renderer: %v", err)
		return exitFailure
	}
	defer r.Shutdown()

	if *options.Watch {
		w, err := shader.NewWatcher(*options.VertexFile, *options.FragmentFile)
		if err != nil {
			log.Printf("Shader hot reload disabled: %v", err)
		} else {
			defer w.Close()
			r.SetReloadSource(w.Changes())
			log.Printf("Watching %s and %s for changes", *options.VertexFile, *options.FragmentFile)
		}
	}

	log.Println("Starting render loop...")
	r.Run()
	return 0
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL color picker: left click samples the pixel under the cursor, Escape quits")
		flag.PrintDefaults()
		fmt.Printf("Built-in shaders used when the files are missing: %s\n", strings.Join(shader.Builtin(), ", "))
		return
	}

	os.Exit(runPicker(opts))
}
