// Command lightassist runs the light editing tools against a scene in a glfw window.
//
// The window only carries input. Each frame the tools leave their output in the
// GizmoBuffer and UiFrame.Image resources for a host renderer to present; this command
// does not draw them, so the window itself stays blank.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/lightassist"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	scenePath := flag.String("scene", "", "YAML scene file (a demo scene is used when empty)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() { usage(flag.CommandLine) }
	flag.Parse()

	cfg := lightassist.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = lightassist.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg.Debug = cfg.Debug || *debug

	scene := lightassist.DefaultScene()
	if *scenePath != "" {
		var err error
		if scene, err = lightassist.LoadSceneFile(*scenePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	app := lightassist.NewApp().UseModules(
		lightassist.LoggingModule{Prefix: "lightassist", Debug: cfg.Debug},
		lightassist.EditorModule{Config: cfg},
		lightassist.SceneModule{Scene: scene},
	)
	app.Run()

	if ws := lightassist.Resource[lightassist.WindowState](app); ws != nil {
		ws.Destroy()
	}
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
	fmt.Fprintln(out, "\nThe window only receives input. Gizmos and panels are produced for a host renderer and are not drawn here.")
	fmt.Fprintln(out, "Keys: F1 light assistant, F2 light relationships, Del clear selection, Esc quit.")
}
