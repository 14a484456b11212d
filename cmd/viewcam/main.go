package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gekko3d/viewcam"
	"github.com/gekko3d/viewcam/core"
	"github.com/go-gl/mathgl/mgl32"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: viewcam [-scene file] [-debug] <command> [flags]

commands:
  list              list cameras in the scene
  create            create a camera from the viewport pose
  activate-latest   make the most recently created camera active
`)
	flag.PrintDefaults()
}

func main() {
	scenePath := flag.String("scene", "scene.yaml", "Scene file to read and update")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Stdout, os.Stderr, *debug, *scenePath, flag.Arg(0), flag.Args()[1:]); err != nil {
		viewcam.NewDefaultLogger("viewcam", *debug).Errorf("%v", err)
		os.Exit(1)
	}
}

func run(out, errOut io.Writer, debug bool, scenePath, command string, args []string) error {
	scene, err := viewcam.LoadScene(scenePath)
	missing := errors.Is(err, fs.ErrNotExist)
	if missing {
		scene, err = viewcam.NewScene(), nil
	}
	if err != nil {
		return err
	}

	viewport := viewcam.NewViewport()
	settings := &viewcam.CameraSettings{Config: core.DefaultCameraConfig()}

	app := viewcam.NewAppBuilder().
		UseResources(scene, viewport, settings).
		UseModule(
			viewcam.LoggingModule{Prefix: "viewcam", Debug: debug, Out: out, Err: errOut},
			viewcam.ViewportCameraModule{},
		).
		Build()
	if missing {
		app.Logger().Infof("%s does not exist, starting with an empty scene", scenePath)
	}

	switch command {
	case "list":
		layout, err := app.DrawPanel(viewcam.CameraPanelId)
		if err != nil {
			return err
		}
		printPanel(out, layout)
		return nil

	case "create":
		if err := parseCreateFlags(args, viewport, settings); err != nil {
			return err
		}
		if _, err := app.Invoke(viewcam.CreateViewportCameraId); err != nil {
			return err
		}

	case "activate-latest":
		if _, err := app.Invoke(viewcam.SetLatestCameraActiveId); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return viewcam.SaveScene(scene, scenePath)
}

// rigidEps tolerates hand-typed decimals such as 0.7071.
const rigidEps = 1e-3

func parseCreateFlags(args []string, viewport *viewcam.Viewport, settings *viewcam.CameraSettings) error {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	view := flags.String("view", "", "World-to-view matrix, 16 comma-separated column-major floats")
	pos := flags.String("pos", "", "Viewport position x,y,z")
	rot := flags.String("rot", "0,0,0", "Viewport rotation x,y,z in degrees (XYZ order)")
	kind := flags.String("type", settings.Config.Projection.String(), "Projection: PERSP, ORTHO or PANO")
	lens := flags.Float64("lens", float64(settings.Config.FocalLength), "Focal length in mm")
	sensor := flags.Float64("sensor", float64(settings.Config.SensorWidth), "Sensor width in mm")
	dof := flags.Bool("dof", settings.Config.DepthOfField, "Enable depth of field")
	if err := flags.Parse(args); err != nil {
		return err
	}

	projection, err := core.ParseProjectionKind(*kind)
	if err != nil {
		return err
	}
	settings.Config = core.CameraConfig{
		Projection:   projection,
		FocalLength:  float32(*lens),
		SensorWidth:  float32(*sensor),
		DepthOfField: *dof,
	}

	switch {
	case *view != "" && *pos != "":
		return fmt.Errorf("-view and -pos are mutually exclusive")
	case *view != "":
		m, err := parseFloats(*view, 16)
		if err != nil {
			return fmt.Errorf("-view: %w", err)
		}
		copy(viewport.ViewMatrix[:], m)
		if !viewport.ViewTransform().IsRigid(rigidEps) {
			return fmt.Errorf("-view: matrix is not a rigid transform")
		}
	case *pos != "":
		p, err := parseFloats(*pos, 3)
		if err != nil {
			return fmt.Errorf("-pos: %w", err)
		}
		r, err := parseFloats(*rot, 3)
		if err != nil {
			return fmt.Errorf("-rot: %w", err)
		}
		viewport.SetPose(mgl32.Vec3{p[0], p[1], p[2]}, core.EulerFromDegrees(r[0], r[1], r[2]))
	}
	return nil
}

func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(parts))
	}
	out := make([]float32, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func printPanel(w io.Writer, layout viewcam.PanelLayout) {
	fmt.Fprintln(w, layout.Title)
	if len(layout.Rows) == 0 {
		fmt.Fprintln(w, "  (no cameras)")
	}
	for _, row := range layout.Rows {
		active := " "
		if row.Active {
			active = "*"
		}
		latest := ""
		if row.Latest {
			latest = " (latest)"
		}
		enabled := "enabled"
		if !row.Enabled {
			enabled = "hidden"
		}
		fmt.Fprintf(w, "  %s %-16s %-12s %-8s %s%s\n", active, row.Label, row.Projection, enabled, row.ObjectId, latest)
	}
}
