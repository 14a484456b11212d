package viewcam

import (
	"fmt"

	"github.com/gekko3d/viewcam/core"
)

const (
	CreateViewportCameraId  = "object.create_viewport_camera"
	SetLatestCameraActiveId = "object.set_latest_camera_active"
	CameraPanelId           = "VIEW3D_PT_viewport_camera"
)

// ViewportCameraModule registers the viewport camera operators and panel. A
// zero Config means the host defaults.
type ViewportCameraModule struct {
	Config core.CameraConfig
}

func (m ViewportCameraModule) Install(app *App, cmd *Commands) {
	cfg := m.Config
	if cfg == (core.CameraConfig{}) {
		cfg = core.DefaultCameraConfig()
	}

	if _, ok := Resource[Scene](app); !ok {
		cmd.AddResources(NewScene())
	}
	if _, ok := Resource[Viewport](app); !ok {
		cmd.AddResources(NewViewport())
	}
	if _, ok := Resource[CameraSettings](app); !ok {
		cmd.AddResources(&CameraSettings{Config: cfg})
	}

	cmd.RegisterOperator(CreateViewportCameraOperator{}, SetLatestCameraActiveOperator{})
	cmd.RegisterPanel(CameraPanel{})
}

// Unregister removes everything ViewportCameraModule registered.
func (m ViewportCameraModule) Unregister(app *App) {
	app.Unregister(CameraPanelId, CreateViewportCameraId, SetLatestCameraActiveId)
}

type CreateViewportCameraOperator struct{}

func (CreateViewportCameraOperator) Id() string    { return CreateViewportCameraId }
func (CreateViewportCameraOperator) Label() string { return "Create Viewport Camera" }

func (CreateViewportCameraOperator) Execute(ctx *Context) (OperatorResult, error) {
	if ctx.Viewport == nil {
		return Cancelled, fmt.Errorf("%w: viewport", ErrMissingResource)
	}
	cfg := core.DefaultCameraConfig()
	if ctx.Settings != nil {
		cfg = ctx.Settings.Config
	}

	desc, err := core.Derive(ctx.Viewport.ViewTransform(), cfg)
	if err != nil {
		return Cancelled, err
	}

	prev := ctx.Scene.SetMode(ObjectMode)
	defer ctx.Scene.SetMode(prev)

	id := ctx.Scene.AddCamera("Camera", desc)
	if err := core.MarkLatest(ctx.Scene, id); err != nil {
		_ = ctx.Scene.Remove(id)
		return Cancelled, err
	}

	obj, _ := ctx.Scene.Object(id)
	ctx.Logger.Infof("created %s at %v (%s, %.1fmm)", obj.Name, desc.Position, cfg.Projection, cfg.FocalLength)
	return Finished, nil
}

type SetLatestCameraActiveOperator struct{}

func (SetLatestCameraActiveOperator) Id() string    { return SetLatestCameraActiveId }
func (SetLatestCameraActiveOperator) Label() string { return "Set Latest Camera Active" }

func (SetLatestCameraActiveOperator) Execute(ctx *Context) (OperatorResult, error) {
	id, ok, err := core.ActivateLatest(ctx.Scene)
	if err != nil {
		return Cancelled, err
	}
	if !ok {
		ctx.Logger.Debugf("no camera is marked as latest, active camera unchanged")
		return Finished, nil
	}
	if obj, found := ctx.Scene.Object(id); found {
		ctx.Logger.Infof("active camera is now %s", obj.Name)
	}
	return Finished, nil
}
