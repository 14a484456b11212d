package viewcam

const activeIcon = "RADIOBUT_ON"

type PanelRow struct {
	ObjectId   ObjectId
	Label      string
	Projection string
	Icon       string
	Active     bool
	Enabled    bool
	Latest     bool
}

type PanelButton struct {
	Operator string
	Text     string
}

type PanelLayout struct {
	Title   string
	Rows    []PanelRow
	Buttons []PanelButton
}

// CameraPanel lists the scene's cameras with the active one flagged, followed
// by the two camera operators.
type CameraPanel struct{}

func (CameraPanel) Id() string { return CameraPanelId }

func (CameraPanel) Draw(ctx *Context) PanelLayout {
	return BuildCameraPanel(ctx.Scene)
}

func BuildCameraPanel(scene *Scene) PanelLayout {
	layout := PanelLayout{Title: "Viewport2Camera"}

	active, hasActive := scene.ActiveCamera()
	for _, obj := range scene.CameraObjects() {
		row := PanelRow{
			ObjectId:   obj.Id,
			Label:      obj.Name,
			Projection: obj.Camera.Config.Projection.Name(),
			Enabled:    !obj.Hidden,
			Latest:     obj.Camera.IsLatest,
		}
		if hasActive && obj.Id == active {
			row.Active = true
			row.Icon = activeIcon
		}
		layout.Rows = append(layout.Rows, row)
	}

	layout.Buttons = []PanelButton{
		{Operator: CreateViewportCameraId, Text: CreateViewportCameraOperator{}.Label()},
		{Operator: SetLatestCameraActiveId, Text: SetLatestCameraActiveOperator{}.Label()},
	}
	return layout
}
