package viewcam

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gekko3d/viewcam/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneSnapshot_SaveLoad(t *testing.T) {
	s := NewScene()
	_, err := s.AddObject(ObjectMesh, "Cube", mgl32.Vec3{0, 0, 1})
	require.NoError(t, err)
	a := s.AddCamera("Camera", core.CameraDescriptor{
		Position: mgl32.Vec3{7.5, -6.25, 5},
		Rotation: core.Euler{X: 1.25, Y: 0, Z: 0.75},
		Config:   core.CameraConfig{Projection: core.Panoramic, FocalLength: 18, SensorWidth: 36, DepthOfField: true},
	})
	b := s.AddCamera("Camera", testDescriptor(mgl32.Vec3{1, 2, 3}))
	require.NoError(t, core.MarkLatest(s, b))
	require.NoError(t, core.Activate(s, a))
	require.NoError(t, s.SetHidden(a, true))
	s.SetMode(EditMode)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, SaveScene(s, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	t.Logf("Saved YAML:\n%s", raw)
	assert.Contains(t, string(raw), "projection: PANO")

	loaded, err := LoadScene(path)
	require.NoError(t, err)

	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
	assert.Equal(t, EditMode, loaded.Mode())

	active, ok := loaded.ActiveCamera()
	require.True(t, ok)
	assert.Equal(t, a, active)

	latest, ok := core.ResolveLatest(loaded)
	require.True(t, ok)
	assert.Equal(t, b, latest)

	obj, ok := loaded.Object(a)
	require.True(t, ok)
	assert.True(t, obj.Hidden)
	assert.Equal(t, core.Panoramic, obj.Camera.Config.Projection)
}

func TestSceneSnapshot_Errors(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cases := map[string]string{
		"bad kind":       "objects:\n  - id: x\n    kind: TEAPOT\n    name: t\n",
		"bad mode":       "mode: SCULPT\nobjects: []\n",
		"dangling":       "active_camera: nope\nobjects: []\n",
		"duplicate id":   "objects:\n  - {id: x, kind: MESH, name: a}\n  - {id: x, kind: MESH, name: b}\n",
		"bad projection": "objects:\n  - id: c\n    kind: CAMERA\n    name: c\n    camera: {projection: FISHEYE, focal_length: 50, sensor_width: 36}\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), strings.ReplaceAll(name, " ", "_")+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		_, err := LoadScene(path)
		assert.Error(t, err, name)
	}
}

func TestSceneFromSnapshot_RejectsInvalidCameraConfig(t *testing.T) {
	for name, cfg := range map[string]core.CameraConfig{
		"zero lens":       {Projection: core.Perspective, FocalLength: 0, SensorWidth: 36},
		"negative sensor": {Projection: core.Orthographic, FocalLength: 50, SensorWidth: -1},
	} {
		data := SceneData{Objects: []ObjectData{{ID: "c", Kind: "CAMERA", Name: "Camera", Camera: &cfg}}}
		_, err := SceneFromSnapshot(data)
		assert.ErrorIs(t, err, core.ErrInvalidConfig, name)
	}

	path := filepath.Join(t.TempDir(), "lens.yaml")
	body := "objects:\n  - id: c\n    kind: CAMERA\n    name: c\n    camera: {projection: PERSP, focal_length: 0, sensor_width: 36}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	_, err := LoadScene(path)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestSceneFromSnapshot_DefaultsCameraConfig(t *testing.T) {
	s, err := SceneFromSnapshot(SceneData{Objects: []ObjectData{{Kind: "CAMERA", Name: "Bare"}}})
	require.NoError(t, err)

	cams := s.CameraObjects()
	require.Len(t, cams, 1)
	assert.NotEmpty(t, cams[0].Id)
	assert.Equal(t, core.DefaultCameraConfig(), cams[0].Camera.Config)
	assert.Equal(t, cams[0].Id, cams[0].Camera.Id)
}
