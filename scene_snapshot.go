package viewcam

import (
	"fmt"
	"os"

	"github.com/gekko3d/viewcam/core"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type ObjectData struct {
	ID       ObjectId           `yaml:"id"`
	Kind     string             `yaml:"kind"`
	Name     string             `yaml:"name"`
	Hidden   bool               `yaml:"hidden,omitempty"`
	Position mgl32.Vec3         `yaml:"position,flow"`
	Rotation mgl32.Vec3         `yaml:"rotation,flow"`
	Camera   *core.CameraConfig `yaml:"camera,omitempty"`
	IsLatest bool               `yaml:"is_latest,omitempty"`
}

type SceneData struct {
	Mode         string       `yaml:"mode"`
	ActiveCamera ObjectId     `yaml:"active_camera,omitempty"`
	Objects      []ObjectData `yaml:"objects"`
}

func (s *Scene) Snapshot() SceneData {
	data := SceneData{Mode: s.mode.String()}
	if id, ok := s.ActiveCamera(); ok {
		data.ActiveCamera = id
	}
	for _, obj := range s.objects {
		od := ObjectData{
			ID:       obj.Id,
			Kind:     obj.Kind.String(),
			Name:     obj.Name,
			Hidden:   obj.Hidden,
			Position: obj.Position,
			Rotation: obj.Rotation.Vec3(),
		}
		if obj.Camera != nil {
			cfg := obj.Camera.Config
			od.Camera = &cfg
			od.IsLatest = obj.Camera.IsLatest
		}
		data.Objects = append(data.Objects, od)
	}
	return data
}

// SceneFromSnapshot rebuilds a scene keeping ids, names, order and markers.
func SceneFromSnapshot(data SceneData) (*Scene, error) {
	s := NewScene()
	switch data.Mode {
	case "", "OBJECT":
		s.mode = ObjectMode
	case "EDIT":
		s.mode = EditMode
	default:
		return nil, fmt.Errorf("unknown mode %q", data.Mode)
	}

	for i, od := range data.Objects {
		kind, err := ParseObjectKind(od.Kind)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if od.ID == "" {
			od.ID = makeObjectId()
		}
		if _, dup := s.byId[od.ID]; dup {
			return nil, fmt.Errorf("object %d: duplicate id %s", i, od.ID)
		}
		obj := &Object{
			Id:       od.ID,
			Kind:     kind,
			Name:     od.Name,
			Hidden:   od.Hidden,
			Position: od.Position,
			Rotation: core.Euler{X: od.Rotation.X(), Y: od.Rotation.Y(), Z: od.Rotation.Z()},
		}
		if kind == ObjectCamera {
			cfg := core.DefaultCameraConfig()
			if od.Camera != nil {
				cfg = *od.Camera
			}
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			obj.Camera = &Camera{
				CameraEntity: core.CameraEntity{Id: od.ID, IsLatest: od.IsLatest},
				Config:       cfg,
			}
		}
		s.insert(obj)
	}

	if data.ActiveCamera != "" {
		if err := core.Activate(s, data.ActiveCamera); err != nil {
			return nil, fmt.Errorf("active camera: %w", err)
		}
	}
	return s, nil
}

func SaveScene(s *Scene, filename string) error {
	bytes, err := yaml.Marshal(s.Snapshot())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, bytes, 0644); err != nil {
		return fmt.Errorf("save scene %s: %w", filename, err)
	}
	return nil
}

func LoadScene(filename string) (*Scene, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", filename, err)
	}

	var data SceneData
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load scene %s: %w", filename, err)
	}
	s, err := SceneFromSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", filename, err)
	}
	return s, nil
}
