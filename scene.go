package viewcam

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gekko3d/viewcam/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type ObjectId = core.CameraId

type ObjectKind int

const (
	ObjectEmpty ObjectKind = iota
	ObjectMesh
	ObjectLight
	ObjectCamera
)

var objectKindNames = map[ObjectKind]string{
	ObjectEmpty:  "EMPTY",
	ObjectMesh:   "MESH",
	ObjectLight:  "LIGHT",
	ObjectCamera: "CAMERA",
}

func (k ObjectKind) String() string {
	if s, ok := objectKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ObjectKind(%d)", int(k))
}

func ParseObjectKind(s string) (ObjectKind, error) {
	for k, name := range objectKindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown object kind %q", s)
}

// Mode is the scene's interaction mode. Objects are only added in ObjectMode.
type Mode int

const (
	ObjectMode Mode = iota
	EditMode
)

func (m Mode) String() string {
	if m == EditMode {
		return "EDIT"
	}
	return "OBJECT"
}

type Object struct {
	Id       ObjectId
	Kind     ObjectKind
	Name     string
	Hidden   bool
	Position mgl32.Vec3
	Rotation core.Euler
	Camera   *Camera
}

// Camera is the camera data of an ObjectCamera.
type Camera struct {
	core.CameraEntity
	Config core.CameraConfig
}

// Scene is an ordered collection of objects with an active camera. It is the
// in-process host for the camera tracker and is not safe for concurrent use.
type Scene struct {
	objects   []*Object
	byId      map[ObjectId]*Object
	active    ObjectId
	hasActive bool
	mode      Mode
}

func NewScene() *Scene {
	return &Scene{
		byId: make(map[ObjectId]*Object),
	}
}

func makeObjectId() ObjectId {
	return ObjectId(uuid.NewString())
}

// AddCamera inserts a camera placed by desc at the end of the scene. The name
// is made unique the way the host does it ("Camera", "Camera.001", ...).
func (s *Scene) AddCamera(name string, desc core.CameraDescriptor) ObjectId {
	if name == "" {
		name = "Camera"
	}
	obj := &Object{
		Id:       makeObjectId(),
		Kind:     ObjectCamera,
		Name:     s.uniqueName(name),
		Position: desc.Position,
		Rotation: desc.Rotation,
	}
	obj.Camera = &Camera{
		CameraEntity: core.CameraEntity{Id: obj.Id},
		Config:       desc.Config,
	}
	s.insert(obj)
	return obj.Id
}

// AddObject inserts a non-camera object. Cameras go through AddCamera.
func (s *Scene) AddObject(kind ObjectKind, name string, position mgl32.Vec3) (ObjectId, error) {
	if kind == ObjectCamera {
		return "", fmt.Errorf("cameras must be added with AddCamera")
	}
	if name == "" {
		name = strings.ToLower(kind.String())
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	obj := &Object{
		Id:       makeObjectId(),
		Kind:     kind,
		Name:     s.uniqueName(name),
		Position: position,
	}
	s.insert(obj)
	return obj.Id, nil
}

func (s *Scene) insert(obj *Object) {
	s.objects = append(s.objects, obj)
	s.byId[obj.Id] = obj
}

func (s *Scene) Object(id ObjectId) (*Object, bool) {
	obj, ok := s.byId[id]
	return obj, ok
}

// Objects returns the scene's objects in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Scene) CameraObjects() []*Object {
	var out []*Object
	for _, obj := range s.objects {
		if obj.Kind == ObjectCamera {
			out = append(out, obj)
		}
	}
	return out
}

func (s *Scene) Len() int {
	return len(s.objects)
}

// Remove deletes an object. Removing the active camera leaves the scene
// without one.
func (s *Scene) Remove(id ObjectId) error {
	if _, ok := s.byId[id]; !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	delete(s.byId, id)
	for i, obj := range s.objects {
		if obj.Id == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	if s.hasActive && s.active == id {
		s.active = ""
		s.hasActive = false
	}
	return nil
}

// Rename gives an object a new name, suffixed if it collides with another.
func (s *Scene) Rename(id ObjectId, name string) (string, error) {
	obj, ok := s.byId[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	if name == "" {
		return obj.Name, fmt.Errorf("empty name")
	}
	if name == obj.Name {
		return name, nil
	}
	obj.Name = s.uniqueName(name)
	return obj.Name, nil
}

func (s *Scene) SetHidden(id ObjectId, hidden bool) error {
	obj, ok := s.byId[id]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	obj.Hidden = hidden
	return nil
}

func (s *Scene) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode and returns the previous one.
func (s *Scene) SetMode(m Mode) Mode {
	prev := s.mode
	s.mode = m
	return prev
}

func (s *Scene) Cameras() []*core.CameraEntity {
	var out []*core.CameraEntity
	for _, obj := range s.objects {
		if obj.Kind == ObjectCamera && obj.Camera != nil {
			out = append(out, &obj.Camera.CameraEntity)
		}
	}
	return out
}

func (s *Scene) SetActiveCamera(id core.CameraId) {
	s.active = id
	s.hasActive = true
}

func (s *Scene) ActiveCamera() (core.CameraId, bool) {
	return s.active, s.hasActive
}

func (s *Scene) nameTaken(name string) bool {
	for _, obj := range s.objects {
		if obj.Name == name {
			return true
		}
	}
	return false
}

func (s *Scene) uniqueName(name string) string {
	if !s.nameTaken(name) {
		return name
	}
	stem := splitNameSuffix(name)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s.%03d", stem, n)
		if !s.nameTaken(candidate) {
			return candidate
		}
	}
}

// splitNameSuffix strips a trailing ".NNN" counter from name.
func splitNameSuffix(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return name
	}
	if _, err := strconv.Atoi(name[dot+1:]); err != nil {
		return name
	}
	return name[:dot]
}
