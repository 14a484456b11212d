package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid camera config")
	ErrNotFound      = errors.New("camera not found")
)

type CameraId string

// CameraEntity is the registry's view of a camera. IsLatest marks the camera
// that was created most recently.
type CameraEntity struct {
	Id       CameraId
	IsLatest bool
}

// CameraRegistry is implemented by the host scene. Cameras must return the
// scene's cameras in a stable order; the returned pointers are live so marker
// writes land in the scene.
type CameraRegistry interface {
	Cameras() []*CameraEntity
	SetActiveCamera(id CameraId)
	ActiveCamera() (CameraId, bool)
}

func findCamera(registry CameraRegistry, id CameraId) *CameraEntity {
	for _, cam := range registry.Cameras() {
		if cam.Id == id {
			return cam
		}
	}
	return nil
}

// MarkLatest moves the latest marker to id. Every other camera is unmarked,
// which also collapses any duplicate markers left by outside edits. Nothing is
// changed when id is not a camera in the registry.
func MarkLatest(registry CameraRegistry, id CameraId) error {
	target := findCamera(registry, id)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	for _, cam := range registry.Cameras() {
		cam.IsLatest = false
	}
	target.IsLatest = true
	return nil
}

// ResolveLatest returns the first marked camera in registry order.
func ResolveLatest(registry CameraRegistry) (CameraId, bool) {
	for _, cam := range registry.Cameras() {
		if cam.IsLatest {
			return cam.Id, true
		}
	}
	return "", false
}

func Activate(registry CameraRegistry, id CameraId) error {
	if findCamera(registry, id) == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	registry.SetActiveCamera(id)
	return nil
}

// ActivateLatest makes the latest camera active. With no marked camera the
// active camera is left alone and ok is false; that is not an error.
func ActivateLatest(registry CameraRegistry) (id CameraId, ok bool, err error) {
	id, ok = ResolveLatest(registry)
	if !ok {
		return "", false, nil
	}
	if err := Activate(registry, id); err != nil {
		return id, false, err
	}
	return id, true, nil
}
