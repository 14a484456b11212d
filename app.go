package viewcam

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownPanel    = errors.New("unknown panel")
	ErrMissingResource = errors.New("missing resource")
)

type Module interface {
	Install(app *App, cmd *Commands)
}

type OperatorResult int

const (
	Finished OperatorResult = iota
	Cancelled
)

func (r OperatorResult) String() string {
	switch r {
	case Finished:
		return "FINISHED"
	case Cancelled:
		return "CANCELLED"
	}
	return fmt.Sprintf("OperatorResult(%d)", int(r))
}

// Operator is a user-triggered action. Execute must either fully apply its
// change or leave the scene untouched.
type Operator interface {
	Id() string
	Label() string
	Execute(ctx *Context) (OperatorResult, error)
}

type Panel interface {
	Id() string
	Draw(ctx *Context) PanelLayout
}

// Context is what an operator or panel sees of the app when it runs.
type Context struct {
	Scene    *Scene
	Viewport *Viewport
	Settings *CameraSettings
	Logger   Logger
}

type App struct {
	modules   []Module
	resources map[reflect.Type]any
	operators map[string]Operator
	panels    map[string]Panel
	order     []string
}

func NewApp() *App {
	return &App{
		resources: make(map[reflect.Type]any),
		operators: make(map[string]Operator),
		panels:    make(map[string]Panel),
	}
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, cmd)
	}
	return app
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource looks up a resource by its element type.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := r.(*T)
	return typed, ok
}

func (app *App) registerOperator(op Operator) {
	id := op.Id()
	if _, ok := app.operators[id]; ok {
		panic(fmt.Sprintf("operator %s is already registered", id))
	}
	app.operators[id] = op
	app.order = append(app.order, id)
}

func (app *App) registerPanel(p Panel) {
	id := p.Id()
	if _, ok := app.panels[id]; ok {
		panic(fmt.Sprintf("panel %s is already registered", id))
	}
	app.panels[id] = p
	app.order = append(app.order, id)
}

// Unregister removes operators and panels by id. Unknown ids are ignored.
func (app *App) Unregister(ids ...string) {
	for _, id := range ids {
		delete(app.operators, id)
		delete(app.panels, id)
		app.order = slices.DeleteFunc(app.order, func(s string) bool { return s == id })
	}
}

// Registered lists operator and panel ids in registration order.
func (app *App) Registered() []string {
	return slices.Clone(app.order)
}

func (app *App) Operator(id string) (Operator, bool) {
	op, ok := app.operators[id]
	return op, ok
}

func (app *App) context() (*Context, error) {
	scene, ok := Resource[Scene](app)
	if !ok {
		return nil, fmt.Errorf("%w: scene", ErrMissingResource)
	}
	ctx := &Context{Scene: scene, Logger: app.Logger()}
	ctx.Viewport, _ = Resource[Viewport](app)
	ctx.Settings, _ = Resource[CameraSettings](app)
	return ctx, nil
}

// Invoke runs the operator registered under id against the app's scene.
func (app *App) Invoke(id string) (OperatorResult, error) {
	op, ok := app.operators[id]
	if !ok {
		return Cancelled, fmt.Errorf("%w: %s", ErrUnknownOperator, id)
	}
	ctx, err := app.context()
	if err != nil {
		return Cancelled, err
	}

	logger := app.Logger()
	logger.Debugf("invoking %s (%s)", id, op.Label())
	res, err := op.Execute(ctx)
	if err != nil {
		logger.Warnf("%s: %v", op.Label(), err)
		return res, err
	}
	logger.Debugf("%s: %s", id, res)
	return res, nil
}

func (app *App) DrawPanel(id string) (PanelLayout, error) {
	p, ok := app.panels[id]
	if !ok {
		return PanelLayout{}, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	ctx, err := app.context()
	if err != nil {
		return PanelLayout{}, err
	}
	return p.Draw(ctx), nil
}
