package viewcam

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: NewApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// UseResources adds resources before any module installs, so modules that
// only create missing resources pick these up.
func (b *AppBuilder) UseResources(resources ...any) *AppBuilder {
	b.app.Commands().AddResources(resources...)

	return b
}

func (b *AppBuilder) Build() *App {
	return b.app.UseModules(b.modules...)
}
