package viewcam

// Commands is the handle modules use to register themselves with an App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) RegisterOperator(ops ...Operator) *Commands {
	for _, op := range ops {
		cmd.app.registerOperator(op)
	}
	return cmd
}

func (cmd *Commands) RegisterPanel(panels ...Panel) *Commands {
	for _, p := range panels {
		cmd.app.registerPanel(p)
	}
	return cmd
}
