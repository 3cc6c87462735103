package command

// RegisterAll registers every built-in command on registry.
func RegisterAll(registry *Registry, deps *Dependencies) {
	registry.Register(
		NewHelpCommand(deps),
		NewConfirmCommand(deps),
		NewQueueCommand(deps),
		NewPollCommand(deps),
		NewWhoisCommand(deps),
		NewUserCommand(deps),
		NewHashCommand(deps),
		NewBase64Command(deps),
		NewRomanCommand(deps),
		NewRollCommand(deps),
		NewShuffleCommand(deps),
		NewUptimeCommand(deps),
		NewFigletCommand(deps),
		NewNoteCommand(deps),
	)
}
