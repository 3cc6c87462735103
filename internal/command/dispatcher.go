package command

import (
	"context"
	"maps"

	"github.com/kapu/botkit-go/internal/domain"
)

// CommandEvent is one parsed command waiting to run.
type CommandEvent struct {
	Type   domain.CommandType
	Params map[string]any
}

type Dispatcher interface {
	Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error)
}

type sequentialDispatcher struct {
	registry *Registry
}

// NewSequentialDispatcher creates a dispatcher that executes command events in
// the order they are received.
func NewSequentialDispatcher(registry *Registry) Dispatcher {
	return &sequentialDispatcher{registry: registry}
}

func (d *sequentialDispatcher) Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error) {
	if d == nil || d.registry == nil {
		return 0, nil
	}

	executed := 0
	for _, event := range events {
		if event.Type == domain.CommandUnknown || !event.Type.IsValid() {
			continue
		}
		if err := d.registry.Execute(ctx, cmdCtx, event.Type.String(), cloneParams(event.Params)); err != nil {
			return executed, err
		}
		executed++
	}
	return executed, nil
}

func cloneParams(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	return maps.Clone(src)
}
