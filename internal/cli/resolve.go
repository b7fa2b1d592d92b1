package cli

import (
	"context"
	"fmt"
)

func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("event is required (ID or name)")
	}
	ev, err := app.Events.Resolve(ctx, input)
	if err != nil {
		return "", err
	}
	return ev.ID, nil
}

func resolveEventIDs(ctx context.Context, app *App, inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		id, err := resolveEventID(ctx, app, in)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func resolveLocationIDs(ctx context.Context, app *App, inputs []string) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		loc, err := app.Locations.Resolve(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", in, err)
		}
		ids = append(ids, loc.ID)
	}
	return ids, nil
}

func locationNames(ctx context.Context, app *App) (map[string]string, error) {
	locations, err := app.Locations.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names, nil
}
