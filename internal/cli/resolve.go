package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveProjectID accepts a full UUID, a UUID prefix, or a case-insensitive
// exact project name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCatalogItemID accepts a catalog item code or a full UUID.
func resolveCatalogItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("catalog item code is required")
	}
	if c, err := app.Catalog.GetByCode(ctx, input); err == nil {
		return c.ID, nil
	}
	c, err := app.Catalog.GetByID(ctx, input)
	if err != nil {
		return "", fmt.Errorf("catalog item not found: %q", input)
	}
	return c.ID, nil
}
