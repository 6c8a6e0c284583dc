package naming

import (
	"context"
	"fmt"
	"strings"
)

const (
	askMessage       = "What is the name of your addon?"
	collisionMessage = "An add-on with the provided name already exists. What is the name of your addon?"
	invalidMessage   = "Add-on names must be a single directory name. What is the name of your addon?"
)

// Prompter asks the user for a value, offering def as the default answer.
type Prompter interface {
	Ask(ctx context.Context, message, def string) (string, error)
}

// Taken reports whether a name is already used by an existing add-on.
type Taken interface {
	Has(name string) bool
}

// Negotiate returns a valid add-on name that taken does not contain.
// explicit, when non-empty, is used as the first candidate. There is no
// retry limit: the loop ends when the prompter yields a free name or fails.
func Negotiate(ctx context.Context, p Prompter, taken Taken, explicit, def string) (string, error) {
	candidate := strings.TrimSpace(explicit)
	if candidate == "" {
		answer, err := ask(ctx, p, askMessage, def)
		if err != nil {
			return "", err
		}
		candidate = answer
	}

	for {
		var message string
		switch {
		case Validate(candidate) != nil:
			message = invalidMessage
		case taken.Has(candidate):
			message = collisionMessage
		default:
			return candidate, nil
		}

		answer, err := ask(ctx, p, message, def)
		if err != nil {
			return "", err
		}
		candidate = answer
	}
}

func ask(ctx context.Context, p Prompter, message, def string) (string, error) {
	answer, err := p.Ask(ctx, message, def)
	if err != nil {
		return "", fmt.Errorf("reading add-on name: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = def
	}
	return answer, nil
}

// Validate checks that name can be used as a single directory name.
func Validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("add-on name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("invalid add-on name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid add-on name %q: must not contain path separators", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("invalid add-on name %q: hidden names are ignored by Local", name)
	}
	return nil
}
