// Package interactive implements operator prompts on top of promptui.
package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/protoscout-org/protoscout/internal/config"
	"github.com/protoscout-org/protoscout/internal/usecase"
)

// PrompterAdapter asks yes/no questions on the terminal.
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter.
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

// Confirm asks the operator a yes/no question. In non-interactive mode the
// answer is always no, without consulting the terminal.
func (p *PrompterAdapter) Confirm(ctx context.Context, message string) (bool, error) {
	if p.config.NonInteractive {
		return false, nil
	}

	prompt := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err != nil {
		// promptui reports a declined confirm as ErrAbort.
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return true, nil
}

var _ usecase.Prompter = (*PrompterAdapter)(nil)
