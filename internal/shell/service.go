package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/routeforge/netagent/internal/errs"
)

type ICommand interface {
	Name() string
	Args() []string
	String() string
}

// Service executes host commands. Every invocation blocks its caller for at
// most the configured timeout; a timeout is a failure, never "in progress".
type Service struct {
	timeout time.Duration
}

func NewService(timeout time.Duration) *Service {
	return &Service{
		timeout: timeout,
	}
}

// Exec runs a command and discards its output. The combined output is logged
// when the command exits non-zero.
func (s *Service) Exec(ctx context.Context, command ICommand) (err error) {
	if _, err = s.ExecOutput(ctx, command); err != nil {
		return fmt.Errorf("Exec: %w", err)
	}

	return nil
}

// ExecOutput runs a command and returns its combined output.
func (s *Service) ExecOutput(ctx context.Context, command ICommand) (output []byte, err error) {
	if _, err = exec.LookPath(command.Name()); err != nil {
		return output, fmt.Errorf("ExecOutput: %q: %w", command.Name(), errs.ErrEnvironment)
	}

	execCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	execCmd := exec.CommandContext(execCtx, command.Name(), command.Args()...)
	output, err = execCmd.CombinedOutput()
	if err != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			log.Error().
				Str("command", command.String()).
				Dur("timeout", s.timeout).
				Msg("ExecOutput: command timed out")

			return output, fmt.Errorf("ExecOutput: %q: %w", command.String(), errs.ErrShellTimeout)
		}

		log.Error().
			Err(err).
			Str("command", command.String()).
			Str("output", strings.TrimSpace(string(output))).
			Msg("ExecOutput: exec error")

		return output, fmt.Errorf("ExecOutput: %q: %w", command.String(), err)
	}

	return output, nil
}
