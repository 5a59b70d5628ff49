package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskmill.dev/cli/internal/core/project"
	"taskmill.dev/cli/internal/core/task"
)

// ExecutionService runs registered tasks on behalf of the CLI.
//
// It performs no scheduling: the task action runs synchronously on the
// calling goroutine and any error it returns becomes a non-zero process
// exit at the command boundary.
type ExecutionService struct {
	log *zap.Logger
}

// NewExecutionService creates an ExecutionService
func NewExecutionService(log *zap.Logger) *ExecutionService {
	return &ExecutionService{log: log}
}

// Run looks up the named task in the project and executes its action.
// An unknown task name produces an error listing the tasks the project
// holds.
func (s *ExecutionService) Run(ctx context.Context, proj *project.Project, name string, streams task.IO) error {
	t, err := proj.Task(name)
	if err != nil {
		available := proj.TaskNames()
		if len(available) == 0 {
			return fmt.Errorf("%w (no tasks registered)", err)
		}
		return fmt.Errorf("%w (available: %s)", err, strings.Join(available, ", "))
	}

	s.log.Debug("running task", zap.String("task", name))
	start := time.Now()

	if err := t.Run(ctx, streams); err != nil {
		s.log.Debug("task failed",
			zap.String("task", name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("task %s: %w", name, err)
	}

	s.log.Debug("task finished",
		zap.String("task", name),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
