package tasks

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner executes build and deployment tasks for the project
type Runner struct {
	logger  *logrus.Logger
	workDir string
}

// NewRunner creates a task runner rooted at the given working directory
func NewRunner(logger *logrus.Logger, workDir string) *Runner {
	if workDir == "" {
		workDir = "."
	}
	return &Runner{
		logger:  logger,
		workDir: workDir,
	}
}

// run executes an external command, streaming its output to the console
func (r *Runner) run(name string, args ...string) error {
	return r.runIn(r.workDir, name, args...)
}

func (r *Runner) runIn(dir, name string, args ...string) error {
	r.logger.WithField("command", append([]string{name}, args...)).Debug("Running command")

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with code %d", name, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// commandExists reports whether an external tool is available on PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
