package deliver

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/youruser/pixtopdf/internal/util"
)

// DefaultShareCommand is the Termux share helper; the file path is appended.
var DefaultShareCommand = []string{"termux-share", "-a", "send"}

// CommandSharer writes the artifact to a temporary file named after it and
// passes that path to an OS share command.
type CommandSharer struct {
	Command []string

	run func(ctx context.Context, name string, args ...string) error
}

func NewCommandSharer(command []string) *CommandSharer {
	if len(command) == 0 {
		command = DefaultShareCommand
	}
	return &CommandSharer{Command: command, run: runCommand}
}

func runCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (s *CommandSharer) Share(ctx context.Context, a Artifact) error {
	if len(s.Command) == 0 {
		return errors.New("no share command")
	}
	dir, err := os.MkdirTemp("", "pixtopdf-share-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path, err := util.WriteFileIn(dir, a.Name, a.Data)
	if err != nil {
		return err
	}
	run := s.run
	if run == nil {
		run = runCommand
	}
	args := append(append([]string{}, s.Command[1:]...), path)
	return run(ctx, s.Command[0], args...)
}
