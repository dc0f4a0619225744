package generator

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// ClientBuilder rebuilds the client bundle after entity files change.
type ClientBuilder interface {
	Build(ctx context.Context, dir, packageManager string) error
}

// CommandBuilder runs `<packageManager> run webpack:build` in the project root.
type CommandBuilder struct {
	Stdout io.Writer
	Stderr io.Writer
}

var execCommand = exec.CommandContext

// Build implements ClientBuilder.
func (b CommandBuilder) Build(ctx context.Context, dir, packageManager string) error {
	if packageManager == "" {
		packageManager = "npm"
	}
	cmd := execCommand(ctx, packageManager, "run", "webpack:build")
	cmd.Dir = dir
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s run webpack:build: %w", packageManager, err)
	}
	return nil
}
