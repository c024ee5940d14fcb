package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/marksync/internal/tui"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open a markdown file in the synced editor",
		UsageText: "marksync edit <file>",
		Description: `Opens the file in a side-by-side view: editor on the left, rendered
preview on the right. Cursor movement scrolls the preview to the matching
block; scrolling the preview moves the cursor back.

Missing files open as an empty document and are created on save.`,
		Action: cmd.Run,
	})

	return app
}

// Run opens the editor. It is exported so the root command can make edit
// the default action for `marksync <file>`.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: marksync edit <file>")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("edit requires an interactive terminal")
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	m := tui.New(path, string(content), cmd.flags.Config)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
