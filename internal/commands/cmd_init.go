package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/marksync/internal/core/config"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
}

// NewInitCmd creates a new init command
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a marksync configuration with an interactive wizard",
		UsageText: "marksync init [options]",
		Description: `Writes a config file with your chosen sync mode, preview theme, and pane
split. The wizard prompts for each setting; --yes accepts the defaults.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()

	if !cmd.yes {
		if err := cmd.prompt(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\n", path)
	return nil
}

func (cmd *InitCmd) prompt(cfg *config.Config) error {
	ratio := strconv.Itoa(cfg.TUI.PreviewRatio)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Sync mode").
			Description("How the preview follows the cursor").
			Options(
				huh.NewOption("semantic (match blocks by content)", "semantic"),
				huh.NewOption("line-based (proportional scrolling only)", "line-based"),
				huh.NewOption("hybrid (semantic with proportional fallback)", "hybrid"),
			).
			Value(&cfg.Sync.Mode),
		huh.NewSelect[string]().
			Title("Preview theme").
			Options(
				huh.NewOption("dark", "dark"),
				huh.NewOption("light", "light"),
				huh.NewOption("notty (no colors)", "notty"),
			).
			Value(&cfg.TUI.Theme),
		huh.NewInput().
			Title("Preview pane width (% of terminal, 10-90)").
			Value(&ratio).
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("must be a number")
				}
				if n < 10 || n > 90 {
					return fmt.Errorf("must be between 10 and 90")
				}
				return nil
			}),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	cfg.TUI.PreviewRatio, _ = strconv.Atoi(ratio)
	return nil
}
