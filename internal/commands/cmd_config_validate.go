package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/marksync/internal/core/config"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "marksync config validate [options]",
				Description: "Validates the configuration file, checking field values, the config file itself, and log file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	verr := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)
	warnings := cmd.flags.Config.Warnings()

	if cmd.format == "json" {
		return cmd.outputJSON(c, verr, warnings)
	}
	return cmd.outputText(c, verr, warnings)
}

// fieldErrors flattens a criterio validation error into field/message pairs.
func fieldErrors(err error) []fieldError {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []fieldError{{Field: "config", Message: err.Error()}}
	}

	out := make([]fieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fieldError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, verr error, warnings []config.ValidationWarning) error {
	out := struct {
		Valid    bool                       `json:"valid"`
		Errors   []fieldError               `json:"errors,omitempty"`
		Warnings []config.ValidationWarning `json:"warnings,omitempty"`
	}{
		Valid:    verr == nil,
		Errors:   fieldErrors(verr),
		Warnings: warnings,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (cmd *ConfigValidateCmd) outputText(c *cli.Command, verr error, warnings []config.ValidationWarning) error {
	w := c.Root().Writer

	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %s: %s\n", warn.Category, warn.Message)
		if warn.Item != "" {
			fmt.Fprintf(w, "  Item: %s\n", warn.Item)
		}
	}

	errs := fieldErrors(verr)
	for _, fe := range errs {
		fmt.Fprintf(w, "error: %s: %s\n", fe.Field, fe.Message)
	}

	if verr == nil {
		fmt.Fprintln(w, "Configuration is valid")
		return nil
	}

	fmt.Fprintf(w, "%d error(s) found\n", len(errs))
	return cli.Exit("", 1)
}
