package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/marksync/internal/engine/block"
	"github.com/colonyops/marksync/pkg/iojson"
)

type BlocksCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewBlocksCmd creates a new blocks command
func NewBlocksCmd(flags *Flags) *BlocksCmd {
	return &BlocksCmd{flags: flags}
}

// Register adds the blocks command to the application
func (cmd *BlocksCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "blocks",
		Usage:     "Print the block structure of markdown files",
		UsageText: "marksync blocks [--json] <file|glob>...",
		Description: `Parses each file into its synchronization blocks and prints them as a
table. Arguments are doublestar glob patterns, so 'docs/**/*.md' works.

Use --json for machine-readable output including content hashes.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output blocks as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// fileBlocks pairs a file path with its parsed blocks for JSON output.
type fileBlocks struct {
	File   string        `json:"file"`
	Blocks []block.Block `json:"blocks"`
}

func (cmd *BlocksCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: marksync blocks <file|glob>...")
	}

	var paths []string
	for _, pattern := range c.Args().Slice() {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a pattern, or nothing matched; try it as a literal path.
			matches = []string{pattern}
		}
		paths = append(paths, matches...)
	}

	parser := block.NewParser()

	var results []fileBlocks
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		results = append(results, fileBlocks{
			File:   path,
			Blocks: parser.Parse(string(content)),
		})
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteWith(out, os.Stderr, results)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tID\tTYPE\tLINES\tHASH")
	for _, fb := range results {
		for _, b := range fb.Blocks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\t%s\n",
				fb.File, b.ID, b.Type, b.StartLine, b.EndLine, b.Hash)
		}
	}
	return w.Flush()
}
