package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/seed"
)

const defaultSeedPath = "brand.yaml"

func newInitCmd(root *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter seed file",
		Long: `Init writes the default seed values to a YAML file (brand.yaml unless a path
is given) so they can be edited and passed to generate --seed. Use "-" to
print to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultSeedPath
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(cmd, root, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, root *rootFlags, path string, force bool) error {
	log, err := root.logger(cmd)
	if err != nil {
		return err
	}

	starter := seed.Defaults()
	starter.BrandName = seed.DefaultBrandName

	if path == "-" {
		return seed.Write(cmd.OutOrStdout(), starter)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return newCommandError("initialize seed", path, errors.New("file already exists"), "Pass --force to overwrite it")
		} else if !errors.Is(err, os.ErrNotExist) {
			return newCommandError("initialize seed", path, err, "Check the path and its permissions")
		}
	}

	if err := writeFile(path, func(w io.Writer) error {
		return seed.Write(w, starter)
	}); err != nil {
		return newCommandError("initialize seed", path, err, "Check that the destination is writable")
	}

	log.WithField("path", path).Info("seed file created")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s. Edit it, then run: brandkit generate --seed %s\n", path, path)
	return nil
}
