package main

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/softlink/internal/version"
	"github.com/arthur-debert/softlink/pkg/config"
	"github.com/arthur-debert/softlink/pkg/errors"
	"github.com/arthur-debert/softlink/pkg/filesystem"
	"github.com/arthur-debert/softlink/pkg/linker"
	"github.com/arthur-debert/softlink/pkg/logging"
	"github.com/arthur-debert/softlink/pkg/paths"
	"github.com/arthur-debert/softlink/pkg/types"
	"github.com/arthur-debert/softlink/pkg/ui"
)

// NewRootCmd builds the softlink command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		quiet     int
		destDir   string
	)

	rootCmd := &cobra.Command{
		Use:   "softlink SRC_DIR",
		Short: "Install symbolic links safely, backing up anything in the way",
		Long: `softlink installs a declarative set of symbolic links from a source
directory into a destination directory. SRC_DIR must contain a
locations.toml file mapping destination paths (relative to the
destination directory) to source paths (relative to SRC_DIR); an empty
source means "remove the destination".

Nothing at the destination is ever lost: any file, directory or
symlink in the way is first renamed to an unused .bkp_N sibling.
Re-running the same configuration is a no-op.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := types.ClampVerbose(types.MaxVerbose - types.VerboseLevel(quiet))
			return runInstall(cmd, args[0], destDir, level)
		},
	}

	rootCmd.Flags().StringVarP(&destDir, "dest-dir", "d", xdg.Home,
		"Directory to install the links into")
	rootCmd.Flags().CountVarP(&quiet, "quiet", "q",
		fmt.Sprintf("Decrease notice verbosity (can be repeated up to %d times)", int(types.MaxVerbose)))
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runInstall(cmd *cobra.Command, srcDir, destDir string, level types.VerboseLevel) error {
	fsys := filesystem.NewOS()

	srcDir, err := filepath.Abs(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "cannot absolutize %s", srcDir)
	}
	if err := mustBeDir(fsys, srcDir); err != nil {
		return err
	}
	destDir = paths.ExpandHome(destDir)
	if err := mustBeDir(fsys, destDir); err != nil {
		return err
	}

	spec, err := config.Load(fsys, filepath.Join(srcDir, config.LocationsFileName))
	if err != nil {
		return err
	}
	resolved, err := paths.Resolve(spec, srcDir, destDir)
	if err != nil {
		return err
	}

	l := linker.New(fsys, ui.New(cmd.OutOrStdout(), level))
	return l.InstallAll(resolved)
}

func mustBeDir(fsys types.FS, path string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "%s is not accessible", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", path)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "softlink version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
