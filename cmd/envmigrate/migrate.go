package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azuracast/envmigrate/internal/config"
	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/filelock"
	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/migrate"
	"github.com/azuracast/envmigrate/internal/prompt"
	"github.com/azuracast/envmigrate/internal/settingsfile"
)

var (
	lookupEnv        = os.LookupEnv
	newMigrateSystem = func() migrate.System { return migrate.RealSystem{} }
	runMigration     = migrate.Run
	newPromptUI      = func() prompt.UI { return prompt.NewHuhUI() }
	withLock         = filelock.WithLock
)

func newMigrateCmd(state *rootState) *cobra.Command {
	var (
		baseDir      string
		dryRun       bool
		escapeQuotes bool
		interactive  bool
	)
	cmd := &cobra.Command{
		Use:   messages.MigrateUse,
		Short: messages.MigrateShort,
		Long:  messages.MigrateLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.ResolveBaseDir(baseDir, lookupEnv, state.cfg, state.cwd)
			env, err := environment.New(dir)
			if err != nil {
				return err
			}

			opts := migrate.Options{
				Render: settingsfile.Options{EscapeQuotes: escapeQuotes || state.cfg.Output.EscapeQuotes},
				DryRun: dryRun,
				Logger: state.logger,
			}
			out := cmd.OutOrStdout()
			sys := newMigrateSystem()
			if interactive && !dryRun {
				confirmed, err := confirmMigration(out, sys, env, opts)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(out, messages.MigrateCancelled)
					return nil
				}
			}

			var result *migrate.Result
			run := func() error {
				var err error
				result, err = runMigration(sys, env, opts)
				return err
			}
			if dryRun {
				err = run()
			} else {
				err = withLock(filelock.PathFor(env.BaseDirectory()), run)
			}
			if err != nil {
				return err
			}

			if result.DryRun {
				printDryRun(out, result)
				return nil
			}
			for _, path := range result.Removed {
				state.logger.Info("legacy file removed", zap.String("path", path))
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.MigrateSuccess))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", "", messages.MigrateFlagBaseDir)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.MigrateFlagDryRun)
	cmd.Flags().BoolVar(&escapeQuotes, "escape-quotes", false, messages.MigrateFlagEscapeQuotes)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, messages.MigrateFlagInteractive)
	return cmd
}

// confirmMigration previews the migration and asks the operator to approve it.
// Aborting the prompt counts as a decline.
func confirmMigration(out io.Writer, sys migrate.System, env environment.Environment, opts migrate.Options) (bool, error) {
	opts.DryRun = true
	preview, err := runMigration(sys, env, opts)
	if err != nil {
		return false, err
	}
	printDryRun(out, preview)

	confirmed := false
	title := fmt.Sprintf(messages.MigrateConfirmTitleFmt, preview.Path)
	description := fmt.Sprintf(messages.MigrateConfirmDescriptionFmt, len(preview.Removed))
	if err := newPromptUI().Confirm(title, description, &confirmed); err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

func printDryRun(out io.Writer, result *migrate.Result) {
	_, _ = fmt.Fprint(out, color.YellowString(messages.MigrateDryRunHeaderFmt, result.Path))
	if result.Diff == "" {
		_, _ = fmt.Fprintln(out, messages.MigrateDryRunNoChanges)
	} else {
		_, _ = fmt.Fprint(out, result.Diff)
	}
	for _, path := range result.Removed {
		_, _ = fmt.Fprintf(out, messages.MigrateDryRunRemoveFmt, path)
	}
	if len(result.Changes) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, messages.MigrateChangesHeader)
	for _, change := range result.Changes {
		_, _ = fmt.Fprintf(out, messages.MigrateChangeLineFmt, change.String())
	}
}
