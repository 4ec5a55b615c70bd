package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/azuracast/envmigrate/internal/config"
	"github.com/azuracast/envmigrate/internal/doctor"
	"github.com/azuracast/envmigrate/internal/environment"
	"github.com/azuracast/envmigrate/internal/messages"
	"github.com/azuracast/envmigrate/internal/migrate"
)

var runDoctorChecks = doctor.Run

func newDoctorCmd(state *rootState) *cobra.Command {
	var baseDir string
	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.ResolveBaseDir(baseDir, lookupEnv, state.cfg, state.cwd)
			env, err := environment.New(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, env.BaseDirectory())
			results := runDoctorChecks(env, migrate.DefaultRules())
			for _, r := range results {
				printResult(out, r)
			}
			_, _ = fmt.Fprintln(out)

			if !doctor.AllOK(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				if doctor.HasFailures(results) {
					return &SilentExitError{Code: 1}
				}
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseDir, "base-dir", "", messages.MigrateFlagBaseDir)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation == "" {
		return
	}
	for _, line := range strings.Split(r.Recommendation, "\n") {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
	}
}
