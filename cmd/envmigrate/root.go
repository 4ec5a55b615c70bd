package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/azuracast/envmigrate/internal/config"
	"github.com/azuracast/envmigrate/internal/messages"
)

var (
	getwd      = os.Getwd
	loadConfig = config.LoadOptional
	newLogger  = buildLogger
)

// rootState is shared by subcommands once PersistentPreRunE has run.
type rootState struct {
	verbose    bool
	configPath string

	cwd    string
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	state := &rootState{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.logger != nil {
				_ = state.logger.Sync()
			}
		},
	}
	cmd.Flags().BoolP("version", "", false, messages.RootVersionFlag)
	cmd.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, messages.RootFlagVerbose)
	cmd.PersistentFlags().StringVar(&state.configPath, "config", "", messages.RootFlagConfig)

	cmd.AddCommand(newMigrateCmd(state), newDoctorCmd(state), newTextCmd())
	return cmd
}

// init loads the tool config and builds the logger.
func (s *rootState) init() error {
	cwd, err := getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(s.configPath, cwd)
	if err != nil {
		return err
	}
	level := cfg.Level()
	if s.verbose {
		level = zapcore.DebugLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf(messages.RootLoggerInitFailedFmt, err)
	}
	s.cwd = cwd
	s.cfg = cfg
	s.logger = logger
	logger.Debug("configuration loaded", zap.String("cwd", cwd), zap.String("config", s.configPath))
	return nil
}

// buildLogger returns a production logger writing to stderr at level.
func buildLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
