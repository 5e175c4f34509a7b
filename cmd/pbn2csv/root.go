package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kamilkhanlab/nonogram-ilp/convert"
)

// logger is built in PersistentPreRunE; tests replace it with zap.NewNop().
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "pbn2csv <id>",
	Short: "Convert a .cwc nonogram export to GAMS input files",
	Long: "pbn2csv reads <id>.cwc and writes p<id>.inc plus the block length and\n" +
		"color tables p<id>sR.csv, p<id>cR.csv, p<id>sC.csv and p<id>cC.csv.",
	Args:              cobra.ExactArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initLogger,
	RunE:              runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("dir", "d", ".", "Directory containing <id>.cwc")
	rootCmd.Flags().StringP("out", "o", "", "Output directory (default: same as --dir)")
	rootCmd.Flags().Bool("dry-run", false, "Parse and render only, do not write files")
	rootCmd.Flags().Bool("strict", false, "Fail if the input ends before all sections are read")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log each conversion step to stderr")

	_ = viper.BindPFlag("dir", rootCmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("out", rootCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("PBN2CSV")
	viper.AutomaticEnv()
}

// buildLogger writes JSON logs to stderr at Warn, or Debug when verbose.
// Nothing a successful run logs is above Info.
var buildLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func initLogger(_ *cobra.Command, _ []string) error {
	l, err := buildLogger(viper.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger = l
	return nil
}

func runConvert(_ *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	emitter := convert.NewEventEmitter()
	emitter.On(logEvent(logger))

	opts := convert.Options{
		ID:        args[0],
		InputDir:  viper.GetString("dir"),
		OutputDir: viper.GetString("out"),
		DryRun:    viper.GetBool("dry_run"),
		Strict:    viper.GetBool("strict"),
		Events:    emitter,
	}

	res, err := convert.Run(opts)
	if err != nil {
		var missing *convert.MissingInputError
		if !errors.As(err, &missing) {
			logger.Debug("conversion failed", zap.Error(err))
		}
		return err
	}

	if res.MissingLines > 0 {
		logger.Info("input ended early, missing lines read as blank",
			zap.String("run_id", res.RunID),
			zap.String("input", opts.ID+".cwc"),
			zap.Int("missing_lines", res.MissingLines))
	}
	return nil
}

// logEvent returns a listener that logs conversion events at debug level.
func logEvent(l *zap.Logger) func(convert.Event) {
	return func(e convert.Event) {
		fields := []zap.Field{
			zap.String("event", string(e.Type)),
			zap.String("run_id", e.RunID),
		}
		for _, k := range slices.Sorted(maps.Keys(e.Data)) {
			fields = append(fields, zap.Any(k, e.Data[k]))
		}
		l.Debug("pbn2csv", fields...)
	}
}
