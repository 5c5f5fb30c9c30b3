package commands

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays the classic grid snake game in the terminal",
	Version: version.Version,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(*cobra.Command, []string) error {
		level, err := log.ParseLevel(config.LogLevel)
		if err != nil {
			return errors.Wrap(err, "invalid SNAKE_LOG_LEVEL")
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	seed    int64
	logFile string
)

func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.Seed, "seed for snake spawns and food placement, 0 picks one from the clock")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	rootCmd.PersistentFlags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// redirectLogs points the standard logger at --log-file, or at fallback when
// no file was given. The returned func closes the file.
func redirectLogs(fallback io.Writer) (func(), error) {
	if logFile == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(ioutil.Discard)
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "failed to close log file:", err)
		}
	}, nil
}
