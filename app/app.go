package app

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultLogLevel = logrus.WarnLevel

var (
	configFile     string
	verbosityLevel string
)

func Run(in io.Reader, out, stderr io.Writer) error {
	c := RootCommand(in, out, stderr)
	return c.Execute()
}

// RootCommand builds the command tree. Reports are written to out while logs
// go to stderr so they can be piped separately.
func RootCommand(in io.Reader, out, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "horizon-datamodel",
		Short:         "Horizon catalog metadata model",
		Long:          "Validate, describe and scaffold metadata records of the Horizon data catalog.",
		SilenceErrors: true,
	}

	cmd.SetOutput(out)
	cmd.Root().SilenceUsage = true

	config := &Config{}
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(config); err != nil {
			return err
		}

		if verbosityLevel == "" {
			verbosityLevel = config.Logging.Level
		}
		if err := setUpLogger(stderr, verbosityLevel); err != nil {
			return err
		}

		return nil
	}

	cmd.AddCommand(NewCmdConfig(out, config))
	cmd.AddCommand(NewCmdValidate(logrus.WithField("cmd", "validate"), in, out, config))
	cmd.AddCommand(NewCmdTemplate(out))
	cmd.AddCommand(NewCmdDescribe(out))
	cmd.AddCommand(NewCmdVersion(out))

	cmd.PersistentFlags().StringVarP(&verbosityLevel, "verbosity", "v", "", "Log level (debug, info, warn, error, fatal, panic)")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file")

	return cmd
}

func setUpLogger(out io.Writer, level string) error {
	if level == "" {
		level = defaultLogLevel.String()
	}
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}
