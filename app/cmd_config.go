package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewCmdConfig(out io.Writer, config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after merging the defaults, the configuration file and the HORIZON_DATAMODEL_* environment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doConfig(out, config)
		},
	}
}

func doConfig(out io.Writer, config *Config) error {
	if used := config.v.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "# Configuration file: %s\n", used)
	}
	_, err := fmt.Fprintf(out, "%s", config)
	return err
}
