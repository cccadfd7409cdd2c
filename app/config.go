package app

import (
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const defaultConfig = `# Horizon data model

################################## LOGGING ####################################

[logging]

#
# Logging verbosity level.
# Supported values: "DEBUG", "INFO", "WARN", "ERROR", "FATAL" or "PANIC".
#
level = "WARN"

################################ VALIDATION ###################################

[validation]

#
# Report format of the validate command, one of:
#
#   output="text"
#   One block per document, readable in a terminal.
#
#   output="json"
#   One JSON object per document (newline delimited).
#
#   output="logfmt"
#   One logfmt record per document and per issue.
#
output = "text"

#
# Report advisory warnings (e.g. uppercase checksums or coordinates out of
# range) for valid documents. Warnings never make a document invalid.
#
lint = true

################################## SOURCE #####################################

[source]

#
# Maximum time spent loading a single document, retries included.
#
timeout = "1m"

################################## AWS ########################################

[aws]

s3_profile = ""
s3_endpoint = ""
`

const (
	outputText   = "text"
	outputJSON   = "json"
	outputLogfmt = "logfmt"
)

var outputFormats = []string{outputText, outputJSON, outputLogfmt}

type Config struct {
	v *viper.Viper

	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`

	Validation struct {
		Output string `mapstructure:"output"`
		Lint   bool   `mapstructure:"lint"`
	} `mapstructure:"validation"`

	Source struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"source"`

	AWS struct {
		S3Profile  string `mapstructure:"s3_profile"`
		S3Endpoint string `mapstructure:"s3_endpoint"`
	} `mapstructure:"aws"`
}

func (c Config) Validate() error {
	if err := validateOutput(c.Validation.Output); err != nil {
		return err
	}
	if c.Source.Timeout < 0 {
		return errors.Errorf("source timeout cannot be negative: %s", c.Source.Timeout)
	}
	return nil
}

func validateOutput(output string) error {
	for _, f := range outputFormats {
		if output == f {
			return nil
		}
	}
	return errors.Errorf("unknown output format %q, use one of: %s", output, strings.Join(outputFormats, ", "))
}

func (c Config) String() string {
	tmpfile, err := ioutil.TempFile("", "config.*.toml")
	if err != nil {
		return err.Error()
	}
	defer os.Remove(tmpfile.Name())
	defer tmpfile.Close()
	err = c.v.WriteConfigAs(tmpfile.Name())
	if err != nil {
		return err.Error()
	}
	blob, err := ioutil.ReadAll(tmpfile)
	if err != nil {
		return err.Error()
	}
	return string(blob)
}

func loadConfig(c *Config) error {
	v := viper.New()

	v.SetEnvPrefix("HORIZON_DATAMODEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("horizon-datamodel")
	v.SetConfigType("toml")
	v.AddConfigPath("$HOME/.config/")
	v.AddConfigPath("/etc/horizon/")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read our default configuration.
	if err := v.ReadConfig(strings.NewReader(defaultConfig)); err != nil {
		panic(err) // Not in the user path.
	}

	// Include configuration file provided by the user.
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "configuration file could not be read")
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return errors.Wrap(err, "configuration unmarshaling failed")
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "config did not pass validation")
	}

	c.v = v

	return nil
}
