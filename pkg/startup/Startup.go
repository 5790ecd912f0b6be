package startup

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/static"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FLAGS maps command line flags to configuration keys.
var FLAGS = map[string]string{
	"host":        "host",
	"api-version": "apiVersion",
	"tls-ca":      "tls.ca",
	"tls-cert":    "tls.cert",
	"tls-key":     "tls.key",
	"tls-verify":  "tls.verify",
	"snapshot":    "snapshot",
	"output":      "output",
	"log":         "logLevel",
	"timeout":     "timeout",
	"listen":      "listen",
	"rate-limit":  "rateLimit",
}

func SetFlags(flags *pflag.FlagSet) {
	defaults := configuration.NewConfig()

	flags.String("config", "", "Path to the configuration file")
	flags.String("host", defaults.Host, "Engine host, DOCKER_HOST is used when empty")
	flags.String("api-version", defaults.APIVersion, "Engine API version, negotiated when empty")
	flags.String("tls-ca", defaults.TLS.CA, "CA certificate for the engine connection")
	flags.String("tls-cert", defaults.TLS.Cert, "Client certificate for the engine connection")
	flags.String("tls-key", defaults.TLS.Key, "Client key for the engine connection")
	flags.Bool("tls-verify", defaults.TLS.Verify, "Verify the engine certificate")
	flags.String("snapshot", defaults.Snapshot, "Read resources from a JSON snapshot instead of the engine")
	flags.StringP("output", "o", defaults.Output, fmt.Sprintf("Output format: %s", strings.Join(static.OUTPUTS, "|")))
	flags.String("log", defaults.LogLevel, "Log level: debug, info, warn, error")
	flags.String("timeout", defaults.Timeout, "Timeout for a single runtime call")
	flags.String("listen", defaults.Listen, "API listening address")
	flags.Float64("rate-limit", defaults.RateLimit, "API requests per second, 0 disables limiting")
}

// NewViper layers defaults, the optional .env file, SMRINV_ environment
// variables and the flags that were set explicitly.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	err := godotenv.Load()

	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	v := viper.New()
	defaults := configuration.NewConfig()

	v.SetDefault("host", defaults.Host)
	v.SetDefault("apiVersion", defaults.APIVersion)
	v.SetDefault("tls.ca", defaults.TLS.CA)
	v.SetDefault("tls.cert", defaults.TLS.Cert)
	v.SetDefault("tls.key", defaults.TLS.Key)
	v.SetDefault("tls.verify", defaults.TLS.Verify)
	v.SetDefault("snapshot", defaults.Snapshot)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("logLevel", defaults.LogLevel)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("listen", defaults.Listen)
	v.SetDefault("rateLimit", defaults.RateLimit)

	v.SetEnvPrefix(static.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags == nil {
		return v, nil
	}

	for name, key := range FLAGS {
		flag := flags.Lookup(name)

		if flag == nil {
			continue
		}

		if err = v.BindPFlag(key, flag); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Load reads the configuration file when one is given or present in the
// default location, unmarshals the layered settings and validates them.
func Load(v *viper.Viper, path string) (*configuration.Configuration, error) {
	if path == "" {
		path = DefaultPath()

		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	if path != "" {
		file, err := os.Open(path)

		if err != nil {
			return nil, errors.Wrap(err, "failed to open configuration")
		}

		defer file.Close()

		if err = ReadConfig(v, file); err != nil {
			return nil, err
		}
	}

	configObj := configuration.NewConfig()

	err := v.Unmarshal(configObj)

	if err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}

	err = configObj.Validate()

	if err != nil {
		return nil, err
	}

	return configObj, nil
}

func ReadConfig(v *viper.Viper, reader io.Reader) error {
	v.SetConfigType("yaml")

	if err := v.ReadConfig(reader); err != nil {
		return errors.Wrap(err, "failed to read configuration")
	}

	return nil
}

func Save(configObj *configuration.Configuration, path string) error {
	yamlObj, err := yaml.Marshal(*configObj)

	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0750)

	if err != nil {
		return err
	}

	return os.WriteFile(path, yamlObj, 0644)
}

func DefaultPath() string {
	home, err := os.UserHomeDir()

	if err != nil {
		return ""
	}

	return filepath.Join(home, static.ROOTDIR, static.CONFIGDIR, static.CONFIG_FILE)
}
