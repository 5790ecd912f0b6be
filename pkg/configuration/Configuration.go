package configuration

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/static"
	"time"
)

func NewConfig() *Configuration {
	return &Configuration{
		TLS: TLS{
			Verify: true,
		},
		Output:    static.OUTPUT_TABLE,
		LogLevel:  static.DEFAULT_LOG_LEVEL,
		Timeout:   static.DEFAULT_TIMEOUT,
		Listen:    static.DEFAULT_LISTEN,
		RateLimit: static.DEFAULT_RATE,
	}
}

func (configuration *Configuration) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(configuration); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if _, err := configuration.Deadline(); err != nil {
		return err
	}

	return nil
}

// Deadline is the time budget for a single runtime call.
func (configuration *Configuration) Deadline() (time.Duration, error) {
	timeout, err := time.ParseDuration(configuration.Timeout)

	if err != nil {
		return 0, errors.Wrapf(err, "invalid timeout %q", configuration.Timeout)
	}

	if timeout <= 0 {
		return 0, errors.Errorf("timeout must be positive, got %s", configuration.Timeout)
	}

	return timeout, nil
}

func (configuration *Configuration) Platform() string {
	if configuration.Snapshot != "" {
		return static.PLATFORM_SNAPSHOT
	}

	return static.PLATFORM_DOCKER
}

func (tls TLS) Enabled() bool {
	return tls.CA != "" || tls.Cert != ""
}
