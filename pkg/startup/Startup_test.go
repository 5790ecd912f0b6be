package startup

import (
	"bytes"
	"github.com/go-playground/assert/v2"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/static"
	"github.com/spf13/pflag"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	const validConfiguration = `
host: tcp://10.0.0.2:2376
apiVersion: "1.47"
tls:
  ca: /certs/ca.pem
  cert: /certs/cert.pem
  key: /certs/key.pem
output: yaml
timeout: 5s
`

	type Wanted struct {
		configuration *configuration.Configuration
	}

	testCases := []struct {
		name     string
		mockFunc func(t *testing.T) *pflag.FlagSet
		wanted   Wanted
	}{
		{
			"File only",
			func(t *testing.T) *pflag.FlagSet {
				flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
				SetFlags(flags)
				return flags
			},
			Wanted{
				configuration: &configuration.Configuration{
					Host:       "tcp://10.0.0.2:2376",
					APIVersion: "1.47",
					TLS: configuration.TLS{
						CA:     "/certs/ca.pem",
						Cert:   "/certs/cert.pem",
						Key:    "/certs/key.pem",
						Verify: true,
					},
					Output:    static.OUTPUT_YAML,
					LogLevel:  static.DEFAULT_LOG_LEVEL,
					Timeout:   "5s",
					Listen:    static.DEFAULT_LISTEN,
					RateLimit: static.DEFAULT_RATE,
				},
			},
		},
		{
			"Flag overrides file",
			func(t *testing.T) *pflag.FlagSet {
				flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
				SetFlags(flags)

				if err := flags.Parse([]string{"-o", "json", "--tls-verify=false"}); err != nil {
					t.Fatal(err)
				}

				return flags
			},
			Wanted{
				configuration: &configuration.Configuration{
					Host:       "tcp://10.0.0.2:2376",
					APIVersion: "1.47",
					TLS: configuration.TLS{
						CA:     "/certs/ca.pem",
						Cert:   "/certs/cert.pem",
						Key:    "/certs/key.pem",
						Verify: false,
					},
					Output:    static.OUTPUT_JSON,
					LogLevel:  static.DEFAULT_LOG_LEVEL,
					Timeout:   "5s",
					Listen:    static.DEFAULT_LISTEN,
					RateLimit: static.DEFAULT_RATE,
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), static.CONFIG_FILE)

			if err := os.WriteFile(path, []byte(validConfiguration), 0644); err != nil {
				t.Fatal(err)
			}

			v, err := NewViper(tc.mockFunc(t))
			assert.Equal(t, nil, err)

			configObj, err := Load(v, path)

			assert.Equal(t, nil, err)
			assert.Equal(t, tc.wanted.configuration, configObj)
		})
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SMRINV_LOGLEVEL", "debug")
	t.Setenv("SMRINV_TLS_CA", "/env/ca.pem")

	v, err := NewViper(nil)
	assert.Equal(t, nil, err)

	configObj, err := Load(v, "")

	assert.Equal(t, nil, err)
	assert.Equal(t, "debug", configObj.LogLevel)
	assert.Equal(t, "/env/ca.pem", configObj.TLS.CA)
}

func TestLoadInvalid(t *testing.T) {
	v, err := NewViper(nil)
	assert.Equal(t, nil, err)

	err = ReadConfig(v, bytes.NewBufferString("output: xml\n"))
	assert.Equal(t, nil, err)

	_, err = Load(v, "")

	assert.NotEqual(t, nil, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), static.CONFIGDIR, static.CONFIG_FILE)
	configObj := configuration.NewConfig()
	configObj.Host = "unix:///run/docker.sock"

	err := Save(configObj, path)
	assert.Equal(t, nil, err)

	v, err := NewViper(nil)
	assert.Equal(t, nil, err)

	loaded, err := Load(v, path)

	assert.Equal(t, nil, err)
	assert.Equal(t, configObj, loaded)
}
