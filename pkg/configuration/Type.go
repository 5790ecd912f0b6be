package configuration

type Configuration struct {
	Host       string  `yaml:"host"`
	APIVersion string  `yaml:"apiVersion"`
	TLS        TLS     `yaml:"tls"`
	Snapshot   string  `yaml:"snapshot"`
	Output     string  `yaml:"output" validate:"oneof=table json yaml"`
	LogLevel   string  `yaml:"logLevel" validate:"oneof=debug info warn error"`
	Timeout    string  `yaml:"timeout" validate:"required"`
	Listen     string  `yaml:"listen" validate:"required,hostname_port"`
	RateLimit  float64 `yaml:"rateLimit" validate:"gte=0"`
}

type TLS struct {
	CA     string `yaml:"ca"`
	Cert   string `yaml:"cert" validate:"required_with=Key"`
	Key    string `yaml:"key" validate:"required_with=Cert"`
	Verify bool   `yaml:"verify"`
}
