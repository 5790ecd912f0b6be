package static

// Directory Constants
const (
	ROOTDIR   = ".smrinv"
	CONFIGDIR = "config"
)

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Config Constants
const (
	ENV_PREFIX      = "SMRINV"
	CONFIG_FILE     = "config.yaml"
	DEFAULT_LISTEN  = "127.0.0.1:8080"
	DEFAULT_TIMEOUT = "30s"
	DEFAULT_RATE    = 20
	API_PREFIX      = "/api/v1"
)

// Platform Constants
const (
	PLATFORM_DOCKER   = "docker"
	PLATFORM_SNAPSHOT = "snapshot"
)

// Kind Constants
const (
	KIND_NETWORK   = "network"
	KIND_CONTAINER = "container"
	KIND_IMAGE     = "image"
	KIND_VOLUME    = "volume"
)

// Operation Constants
const (
	OPERATION_LIST   = "list"
	OPERATION_DELETE = "delete"
)

// Output Constants
const (
	OUTPUT_TABLE = "table"
	OUTPUT_JSON  = "json"
	OUTPUT_YAML  = "yaml"
)

var OUTPUTS = []string{OUTPUT_TABLE, OUTPUT_JSON, OUTPUT_YAML}
