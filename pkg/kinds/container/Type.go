package container

const KIND string = "container"

var ALIASES = []string{"containers", "ps"}

// Container is the normalized form of an engine container summary.
//
// Containers are identified by their primary name (the first engine name with
// the leading slash removed). The engine accepts names for removal.
type Container struct {
	ID        string             `json:"id" yaml:"id"`
	Name      string             `json:"name" yaml:"name"`
	Names     []string           `json:"names" yaml:"names"`
	Image     string             `json:"image" yaml:"image"`
	ImageID   string             `json:"image_id" yaml:"image_id"`
	Command   string             `json:"command" yaml:"command"`
	CreatedAt string             `json:"created_at" yaml:"created_at"`
	State     string             `json:"state" yaml:"state"`
	Status    string             `json:"status" yaml:"status"`
	Labels    map[string]string  `json:"labels" yaml:"labels"`
	Networks  map[string]Network `json:"networks" yaml:"networks"`
	Mounts    []Mount            `json:"mounts" yaml:"mounts"`
	Ports     []Port             `json:"ports" yaml:"ports"`
}

// Network is keyed by network name in Container.Networks.
type Network struct {
	NetworkID string `json:"network_id" yaml:"network_id"`
	IPAddress string `json:"ip_address" yaml:"ip_address"`
}

type Mount struct {
	Type        string `json:"type" yaml:"type"`
	Name        string `json:"name" yaml:"name"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	ReadWrite   *bool  `json:"read_write" yaml:"read_write"`
}

type Port struct {
	IP          string `json:"ip" yaml:"ip"`
	PrivatePort uint16 `json:"private_port" yaml:"private_port"`
	PublicPort  uint16 `json:"public_port" yaml:"public_port"`
	Type        string `json:"type" yaml:"type"`
}

type Kind struct{}
