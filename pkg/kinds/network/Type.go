package network

const KIND string = "network"

var ALIASES = []string{"networks", "net"}

// Network is the normalized form of an engine network.
//
// Networks are identified by name rather than by engine id: the engine
// removes networks by name, so GetID returns the name as well.
//
// Internal, Attachable, Ingress and EnableIPv6 are nil when the runtime did
// not report them, which is not the same as false. Containers is nil when the
// runtime did not report attachments at all.
type Network struct {
	ID         string              `json:"id" yaml:"id"`
	Name       string              `json:"name" yaml:"name"`
	Driver     string              `json:"driver" yaml:"driver"`
	CreatedAt  string              `json:"created_at" yaml:"created_at"`
	Scope      string              `json:"scope" yaml:"scope"`
	Internal   *bool               `json:"internal" yaml:"internal"`
	Attachable *bool               `json:"attachable" yaml:"attachable"`
	Ingress    *bool               `json:"ingress" yaml:"ingress"`
	EnableIPv6 *bool               `json:"enable_ipv6" yaml:"enable_ipv6"`
	Containers map[string]Endpoint `json:"containers" yaml:"containers"`
	Labels     map[string]string   `json:"labels" yaml:"labels"`
	Options    map[string]string   `json:"options" yaml:"options"`
}

// Endpoint is the attachment of one container; the map key is the container id.
type Endpoint struct {
	Name        string `json:"name" yaml:"name"`
	EndpointID  string `json:"endpoint_id" yaml:"endpoint_id"`
	MacAddress  string `json:"mac_address" yaml:"mac_address"`
	IPv4Address string `json:"ipv4_address" yaml:"ipv4_address"`
	IPv6Address string `json:"ipv6_address" yaml:"ipv6_address"`
}

type Kind struct{}
