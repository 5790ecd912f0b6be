package raw

// Network is a network object as the engine reports it. Every field may be
// missing depending on the engine version and the network driver.
type Network struct {
	ID         *string                     `json:"Id"`
	Name       *string                     `json:"Name"`
	Driver     *string                     `json:"Driver"`
	Created    *string                     `json:"Created"`
	Scope      *string                     `json:"Scope"`
	Internal   *bool                       `json:"Internal"`
	Attachable *bool                       `json:"Attachable"`
	Ingress    *bool                       `json:"Ingress"`
	EnableIPv6 *bool                       `json:"EnableIPv6"`
	Containers map[string]NetworkContainer `json:"Containers"`
	Labels     map[string]string           `json:"Labels"`
	Options    map[string]string           `json:"Options"`
}

type NetworkContainer struct {
	Name        *string `json:"Name"`
	EndpointID  *string `json:"EndpointID"`
	MacAddress  *string `json:"MacAddress"`
	IPv4Address *string `json:"IPv4Address"`
	IPv6Address *string `json:"IPv6Address"`
}
