package raw

type Container struct {
	ID              *string                   `json:"Id"`
	Names           []string                  `json:"Names"`
	Image           *string                   `json:"Image"`
	ImageID         *string                   `json:"ImageID"`
	Command         *string                   `json:"Command"`
	Created         *int64                    `json:"Created"`
	State           *string                   `json:"State"`
	Status          *string                   `json:"Status"`
	Labels          map[string]string         `json:"Labels"`
	Ports           []ContainerPort           `json:"Ports"`
	Mounts          []ContainerMount          `json:"Mounts"`
	NetworkSettings *ContainerNetworkSettings `json:"NetworkSettings"`
}

type ContainerPort struct {
	IP          *string `json:"IP"`
	PrivatePort *uint16 `json:"PrivatePort"`
	PublicPort  *uint16 `json:"PublicPort"`
	Type        *string `json:"Type"`
}

type ContainerMount struct {
	Type        *string `json:"Type"`
	Name        *string `json:"Name"`
	Source      *string `json:"Source"`
	Destination *string `json:"Destination"`
	RW          *bool   `json:"RW"`
}

type ContainerNetworkSettings struct {
	Networks map[string]ContainerEndpoint `json:"Networks"`
}

type ContainerEndpoint struct {
	NetworkID *string `json:"NetworkID"`
	IPAddress *string `json:"IPAddress"`
}
