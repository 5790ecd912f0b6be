package raw

type Volume struct {
	Name       *string           `json:"Name"`
	Driver     *string           `json:"Driver"`
	Mountpoint *string           `json:"Mountpoint"`
	Scope      *string           `json:"Scope"`
	CreatedAt  *string           `json:"CreatedAt"`
	Labels     map[string]string `json:"Labels"`
	Options    map[string]string `json:"Options"`
	UsageData  *VolumeUsageData  `json:"UsageData"`
}

// VolumeUsageData is only filled by the engine for disk usage requests. A
// value of -1 means the engine did not compute it.
type VolumeUsageData struct {
	RefCount *int64 `json:"RefCount"`
	Size     *int64 `json:"Size"`
}
