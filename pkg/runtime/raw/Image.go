package raw

type Image struct {
	ID          *string           `json:"Id"`
	ParentID    *string           `json:"ParentId"`
	RepoTags    []string          `json:"RepoTags"`
	RepoDigests []string          `json:"RepoDigests"`
	Created     *int64            `json:"Created"`
	Size        *int64            `json:"Size"`
	Containers  *int64            `json:"Containers"`
	Labels      map[string]string `json:"Labels"`
}
