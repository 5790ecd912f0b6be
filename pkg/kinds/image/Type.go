package image

const KIND string = "image"

var ALIASES = []string{"images", "img"}

const UNTAGGED = "<none>:<none>"

// Image is the normalized form of an engine image summary.
//
// Images have no name of their own. The name is the first real repository
// tag, falling back to the image id for untagged images, because the engine
// removes images by either. GetID returns the same value. An image that
// carries several tags is removed by id, since removing a tag only untags it,
// and can be found by any of its tags.
//
// Containers is nil when the engine did not count the containers using the
// image (it reports -1 in that case).
type Image struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	RepoTags    []string          `json:"repo_tags" yaml:"repo_tags"`
	RepoDigests []string          `json:"repo_digests" yaml:"repo_digests"`
	ParentID    string            `json:"parent_id" yaml:"parent_id"`
	CreatedAt   string            `json:"created_at" yaml:"created_at"`
	Size        int64             `json:"size" yaml:"size"`
	Containers  *int64            `json:"containers" yaml:"containers"`
	Labels      map[string]string `json:"labels" yaml:"labels"`
}

type Kind struct{}
