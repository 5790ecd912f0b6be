package image

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"k8s.io/utils/ptr"
	"maps"
	"slices"
)

func FromRaw(object raw.Image) Image {
	image := Image{
		ID:          ptr.Deref(object.ID, ""),
		RepoTags:    slices.Clone(object.RepoTags),
		RepoDigests: slices.Clone(object.RepoDigests),
		ParentID:    ptr.Deref(object.ParentID, ""),
		CreatedAt:   common.Unix(object.Created),
		Size:        ptr.Deref(object.Size, 0),
		Containers:  common.Known(object.Containers),
		Labels:      maps.Clone(object.Labels),
	}

	image.Name = Reference(image.ID, image.RepoTags)

	return image
}

// Reference picks the name an image is addressed by.
func Reference(id string, tags []string) string {
	if references := Tags(tags); len(references) > 0 {
		return references[0]
	}

	return id
}

// Tags drops the placeholder the engine reports for dangling images.
func Tags(tags []string) []string {
	references := make([]string, 0, len(tags))

	for _, tag := range tags {
		if tag != "" && tag != UNTAGGED {
			references = append(references, tag)
		}
	}

	return references
}

func List(ctx context.Context, client iruntime.Client) ([]Image, error) {
	images, err := client.ImageList(ctx)

	if err != nil {
		return nil, err
	}

	return common.Normalize(images, FromRaw, Image.GetName), nil
}

// Delete removes the image. Removing one of several tags only untags the
// image, so images carrying more than one tag are removed by id.
func Delete(ctx context.Context, client iruntime.Client, image Image) error {
	return client.ImageRemove(ctx, image.RemovalKey())
}
