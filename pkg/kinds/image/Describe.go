package image

import (
	"github.com/simplecontainer/inventory/pkg/describe"
	"k8s.io/utils/ptr"
	"slices"
	"strconv"
)

func (image Image) GetID() string {
	return image.GetName()
}

func (image Image) GetName() string {
	return image.Name
}

// Matches accepts the name, the id or any repository tag of the image.
func (image Image) Matches(name string) bool {
	return name != "" && (name == image.Name || name == image.ID || slices.Contains(image.RepoTags, name))
}

func (image Image) RemovalKey() string {
	if len(Tags(image.RepoTags)) > 1 && image.ID != "" {
		return image.ID
	}

	return image.Name
}

func (image Image) Describe() []describe.Section {
	summary := describe.NewSection(describe.SUMMARY)
	summary.
		Item("ID", image.ID).
		Item("Name", image.Name).
		Item("Tags", describe.Count(len(image.RepoTags))).
		Item("Digests", describe.Count(len(image.RepoDigests))).
		Item("Parent", image.ParentID).
		Item("Created At", image.CreatedAt).
		Item("Size", describe.Size(ptr.To(image.Size))).
		Item("Containers", describe.Int(image.Containers))

	sections := []describe.Section{*summary}

	if len(image.RepoTags) > 0 {
		tags := describe.NewSection("Tags")

		for i, tag := range image.RepoTags {
			tags.Item(strconv.Itoa(i+1), tag)
		}

		sections = append(sections, *tags)
	}

	if len(image.RepoDigests) > 0 {
		digests := describe.NewSection("Digests")

		for i, digest := range image.RepoDigests {
			digests.Item(strconv.Itoa(i+1), digest)
		}

		sections = append(sections, *digests)
	}

	if len(image.Labels) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Labels"), image.Labels))
	}

	return sections
}
