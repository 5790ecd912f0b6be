package volume

import "github.com/simplecontainer/inventory/pkg/describe"

func (volume Volume) GetID() string {
	return volume.GetName()
}

func (volume Volume) GetName() string {
	return volume.Name
}

func (volume Volume) Describe() []describe.Section {
	summary := describe.NewSection(describe.SUMMARY)
	summary.
		Item("Name", volume.Name).
		Item("Driver", volume.Driver).
		Item("Scope", volume.Scope).
		Item("Mountpoint", volume.Mountpoint).
		Item("Created At", volume.CreatedAt).
		Item("Ref Count", describe.Int(volume.RefCount)).
		Item("Size", describe.Size(volume.Size))

	sections := []describe.Section{*summary}

	if len(volume.Labels) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Labels"), volume.Labels))
	}

	if len(volume.Options) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Options"), volume.Options))
	}

	return sections
}
