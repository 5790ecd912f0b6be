package container

import (
	"fmt"
	"github.com/simplecontainer/inventory/pkg/describe"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
)

func (container Container) GetID() string {
	return container.GetName()
}

func (container Container) GetName() string {
	return container.Name
}

func (container Container) Describe() []describe.Section {
	summary := describe.NewSection(describe.SUMMARY)
	summary.
		Item("ID", container.ID).
		Item("Name", container.Name).
		Item("Image", container.Image).
		Item("Command", container.Command).
		Item("Created At", container.CreatedAt).
		Item("State", container.State).
		Item("Status", container.Status).
		Item("Networks", describe.Count(len(container.Networks))).
		Item("Mounts", describe.Count(len(container.Mounts))).
		Item("Ports", describe.Count(len(container.Ports)))

	sections := []describe.Section{*summary}

	if len(container.Networks) > 0 {
		networks := describe.NewSection("Networks")

		for _, name := range common.SortedKeys(container.Networks) {
			networks.Item(name, common.Dash(container.Networks[name].IPAddress))
		}

		sections = append(sections, *networks)
	}

	if len(container.Mounts) > 0 {
		mounts := describe.NewSection("Mounts")

		for _, mount := range container.Mounts {
			source := mount.Source
			if mount.Name != "" {
				source = mount.Name
			}

			mounts.Item(mount.Destination, fmt.Sprintf("%s %s (rw: %s)", mount.Type, common.Dash(source), describe.Bool(mount.ReadWrite)))
		}

		sections = append(sections, *mounts)
	}

	if len(container.Ports) > 0 {
		ports := describe.NewSection("Ports")

		for _, port := range container.Ports {
			ports.Item(fmt.Sprintf("%d/%s", port.PrivatePort, port.Type), FormatPublished(port))
		}

		sections = append(sections, *ports)
	}

	if len(container.Labels) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Labels"), container.Labels))
	}

	return sections
}

func FormatPublished(port Port) string {
	if port.PublicPort == 0 {
		return "-"
	}

	if port.IP == "" {
		return fmt.Sprintf("%d", port.PublicPort)
	}

	return fmt.Sprintf("%s:%d", port.IP, port.PublicPort)
}
