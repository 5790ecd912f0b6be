package network

import (
	"fmt"
	"github.com/simplecontainer/inventory/pkg/describe"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
)

func (network Network) GetID() string {
	return network.GetName()
}

func (network Network) GetName() string {
	return network.Name
}

func (network Network) Describe() []describe.Section {
	summary := describe.NewSection(describe.SUMMARY)
	summary.
		Item("ID", network.ID).
		Item("Name", network.Name).
		Item("Driver", network.Driver).
		Item("Created At", network.CreatedAt).
		Item("Scope", network.Scope).
		Item("Internal", describe.Bool(network.Internal)).
		Item("Attachable", describe.Bool(network.Attachable)).
		Item("Containers", describe.Count(len(network.Containers)))

	sections := []describe.Section{*summary}

	if len(network.Containers) > 0 {
		containers := describe.NewSection("Containers")

		for _, id := range common.SortedKeys(network.Containers) {
			endpoint := network.Containers[id]

			label := endpoint.Name
			if label == "" {
				label = common.ShortID(id)
			}

			containers.Item(label, fmt.Sprintf("%s (%s)", common.Dash(endpoint.IPv4Address), common.ShortID(id)))
		}

		sections = append(sections, *containers)
	}

	if len(network.Labels) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Labels"), network.Labels))
	}

	if len(network.Options) > 0 {
		sections = append(sections, *describe.Map(describe.NewSection("Options"), network.Options))
	}

	return sections
}
