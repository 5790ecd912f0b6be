package api

import (
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds"
	"github.com/simplecontainer/inventory/pkg/version"
)

type Api struct {
	Config   *configuration.Configuration
	Runtime  iruntime.Client
	Registry *kinds.Registry
	Version  *version.Version
}

type KindInfo struct {
	Kind    string   `json:"kind"`
	Aliases []string `json:"aliases"`
	Columns []string `json:"columns"`
}
