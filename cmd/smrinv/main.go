package main

import (
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/client/commands"
	"github.com/simplecontainer/inventory/pkg/version"
)

// Set at build time with -ldflags "-X main.SMRINV_VERSION=... -X main.SMRINV_COMMIT=...".
var (
	SMRINV_VERSION = "dev"
	SMRINV_COMMIT  = ""
)

func main() {
	c := client.New(version.New(SMRINV_VERSION, SMRINV_COMMIT))

	commands.Run(c, commands.New())
}
