package helpers

import (
	"fmt"
	"github.com/containerd/errdefs"
	"github.com/simplecontainer/inventory/pkg/logger"
	"os"
)

const (
	EXIT_ERROR     = 1
	EXIT_NOT_FOUND = 2
	EXIT_CONFLICT  = 3
)

func LogIfError(err error) {
	if err != nil {
		logger.Log.Error(err.Error())
	}
}

func PrintAndExit(err error, code int) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		fmt.Fprintln(os.Stderr, "nil err passed to print")
	}

	os.Exit(code)
}

// ExitCode classifies runtime errors so scripts can tell a missing
// resource from one that is still in use.
func ExitCode(err error) int {
	switch {
	case errdefs.IsNotFound(err):
		return EXIT_NOT_FOUND
	case errdefs.IsConflict(err):
		return EXIT_CONFLICT
	default:
		return EXIT_ERROR
	}
}
