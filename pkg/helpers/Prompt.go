package helpers

import (
	"fmt"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
	"os"
)

func Confirm(message string) (bool, error) {
	ask := promptui.Select{
		Label: fmt.Sprintf("%s [y/n]", message),
		Items: []string{"y", "n"},
	}

	_, result, err := ask.Run()

	if err != nil {
		return false, err
	}

	return result == "y", nil
}

func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
