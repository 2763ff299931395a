//go:build nogui
// +build nogui

package ui

import "fmt"

func Run(opts Options) error {
	return fmt.Errorf("GUI mode not available in this build. Rebuild without -tags nogui")
}
