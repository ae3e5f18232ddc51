package server

import (
	"fmt"
	"os/exec"
)

// runCmd starts name detached; the browser outlives the request.
func runCmd(name string, args ...string) error {
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return nil
}
