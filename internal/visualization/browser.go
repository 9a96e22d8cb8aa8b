package visualization

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openCommand returns the platform command that opens target with the
// user's default application.
func openCommand(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "linux":
		return exec.Command("xdg-open", target), nil
	case "darwin":
		return exec.Command("open", target), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", target), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Open opens a written chart in the default viewer without waiting for it.
// It supports Linux (xdg-open), macOS (open), and Windows (cmd start).
func Open(path string) error {
	cmd, err := openCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	return cmd.Start()
}
