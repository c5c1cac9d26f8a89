//go:build unix

package launch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func execve(path string, argv, env []string) error {
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
