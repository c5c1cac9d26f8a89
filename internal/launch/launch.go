package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"pgsvc/internal/resolve"
	"pgsvc/internal/service"
)

// ErrClientNotFound is returned when the psql binary cannot be found on PATH
var ErrClientNotFound = errors.New("database client not found")

// Command is a prepared psql invocation.
type Command struct {
	Name        string   // binary as configured, resolved against PATH on Exec
	Args        []string // argv, including Name
	Env         []string
	ServiceFile string // absolute, exported as PGSERVICEFILE
}

// Build prepares argv and environment for running client against a service.
// The connection tokens are passed as a single conninfo argument and
// PGSERVICEFILE points at the absolute service file path.
func Build(client, serviceFile string, args resolve.Args) (*Command, error) {
	abs, err := filepath.Abs(serviceFile)
	if err != nil {
		return nil, fmt.Errorf("could not resolve service file path: %w", err)
	}

	return &Command{
		Name:        client,
		Args:        []string{client, args.Conninfo()},
		Env:         setEnv(os.Environ(), service.EnvServiceFile, abs),
		ServiceFile: abs,
	}, nil
}

// String renders the command as it would be typed in a shell.
func (c *Command) String() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = shellQuote(arg)
	}
	return strings.Join(parts, " ")
}

// ShellLine is String prefixed with the PGSERVICEFILE assignment, ready to
// paste into a shell.
func (c *Command) ShellLine() string {
	return service.EnvServiceFile + "=" + shellQuote(c.ServiceFile) + " " + c.String()
}

// Exec replaces the current process with the command. It only returns on error.
func Exec(c *Command) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrClientNotFound, c.Name, err)
	}
	return execve(path, c.Args, c.Env)
}

// setEnv returns env with key set to value, dropping earlier entries for key.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if !strings.HasPrefix(kv, prefix) {
			out = append(out, kv)
		}
	}
	return append(out, prefix+value)
}

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
