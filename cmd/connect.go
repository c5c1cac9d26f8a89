package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pgsvc/internal/config"
	"pgsvc/internal/launch"
	"pgsvc/internal/logger"
	"pgsvc/internal/resolve"
	"pgsvc/internal/service"
	"pgsvc/internal/tui"
	"pgsvc/internal/util"

	"github.com/spf13/cobra"
)

var dryRun bool

// Swapped out in tests.
var (
	selectService = tui.SelectService
	execCommand   = launch.Exec
	newLookup     = func() resolve.Lookup { return resolve.NewDNSLookup(config.DNSTimeout()) }
)

func runConnect(cmd *cobra.Command, args []string) error {
	explicit := serviceFileFlag
	if len(args) == 1 {
		explicit = args[0]
	}

	file, err := loadServiceFile(explicit)
	if err != nil {
		return err
	}

	name, err := chooseService(file, serviceName)
	if errors.Is(err, tui.ErrCancelled) {
		fmt.Fprintln(os.Stderr, tui.MutedStyle.Render("No service selected."))
		return nil
	}
	if err != nil {
		return err
	}

	connArgs, err := resolveService(cmd.Context(), file, name)
	if err != nil {
		return err
	}

	command, err := launch.Build(config.Psql(), file.Path, connArgs)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), command.ShellLine())
		return nil
	}
	if verbose {
		util.InfoColor.Fprintf(os.Stderr, "Executing: %s\n", command)
	}
	logger.Debug("Launching client", "service", name, "argv", command.Args)

	return execCommand(command)
}

// loadServiceFile locates and parses the service file.
func loadServiceFile(explicit string) (*service.File, error) {
	path, err := service.Locate(explicit, config.ServiceFile())
	if err != nil {
		return nil, err
	}
	if verbose {
		util.InfoColor.Fprintf(os.Stderr, "Using service file %s\n", util.BoldColor.Sprint(path))
	}

	file, err := service.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded service file", "path", file.Path, "services", file.Len())
	return file, nil
}

// chooseService decides which service to use. A requested name wins, a file
// with a single service skips the menu, anything else asks the user.
func chooseService(file *service.File, requested string) (string, error) {
	if requested != "" {
		if _, err := file.Profile(requested); err != nil {
			return "", err
		}
		return requested, nil
	}

	names := file.Names()
	if len(names) == 1 {
		logger.Debug("Only one service defined, skipping menu", "service", names[0])
		return names[0], nil
	}
	return selectService(names, config.Title())
}

// resolveService builds the connection arguments, showing a spinner while a
// nameserver lookup is in flight.
func resolveService(ctx context.Context, file *service.File, name string) (resolve.Args, error) {
	profile, err := file.Profile(name)
	if err != nil {
		return nil, err
	}

	resolver := resolve.New(newLookup())

	nameserver, host, ok := resolve.Target(profile)
	if !ok {
		return resolver.Resolve(ctx, profile, name)
	}

	logger.Debug("Looking up host via nameserver", "service", name, "host", host, "nameserver", nameserver)
	var connArgs resolve.Args
	err = tui.ShowSpinner(ctx, fmt.Sprintf("Resolving %s via %s", host, nameserver), func(ctx context.Context) error {
		var resolveErr error
		connArgs, resolveErr = resolver.Resolve(ctx, profile, name)
		return resolveErr
	})
	if err != nil {
		logger.Error("Address lookup failed", "service", name, "error", err)
		return nil, err
	}
	if addr, ok := connArgs.HostAddr(); ok {
		logger.Info("Resolved host", "service", name, "host", host, "hostaddr", addr)
	}
	return connArgs, nil
}
