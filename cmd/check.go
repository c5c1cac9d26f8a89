package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"pgsvc/internal/check"
	"pgsvc/internal/tui"
	"pgsvc/internal/util"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [service]",
	Short: "Test that a service accepts connections",
	Long: `Resolves the service the same way as a normal launch, then opens a single
connection with the resulting settings and prints the server version.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeServices,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadServiceFile(serviceFileFlag)
		if err != nil {
			return err
		}

		requested := serviceName
		if len(args) == 1 {
			requested = args[0]
		}
		name, err := chooseService(file, requested)
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

		cfg, err := check.Config(file.Path, connArgs)
		if err != nil {
			return err
		}

		var result *check.Result
		err = tui.ShowSpinner(cmd.Context(), fmt.Sprintf("Connecting to '%s'", name), func(ctx context.Context) error {
			var pingErr error
			result, pingErr = check.Ping(ctx, cfg)
			return pingErr
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("✗ "+err.Error()))
			return fmt.Errorf("service '%s' is not reachable", name)
		}

		out := cmd.OutOrStdout()
		util.SuccessColor.Fprintf(out, "✔ %s is up (%s)\n", util.BoldColor.Sprint(name), result.Elapsed.Round(time.Millisecond))
		fmt.Fprintf(out, "  Address:  %s\n", result.Address)
		fmt.Fprintf(out, "  Database: %s\n", result.Database)
		fmt.Fprintf(out, "  User:     %s\n", result.User)
		fmt.Fprintf(out, "  Server:   %s\n", result.ServerVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
