package cmd

import (
	"pgsvc/internal/resolve"
	"pgsvc/internal/service"
	"pgsvc/internal/util"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [servicefile]",
	Short:   "List the services in the service file",
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit := serviceFileFlag
		if len(args) == 1 {
			explicit = args[0]
		}

		file, err := loadServiceFile(explicit)
		if err != nil {
			return err
		}

		util.InfoColor.Fprintf(cmd.ErrOrStderr(), "Services in %s:\n", file.Path)
		util.FprintTable(cmd.OutOrStdout(), []string{"Service", "Host", "Address", "Port", "Database", "User"}, serviceRows(file))
		return nil
	},
}

func serviceRows(file *service.File) [][]string {
	var data [][]string
	for _, name := range file.Names() {
		p, err := file.Profile(name)
		if err != nil {
			continue
		}
		data = append(data, []string{
			name,
			p.Value(service.AttrHost),
			addressColumn(p),
			p.Value(service.AttrPort),
			p.Value(service.AttrDBName),
			p.Value(service.AttrUser),
		})
	}
	return data
}

func addressColumn(p service.Profile) string {
	if nameserver, _, ok := resolve.Target(p); ok {
		return "via " + nameserver
	}
	return p.Value(service.AttrHostAddr)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
