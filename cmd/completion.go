package cmd

import (
	"strings"

	"pgsvc/internal/config"
	"pgsvc/internal/service"

	"github.com/spf13/cobra"
)

// completeServices completes service names from the service file that would be used.
func completeServices(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	path, err := service.Locate(serviceFileFlag, config.ServiceFile())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	file, err := service.Load(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range file.Names() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
