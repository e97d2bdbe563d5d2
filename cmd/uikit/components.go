package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-uikit/pkg/page"
)

func newComponentsCmd() *cobra.Command {
	var assets bool
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the component types a page may declare",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := page.NewDefaultRegistry()
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				if !assets {
					fmt.Fprintln(out, name)
					continue
				}
				descriptor, _ := reg.Descriptor(name)
				var scripts []string
				for _, script := range descriptor.Scripts {
					scripts = append(scripts, script.Src)
				}
				fmt.Fprintf(out, "%s\t%s\n", name, strings.Join(scripts, ","))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&assets, "assets", false, "also list the scripts each component needs")
	return cmd
}
