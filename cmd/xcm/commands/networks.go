package commands

import (
	"fmt"

	"github.com/cordialsys/xcm/node"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func CmdNetworks() *cobra.Command {
	format := ""
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List information on all supported networks.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes := node.All()
			switch format {
			case "json":
				fmt.Println(asJson(nodes))
			case "yaml":
				bz, err := yaml.Marshal(nodes)
				if err != nil {
					return err
				}
				fmt.Println(string(bz))
			default:
				return fmt.Errorf("invalid format: %s", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Format may be json or yaml")
	return cmd
}
