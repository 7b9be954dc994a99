package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cppla/ncnews/controllers"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the endpoint catalog served at GET /api",
	RunE: func(cmd *cobra.Command, args []string) error {
		var catalog map[string]json.RawMessage
		if err := json.Unmarshal(controllers.EndpointsJSON(), &catalog); err != nil {
			return err
		}
		out, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
