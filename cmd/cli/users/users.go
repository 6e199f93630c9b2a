package users

import (
	"fmt"

	"github.com/crucial707/auth-dashboard/cmd/cli/config"
	"github.com/crucial707/auth-dashboard/cmd/cli/output"
	"github.com/crucial707/auth-dashboard/internal/client"
	"github.com/spf13/cobra"
)

// Init registers the users command on the root command.
func Init(rootCmd *cobra.Command) {
	rootCmd.AddCommand(usersCmd())
}

// usersCmd lists the combined directory: real rows from the store followed by
// the five demo entries the facade always appends.
func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List dashboard users",
		Long:  "Fetch the user directory and render it as a table, demo entries included.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("not logged in, run 'dash login' first")
			}

			c := client.New(config.APIURL())
			result := c.GetUsers(cmd.Context(), token)

			rows := make([][]interface{}, 0, len(result.Users))
			for _, u := range result.Users {
				source := "real"
				if !u.IsReal {
					source = "demo"
				}
				rows = append(rows, []interface{}{string(u.ID), u.Name, u.Email, u.CreatedAt, source})
			}
			output.RenderTable([]string{"ID", "Name", "Email", "Created", "Source"}, rows)

			return nil
		},
	}
}
