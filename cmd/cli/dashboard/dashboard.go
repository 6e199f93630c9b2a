package dashboard

import (
	"fmt"

	"github.com/crucial707/auth-dashboard/cmd/cli/config"
	"github.com/crucial707/auth-dashboard/cmd/cli/output"
	"github.com/crucial707/auth-dashboard/internal/client"
	"github.com/crucial707/auth-dashboard/internal/models"
	"github.com/spf13/cobra"
)

// Init registers the dashboard command on the root command.
func Init(rootCmd *cobra.Command) {
	rootCmd.AddCommand(dashboardCmd())
}

// dashboardCmd renders the summary, monthly series and traffic split as
// terminal tables. The facade guarantees a complete payload, so there is no
// empty-state handling here.
func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard statistics",
		Long:  "Fetch summary statistics and chart series and render them as tables.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := config.LoadToken()
			if err != nil {
				return fmt.Errorf("not logged in, run 'dash login' first")
			}

			c := client.New(config.APIURL())
			data := c.GetData(cmd.Context(), token)

			fmt.Println("Summary")
			output.RenderTable(
				[]string{"Total Users", "Active Sessions", "Revenue", "User Growth %", "Session Growth %", "Revenue Growth %"},
				[][]interface{}{{
					data.Summary.TotalUsers,
					data.Summary.ActiveSessions,
					data.Summary.Revenue,
					data.Summary.UserGrowth,
					data.Summary.SessionGrowth,
					data.Summary.RevenueGrowth,
				}},
			)

			fmt.Println("\nMonthly series")
			rows := make([][]interface{}, 0, len(data.ChartData.Labels))
			for i, label := range data.ChartData.Labels {
				rows = append(rows, []interface{}{label, data.ChartData.Users[i], data.ChartData.Revenue[i]})
			}
			output.RenderTable([]string{"Month", "Users", "Revenue"}, rows)

			if len(data.ChartData.Traffic) > 0 {
				fmt.Println("\nTraffic sources")
				output.RenderTable(
					[]string{"Direct", "Social", "Referral"},
					[][]interface{}{{
						data.ChartData.Traffic[models.TrafficDirect],
						data.ChartData.Traffic[models.TrafficSocial],
						data.ChartData.Traffic[models.TrafficReferral],
					}},
				)
			}

			return nil
		},
	}
}
