package auth

import (
	"fmt"

	"github.com/crucial707/auth-dashboard/cmd/cli/config"
	"github.com/crucial707/auth-dashboard/internal/client"
	"github.com/spf13/cobra"
)

// Init registers auth-related CLI commands (login, register, logout) on the root command.
func Init(rootCmd *cobra.Command) {
	rootCmd.AddCommand(loginCmd(), registerCmd(), logoutCmd())
}

// loginCmd authenticates and stores the token locally. When the backend is
// down, the facade's mock account still produces a usable (placeholder) token.
func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the dashboard API",
		Long:  "Authenticate with the dashboard API and store a token for subsequent CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				fmt.Scanln(&email)
			}
			if password == "" {
				fmt.Print("Password: ")
				fmt.Scanln(&password)
			}

			c := client.New(config.APIURL())
			result := c.Login(cmd.Context(), email, password)
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}

			if err := config.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			if result.Token == client.FakeToken {
				fmt.Println("Backend unreachable; logged in with the demo account.")
			} else {
				fmt.Println("Login successful. Token stored locally.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Long:  "Register a new user with email and password, then login separately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print("Email: ")
				fmt.Scanln(&email)
			}
			if password == "" {
				fmt.Print("Password: ")
				fmt.Scanln(&password)
			}

			c := client.New(config.APIURL())
			result := c.Register(cmd.Context(), name, email, password)
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}

			fmt.Println(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (optional)")
	cmd.Flags().StringVar(&email, "email", "", "Email to register")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout current user",
		Long:  "Remove the locally saved token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ClearToken(); err != nil {
				return err
			}
			fmt.Println("Logged out successfully.")
			return nil
		},
	}
}
