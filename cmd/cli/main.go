package main

import (
	"fmt"
	"os"

	"github.com/crucial707/auth-dashboard/cmd/cli/auth"
	"github.com/crucial707/auth-dashboard/cmd/cli/dashboard"
	"github.com/crucial707/auth-dashboard/cmd/cli/root"
	"github.com/crucial707/auth-dashboard/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	auth.Init(rootCmd)
	dashboard.Init(rootCmd)
	users.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
