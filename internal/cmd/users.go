package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up user accounts (admin)",
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersGet,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersGetCmd)
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	user, err := app.api.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	fmt.Printf("👤 #%d %s <%s> role=%s", user.ID, user.Name, user.Email, user.Role)
	if user.Phone != "" {
		fmt.Printf(" phone=%s", user.Phone)
	}
	fmt.Println()
	return nil
}
