package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `Add, list, view or remove the users that own documents.`,
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user",
	Args:  cobra.NoArgs,
	RunE:  runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE:  runUserList,
}

var userGetCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserGet,
}

var userRemoveCmd = &cobra.Command{
	Use:     "rm <user-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a user",
	Long:    `Remove a user together with every document they own.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runUserRemove,
}

var newUser domain.User

func init() {
	flags := userAddCmd.Flags()
	flags.StringVar(&newUser.ID, "id", "", "user ID (default: generated)")
	flags.StringVar(&newUser.FirstName, "first", "", "first name")
	flags.StringVar(&newUser.LastName, "last", "", "last name")
	flags.StringVar(&newUser.Email, "email", "", "email address")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userRemoveCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	user, err := s.Users.Add(cmd.Context(), newUser)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	cmd.Printf("Added user %s: %s\n", user.ID, user.DisplayName())
	return nil
}

func runUserList(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	users, err := s.Users.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		cmd.Println("No users found.")
		return nil
	}

	for i := range users {
		cmd.Printf("%s\t%s\t%s\n", users[i].ID, users[i].DisplayName(), users[i].Email)
	}
	return nil
}

func runUserGet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	user, err := s.Users.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	cmd.Printf("User: %s\n\n", user.ID)
	cmd.Printf("  Name:  %s\n", user.DisplayName())
	cmd.Printf("  Email: %s\n", user.Email)
	return nil
}

func runUserRemove(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	userID := args[0]
	if err := s.Users.Remove(cmd.Context(), userID); err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}

	cmd.Printf("User %s removed.\n", userID)
	return nil
}
