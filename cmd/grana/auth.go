package main

import (
	"fmt"

	"github.com/granaapp/grana-go/internal/dto"
	"github.com/spf13/cobra"
)

var (
	flagName     string
	flagEmail    string
	flagPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the API and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := current.stores.Auth.Login(cmd.Context(), dto.LoginRequest{
			Email:    flagEmail,
			Password: flagPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new user and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := current.stores.Auth.Register(cmd.Context(), dto.RegisterRequest{
			Name:     flagName,
			Email:    flagEmail,
			Password: flagPassword,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Request a password reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := current.stores.Auth.ResetPassword(cmd.Context(), dto.ResetPasswordRequest{
			Email: flagEmail,
		})
		if err != nil {
			return err
		}
		fmt.Println("Password reset requested, check your inbox.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.stores.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&flagPassword, "password", "", "Account password")

	registerCmd.Flags().StringVar(&flagName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&flagPassword, "password", "", "Account password")

	resetPasswordCmd.Flags().StringVar(&flagEmail, "email", "", "Account email")

	rootCmd.AddCommand(loginCmd, registerCmd, resetPasswordCmd, logoutCmd)
}
