package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/auth"
)

var (
	loginEmail    string
	loginPassword string

	registerName     string
	registerEmail    string
	registerPhone    string
	registerPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session locally",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new customer account",
	RunE:  runRegister,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	creds, err := app.api.Login(ctx, api.LoginInput{
		Email:    loginEmail,
		Password: loginPassword,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := app.session.Save(creds.Token, creds.User); err != nil {
		return err
	}

	fmt.Printf("✅ Signed in as %s (%s)\n", creds.User.Name, creds.User.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	if err := app.session.Clear(); err != nil {
		return err
	}

	fmt.Println("👋 Signed out")
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	creds, err := app.api.Register(ctx, api.RegisterInput{
		Name:     registerName,
		Email:    registerEmail,
		Phone:    registerPhone,
		Password: registerPassword,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if err := app.session.Save(creds.Token, creds.User); err != nil {
		return err
	}

	fmt.Printf("🎉 Welcome to SokaStore, %s! You are signed in.\n", creds.User.Name)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	session, err := app.session.Load()
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			fmt.Println("📭 Not signed in")
			return nil
		}
		return err
	}

	fmt.Printf("👤 %s <%s> role=%s\n", session.User.Name, session.User.Email, session.User.Role)
	if _, ok := app.session.Token(); !ok {
		fmt.Println("⚠️  Stored token has expired; run 'soka login' again")
	}
	return nil
}
