package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/yasminaliabdi/event-planner/internal/guard"
	"github.com/yasminaliabdi/event-planner/internal/platform"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate and manage your session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the platform",
	Long: `Log in to the platform and persist the session for later commands.

When --email or --password is omitted, the missing values are collected
interactively.

Examples:
  eventplanner auth login
  eventplanner auth login --email user@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		resp, err := sessions.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s <%s> (%s)\n", resp.User.Name, resp.User.Email, resp.User.Role)
		fmt.Println("Run 'eventplanner dashboard' to open your home view.")
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions.Initialize(cmd.Context())
		sessions.Logout()
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions.Initialize(cmd.Context())
		snap := sessions.Current()

		if !snap.Authenticated() {
			fmt.Println("Not logged in.")
			if snap.LastError != "" {
				fmt.Printf("Last error: %s\n", snap.LastError)
			}
			fmt.Println("Use 'eventplanner auth login' to authenticate.")
			return nil
		}

		return printResult(snap.Identity, func() {
			fmt.Println("Logged in")
			fmt.Printf("User ID: %d\n", snap.Identity.ID)
			fmt.Printf("Name:    %s\n", snap.Identity.Name)
			fmt.Printf("Email:   %s\n", snap.Identity.Email)
			fmt.Printf("Role:    %s\n", snap.Identity.Role)
			fmt.Printf("Home:    %s\n", guard.DefaultRouteForRole(snap.Identity.Role))
		})
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new attendee account",
	Long: `Register a new attendee account.

Registration mails a one-time code to the given address; confirm it with
'eventplanner auth verify' to activate the account and log in.

Examples:
  eventplanner auth register --name "Dana K" --email dana@example.com --password secret123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		phone, _ := cmd.Flags().GetString("phone")

		if name == "" || email == "" || password == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Name").Value(&name),
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
				huh.NewInput().Title("Phone (optional)").Value(&phone),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		resp, err := client.Register(cmd.Context(), platform.RegisterRequest{
			Name:     name,
			Email:    email,
			Password: password,
			Phone:    phone,
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		fmt.Printf("Confirm with: eventplanner auth verify --email %s --code <code>\n", resp.Email)
		return nil
	},
}

var authVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Confirm a one-time code and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		code, _ := cmd.Flags().GetString("code")

		if email == "" || code == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Email").Value(&email),
				huh.NewInput().Title("Code").Value(&code),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		resp, err := client.VerifyOTP(cmd.Context(), platform.VerifyOTPRequest{
			Email: email,
			Code:  code,
		})
		if err != nil {
			return err
		}

		if err := sessions.SetSession(resp); err != nil {
			return err
		}

		fmt.Printf("Account verified. Logged in as %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil
	},
}

var authResendCmd = &cobra.Command{
	Use:   "resend-otp",
	Short: "Mail a fresh one-time code",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return fmt.Errorf("--email is required")
		}

		resp, err := client.ResendOTP(cmd.Context(), platform.ResendOTPRequest{Email: email})
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		return nil
	},
}

// Dev-only shortcut against local backends that expose the OTP endpoint.
var authDevOTPCmd = &cobra.Command{
	Use:    "dev-otp <email>",
	Short:  "Fetch the pending one-time code from a dev backend",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.DevOTP(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(resp.Code)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authLoginCmd.Flags().String("password", "", "account password")

	authRegisterCmd.Flags().String("name", "", "display name")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("password", "", "account password (min 8 characters)")
	authRegisterCmd.Flags().String("phone", "", "phone number (optional)")

	authVerifyCmd.Flags().String("email", "", "account email")
	authVerifyCmd.Flags().String("code", "", "one-time code")

	authResendCmd.Flags().String("email", "", "account email")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authVerifyCmd)
	authCmd.AddCommand(authResendCmd)
	authCmd.AddCommand(authDevOTPCmd)

	rootCmd.AddCommand(authCmd)
}
