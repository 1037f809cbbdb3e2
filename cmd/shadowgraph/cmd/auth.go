package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shadowgraph/shadowgraph-go/pkg/session"
)

var (
	authEmail    string
	authPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd, false)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and store a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return authenticate(cmd, true)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.SignOut(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()
		if !client.IsAuthenticated() {
			fmt.Println("Not signed in.")
			return nil
		}
		user, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

func authenticate(cmd *cobra.Command, signup bool) error {
	email := strings.TrimSpace(authEmail)
	if email == "" {
		return fmt.Errorf("--email is required")
	}
	password := authPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer client.Close()

	var sess *session.Session
	if signup {
		sess, err = client.SignUp(cmd.Context(), email, password)
	} else {
		sess, err = client.Login(cmd.Context(), email, password)
	}
	if err != nil {
		return err
	}
	toasts.Success(fmt.Sprintf("Signed in as %s.", sess.User.Email))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, signupCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "account email")
		c.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")
	}
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}
