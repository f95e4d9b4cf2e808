package cmds

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/monetaio/moneta/api/client"
	"github.com/monetaio/moneta/session"
)

// NewLoginCommand logs in to the API and stores the session token.
func NewLoginCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login [USERNAME]",
		Short: "Log in to the finance API and store the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var username string
			if len(args) > 0 {
				username = args[0]
			}
			return runLogin(opts, username)
		},
	}
}

func runLogin(opts *GlobalOptions, username string) error {
	cli, err := opts.Connect()
	if err != nil {
		return err
	}

	if username == "" {
		if username, err = promptLine("Username: "); err != nil {
			return err
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	res, err := cli.Login(context.Background(), username, password)
	if err != nil {
		if client.IsUnauthorized(err) {
			return errors.New("login failed, please enter a valid username and password")
		}
		return err
	}

	err = session.Save(opts.APIHost(), session.Session{Username: res.Username, Token: res.Token})
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", res.Username)
	return nil
}

// NewLogoutCommand removes the stored session.
func NewLogoutCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(opts)
		},
	}
}

func runLogout(opts *GlobalOptions) error {
	host := opts.APIHost()
	if _, ok := session.Load(host); !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := session.Clear(host); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// NewRegisterCommand creates a new user on the server.
func NewRegisterCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register [USERNAME]",
		Short: "Register a new user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var username string
			if len(args) > 0 {
				username = args[0]
			}
			return runRegister(opts, username)
		},
	}
}

func runRegister(opts *GlobalOptions, username string) error {
	cli, err := opts.Connect()
	if err != nil {
		return err
	}

	if username == "" {
		if username, err = promptLine("Username: "); err != nil {
			return err
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	msg, err := cli.CreateUser(context.Background(), username, password)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Registration complete."
	}
	fmt.Println(msg)
	fmt.Println("You can now log in with 'monetacli login'.")
	return nil
}

// NewWhoamiCommand prints the logged in user.
func NewWhoamiCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := session.Load(opts.APIHost())
			if !ok {
				return errors.New("not logged in, run 'monetacli login' first")
			}
			fmt.Println(s.Username)
			return nil
		},
	}
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pass), nil
}
