package cmds

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monetaio/moneta/api/types"
)

// NewContainerCommand groups the account container subcommands.
func NewContainerCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "container",
		Short: "Manage account containers",
	}
	cmd.AddCommand(
		newContainerListCommand(opts),
		newContainerCreateCommand(opts),
	)
	return cmd
}

func newContainerListCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your account containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContainerList(opts)
		},
	}
}

func runContainerList(opts *GlobalOptions) error {
	cli, _, err := opts.ConnectAuthenticated()
	if err != nil {
		return err
	}

	containers, err := cli.GetAccountContainers(context.Background())
	if err != nil {
		return opts.wrapUnauthorized(err)
	}
	if len(containers) == 0 {
		fmt.Println("No account containers yet. Create one with 'monetacli container create'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tACCOUNTS")
	for _, c := range containers {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.ID, c.Name, len(c.Accounts))
	}
	return w.Flush()
}

type containerCreateOptions struct {
	*GlobalOptions
	Accounts []string
}

func newContainerCreateCommand(gopts *GlobalOptions) *cobra.Command {
	opts := &containerCreateOptions{GlobalOptions: gopts}
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an account container with its sub-accounts",
		Example: `  monetacli container create "Personal Finances" \
      --account Checking:CHECKING:EUR:250.00 --account Savings:SAVINGS:EUR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContainerCreate(opts, args[0])
		},
	}
	cmd.Flags().StringArrayVarP(&opts.Accounts, "account", "a", nil,
		fmt.Sprintf("sub-account as NAME:TYPE:CURRENCY[:BALANCE], repeatable (types: %v)", types.AccountTypes))
	return cmd
}

func runContainerCreate(opts *containerCreateOptions, name string) error {
	req := types.CreateAccountContainerRequest{Name: name}
	for _, spec := range opts.Accounts {
		account, err := types.ParseAccountSpec(spec)
		if err != nil {
			return err
		}
		req.Accounts = append(req.Accounts, account)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	cli, _, err := opts.ConnectAuthenticated()
	if err != nil {
		return err
	}
	created, err := cli.CreateAccountContainer(context.Background(), req)
	if err != nil {
		return opts.wrapUnauthorized(err)
	}
	fmt.Printf("Created account container %q with %d account(s)\n", created.Name, len(created.Accounts))
	return nil
}

// NewAccountCommand groups the account subcommands.
func NewAccountCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Inspect the accounts of a container",
	}
	cmd.AddCommand(newAccountListCommand(opts))
	return cmd
}

func newAccountListCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list CONTAINER",
		Short: "List the accounts of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccountList(opts, args[0])
		},
	}
}

func runAccountList(opts *GlobalOptions, containerID string) error {
	cli, _, err := opts.ConnectAuthenticated()
	if err != nil {
		return err
	}

	accounts, err := cli.GetAccounts(context.Background(), containerID)
	if err != nil {
		return opts.wrapUnauthorized(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tCURRENCY\tBALANCE")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", a.ID, a.Name, a.AccountType, a.Currency, a.Balance)
	}
	return w.Flush()
}
