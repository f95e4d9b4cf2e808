package cmds

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/monetaio/moneta/api/types"
)

// NewCategoryCommand groups the category subcommands.
func NewCategoryCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Inspect transaction categories",
	}
	cmd.AddCommand(newCategoryListCommand(opts))
	return cmd
}

func newCategoryListCommand(opts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategoryList(opts)
		},
	}
}

func runCategoryList(opts *GlobalOptions) error {
	cli, _, err := opts.ConnectAuthenticated()
	if err != nil {
		return err
	}

	categories, err := cli.GetCategories(context.Background())
	if err != nil {
		return opts.wrapUnauthorized(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, o := range types.CategoryOptions(categories) {
		fmt.Fprintf(w, "%s\t%s\n", o.ID, o.Label)
	}
	return w.Flush()
}

// NewTransactionCommand groups the transaction subcommands.
func NewTransactionCommand(opts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Record transactions",
	}
	cmd.AddCommand(newTransactionCreateCommand(opts))
	return cmd
}

type transactionCreateOptions struct {
	*GlobalOptions
	Container   string
	Account     string
	Category    string
	Amount      float64
	Description string
	Date        string
}

func newTransactionCreateCommand(gopts *GlobalOptions) *cobra.Command {
	opts := &transactionCreateOptions{GlobalOptions: gopts}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a transaction against an account",
		Example: `  monetacli transaction create --container 7 --account Checking \
      --category Groceries --amount -42.50 --description "weekly shopping"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransactionCreate(opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.Container, "container", "", "container id or name, enables account lookup by name")
	flags.StringVar(&opts.Account, "account", "", "account id or name")
	flags.StringVar(&opts.Category, "category", "", "category id or name")
	flags.Float64Var(&opts.Amount, "amount", 0, "amount, negative for expenses")
	flags.StringVar(&opts.Description, "description", "", "free-form description")
	flags.StringVar(&opts.Date, "date", "", "booking date as YYYY-MM-DD, server fills in today when omitted")
	return cmd
}

func runTransactionCreate(opts *transactionCreateOptions) error {
	req := types.CreateTransactionRequest{
		AccountID:   opts.Account,
		CategoryID:  opts.Category,
		Amount:      opts.Amount,
		Description: opts.Description,
		BookingDate: opts.Date,
	}
	// Incomplete input is rejected before anything goes on the wire.
	if err := req.Validate(); err != nil {
		return err
	}

	cli, _, err := opts.ConnectAuthenticated()
	if err != nil {
		return err
	}
	ctx := context.Background()

	categories, err := cli.GetCategories(ctx)
	if err != nil {
		return opts.wrapUnauthorized(err)
	}
	category, err := resolveOption(types.CategoryOptions(categories), opts.Category, "category")
	if err != nil {
		return err
	}
	req.CategoryID = category.ID

	if opts.Container != "" {
		containers, err := cli.GetAccountContainers(ctx)
		if err != nil {
			return opts.wrapUnauthorized(err)
		}
		container, err := resolveOption(types.ContainerOptions(containers), opts.Container, "container")
		if err != nil {
			return err
		}

		accounts, err := cli.GetAccounts(ctx, container.ID)
		if err != nil {
			return opts.wrapUnauthorized(err)
		}
		account, err := resolveOption(types.AccountOptions(accounts), opts.Account, "account")
		if err != nil {
			return err
		}
		req.AccountID = account.ID
	}

	created, err := cli.CreateTransaction(ctx, req)
	if err != nil {
		return opts.wrapUnauthorized(err)
	}
	fmt.Printf("Recorded transaction %s over %.2f\n", created.ID, created.Amount)
	return nil
}

// resolveOption matches value against the options by id first, then by
// unique label.
func resolveOption(options []types.Option, value, kind string) (types.Option, error) {
	if o, ok := types.FindOption(options, value); ok {
		return o, nil
	}

	var match types.Option
	var count int
	for _, o := range options {
		if strings.EqualFold(o.Label, value) {
			match = o
			count++
		}
	}
	switch count {
	case 1:
		return match, nil
	case 0:
		return types.Option{}, fmt.Errorf("unknown %s %q, choose one of:\n%s", kind, value, formatOptions(options))
	default:
		return types.Option{}, fmt.Errorf("%s %q is ambiguous, use an id:\n%s", kind, value, formatOptions(options))
	}
}

func formatOptions(options []types.Option) string {
	var b strings.Builder
	for _, o := range options {
		fmt.Fprintf(&b, "  %s  %s\n", o.ID, o.Label)
	}
	return strings.TrimRight(b.String(), "\n")
}
