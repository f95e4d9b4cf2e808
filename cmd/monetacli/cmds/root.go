// Package cmds implements the monetacli command tree.
package cmds

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/monetaio/moneta/api/client"
	"github.com/monetaio/moneta/config"
	"github.com/monetaio/moneta/config/defaults"
	"github.com/monetaio/moneta/session"
)

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	Host   string
	Config string
	Debug  bool
}

// NewMonetaCommand builds the root command with all subcommands attached.
func NewMonetaCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "monetacli",
		Short: "Command line client for the Moneta personal finance API",
		Long: `monetacli talks to a Moneta personal finance server. Log in once with
'monetacli login', then manage account containers and record transactions.
The session token is stored in the config file and reused until it expires.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return config.Initialize(opts.Config)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.Host, "host", "H", "", "base address of the finance API")
	flags.StringVar(&opts.Config, "config", "", "config file (default ~/.moneta/config.yml)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		NewLoginCommand(opts),
		NewLogoutCommand(opts),
		NewRegisterCommand(opts),
		NewWhoamiCommand(opts),
		NewContainerCommand(opts),
		NewAccountCommand(opts),
		NewCategoryCommand(opts),
		NewTransactionCommand(opts),
		NewVersionCommand(opts),
	)
	return cmd
}

// APIHost resolves the base address to talk to. The --host flag wins,
// otherwise the address stored in the config file, otherwise the
// development default.
func (opts *GlobalOptions) APIHost() string {
	if opts.Host != "" {
		return opts.Host
	}
	return defaults.APIURL()
}

// Connect returns a client without credentials. Only the login and
// registration endpoints accept such a client.
func (opts *GlobalOptions) Connect() (*client.APIClient, error) {
	return client.NewAPIClient(opts.APIHost(), "", nil, nil)
}

// ConnectAuthenticated restores the stored session and returns a client
// carrying its token.
func (opts *GlobalOptions) ConnectAuthenticated() (*client.APIClient, session.Session, error) {
	host := opts.APIHost()
	s, ok := session.Load(host)
	if !ok {
		return nil, s, errors.New("not logged in, run 'monetacli login' first")
	}
	cli, err := client.NewAPIClient(host, s.Token, nil, nil)
	if err != nil {
		return nil, s, err
	}
	return cli, s, nil
}

// wrapUnauthorized rewrites a rejected token into a login hint and drops
// the stored session, which is no longer usable.
func (opts *GlobalOptions) wrapUnauthorized(err error) error {
	if err != nil && client.IsUnauthorized(err) {
		_ = session.Clear(opts.APIHost())
		return errors.New("your session has expired, please run 'monetacli login' again")
	}
	return err
}
