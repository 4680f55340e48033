// Package commands implements the catalogctl command tree.
package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talkincode/tinyshop/internal/client"
)

const defaultServer = "http://127.0.0.1:5228"

type options struct {
	server     string
	timeout    time.Duration
	verbose    bool
	jsonOutput bool
}

func (o *options) service() *client.ProductService {
	return client.NewProductService(o.server, &http.Client{Timeout: o.timeout})
}

func (o *options) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.timeout)
}

// NewRootCmd builds the catalogctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}
	server := os.Getenv("TINYSHOP_SERVER")
	if server == "" {
		server = defaultServer
	}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl - command line client of the TinyShop catalog",
		Long: `catalogctl talks to a running catalog server over its HTTP API.

Examples:
  catalogctl list
  catalogctl get 3
  catalogctl create --name Tent --price 19.99
  catalogctl export --out products.csv`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				if logger, err := zap.NewDevelopment(); err == nil {
					zap.ReplaceGlobals(logger)
				}
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.server, "server", "s", server, "catalog server base url (env TINYSHOP_SERVER)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log failed requests")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")

	root.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newExportCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
