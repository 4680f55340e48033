package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/talkincode/tinyshop/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type productFlags struct {
	name        string
	description string
	price       string
	image       string
}

func (f *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.description, "description", "", "product description")
	cmd.Flags().StringVar(&f.price, "price", "0", "product price, exact decimal")
	cmd.Flags().StringVar(&f.image, "image", "", "product image url")
}

// apply copies the flags the user set onto p
func (f *productFlags) apply(cmd *cobra.Command, p *domain.Product) error {
	if cmd.Flags().Changed("name") {
		p.Name = domain.String(f.name)
	}
	if cmd.Flags().Changed("description") {
		p.Description = domain.String(f.description)
	}
	if cmd.Flags().Changed("image") {
		p.ImageUrl = domain.String(f.image)
	}
	if cmd.Flags().Changed("price") {
		price, err := decimal.NewFromString(f.price)
		if err != nil {
			return errors.Wrapf(err, "invalid price %q", f.price)
		}
		p.Price = price
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context()
			defer cancel()
			rows := opts.service().List(ctx)
			return printProducts(cmd.OutOrStdout(), opts.jsonOutput, rows)
		},
	}
}

func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context()
			defer cancel()
			p := opts.service().GetByID(ctx, id)
			if p == nil {
				return errors.Errorf("product %d not found", id)
			}
			return printProducts(cmd.OutOrStdout(), opts.jsonOutput, []*domain.Product{p})
		},
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	f := &productFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Product{}
			if err := f.apply(cmd, p); err != nil {
				return err
			}
			ctx, cancel := opts.context()
			defer cancel()
			created := opts.service().Create(ctx, p)
			if created == nil {
				return errors.New("create product failed")
			}
			return printProducts(cmd.OutOrStdout(), opts.jsonOutput, []*domain.Product{created})
		},
	}
	f.bind(cmd)
	return cmd
}

func newUpdateCmd(opts *options) *cobra.Command {
	f := &productFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the fields given by flags, keeping the others",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context()
			defer cancel()
			svc := opts.service()
			p := svc.GetByID(ctx, id)
			if p == nil {
				return errors.Errorf("product %d not found", id)
			}
			if err := f.apply(cmd, p); err != nil {
				return err
			}
			if !svc.Update(ctx, id, p) {
				return errors.Errorf("update product %d failed", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %d updated\n", id)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := opts.context()
			defer cancel()
			if !opts.service().Delete(ctx, id) {
				return errors.Errorf("delete product %d failed", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "product %d deleted\n", id)
			return nil
		},
	}
}

func printProducts(w io.Writer, asJSON bool, rows []*domain.Product) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tIMAGE")
	for _, p := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, deref(p.Name), p.Price.String(), deref(p.ImageUrl))
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
