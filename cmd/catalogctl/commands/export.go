package commands

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/talkincode/tinyshop/internal/domain"
)

// csvProduct is the flat row written by export
type csvProduct struct {
	ID          int64  `csv:"id"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
	Price       string `csv:"price"`
	ImageUrl    string `csv:"image_url"`
}

func toCSV(rows []*domain.Product) []*csvProduct {
	out := make([]*csvProduct, 0, len(rows))
	for _, p := range rows {
		r := &csvProduct{ID: p.ID, Price: p.Price.String()}
		if p.Name != nil {
			r.Name = *p.Name
		}
		if p.Description != nil {
			r.Description = *p.Description
		}
		if p.ImageUrl != nil {
			r.ImageUrl = *p.ImageUrl
		}
		out = append(out, r)
	}
	return out
}

func newExportCmd(opts *options) *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.context()
			defer cancel()
			rows := opts.service().List(ctx)

			var w io.Writer = cmd.OutOrStdout()
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return errors.Wrap(err, "create export file")
				}
				defer f.Close()
				w = f
			}
			return errors.Wrap(gocsv.Marshal(toCSV(rows), w), "write csv")
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file, stdout when empty")
	return cmd
}
