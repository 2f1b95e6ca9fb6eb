package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/domx/internal/app"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [files or directories...]",
		Short: "Transform eligible files without bundling",
		Long: "Transform eligible files without bundling. Outputs mirror the project layout\n" +
			"below the output directory. Without arguments the whole project is transformed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outdir, _ := cmd.Flags().GetString("outdir")
			stdout, _ := cmd.Flags().GetBool("stdout")

			return c.app.Transform(cmd.Context(), app.TransformOptions{
				SessionOptions: sessionOptions(cmd),
				Paths:          args,
				Outdir:         outdir,
				Stdout:         stdout,
			})
		},
	}
	cmd.Flags().StringP("outdir", "o", "", "Output directory (default from domx.yaml, or dist)")
	cmd.Flags().Bool("stdout", false, "Print the output of a single file instead of writing it")
	return cmd
}
