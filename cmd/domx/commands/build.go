package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/domx/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [entry points...]",
		Short: "Bundle the entry points once",
		Long: "Bundle the entry points once. Arguments override the entry points of domx.yaml.\n" +
			"Builds run in production mode, with transform caching on, unless told otherwise.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outdir, _ := cmd.Flags().GetString("outdir")
			minify, _ := cmd.Flags().GetBool("minify")
			metafile, _ := cmd.Flags().GetString("metafile")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				SessionOptions: sessionOptions(cmd),
				EntryPoints:    args,
				Outdir:         outdir,
				Minify:         minify,
				Metafile:       metafile,
			})
		},
	}
	cmd.Flags().StringP("outdir", "o", "", "Output directory (default from domx.yaml, or dist)")
	cmd.Flags().Bool("minify", false, "Minify the bundle")
	cmd.Flags().String("metafile", "", "Write the build metafile to this path")
	return cmd
}
