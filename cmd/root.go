package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/config"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/ranking"
	"github.com/arcanaland/frenchdeck/internal/render"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var showKeys bool

	rootCmd := &cobra.Command{
		Use:   "frenchdeck",
		Short: "Explore a 52-card French deck",
		Long: `Frenchdeck builds a 52-card French deck and lets you index, slice,
iterate and draw from it.

Run without a command, it prints the whole deck sorted "spades high":
by rank from 2 to ace, and for equal ranks clubs < diamonds < hearts < spades.
This listing ignores the config file; only --format and --color change it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFor(cmd, config.Default())
			if err != nil {
				return err
			}

			sorted := ranking.Sort(deck.New().Cards())
			if showKeys {
				return p.PrintKeyed(sorted, ranking.SpadesHigh)
			}
			return p.Print(sorted...)
		},
	}

	rootCmd.Flags().BoolVarP(&showKeys, "keys", "k", false, "Prefix each card with its sort key")
	rootCmd.PersistentFlags().String("format", "", "Output format: repr, short or json (default from config)")
	rootCmd.PersistentFlags().String("color", "", "Colour mode: auto, always or never (default from config)")

	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSliceCmd())
	rootCmd.AddCommand(newDrawCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newPrinter loads the config and applies the --format and --color overrides
func newPrinter(cmd *cobra.Command) (*render.Printer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return printerFor(cmd, cfg)
}

// printerFor applies the --format and --color overrides to cfg
func printerFor(cmd *cobra.Command, cfg *config.Config) (*render.Printer, error) {
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Format = format
	}
	if color, _ := cmd.Flags().GetString("color"); color != "" {
		cfg.Color = color
	}

	return render.NewPrinter(cmd.OutOrStdout(), cfg)
}
