package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/artsearch/internal/app"
	"github.com/five82/artsearch/internal/nav"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "artsearch: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		opts  app.Options
		id    string
		query string
	)

	cmd := &cobra.Command{
		Use:   "artsearch [location]",
		Short: "Search the Art Institute of Chicago collection from the terminal",
		Long: `artsearch searches the Art Institute of Chicago public collection API and
shows artwork details. The optional location argument selects the first
view the same way a page address would: "?q=Monet" seeds the search form,
"?id=27992&q=Monet" opens an artwork.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Location = resolveLocation(args, id, query)
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/artsearch/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/artsearch/prefs.toml)")
	flags.StringVar(&opts.APIBase, "api", "", "API base URL override")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&id, "id", "", "open the artwork with this id")
	flags.StringVar(&query, "q", "", "seed the search form with this query")
	return cmd
}

// resolveLocation merges the positional location with --id and --q. Flags
// win over the positional argument.
func resolveLocation(args []string, id, query string) string {
	loc := nav.Location{}
	if len(args) > 0 {
		loc = nav.Parse(args[0])
	}
	if id != "" {
		loc.ID = id
	}
	if query != "" {
		loc.Query = query
	}
	return loc.String()
}
