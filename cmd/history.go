package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/valentine/internal/app"
	"github.com/zjrosen/valentine/internal/infrastructure/sqlite"
	"github.com/zjrosen/valentine/internal/viewings/domain"
)

var historyFilter domain.ListFilter

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past viewings",
	Long:  `Show when the greeting was played, how far it got and whether the question was reached.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyFilter.Limit, "limit", "n", 10, "maximum viewings to show (0 for all)")
	historyCmd.Flags().StringVar(&historyFilter.Variant, "variant", "", "only this variant")
	historyCmd.Flags().BoolVar(&historyFilter.CompletedOnly, "completed", false, "only viewings that reached the question")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	db, err := sqlite.NewDB(expandHome(cfg.HistoryPath()))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := db.Viewings()
	defer func() { _ = repo.Close() }()

	list, err := repo.List(historyFilter)
	if err != nil {
		return err
	}
	printHistory(cmd.OutOrStdout(), list)
	return nil
}

func printHistory(w io.Writer, list []*domain.Viewing) {
	if len(list) == 0 {
		_, _ = fmt.Fprintln(w, "No viewings yet.")
		return
	}
	_, _ = fmt.Fprintf(w, "%-16s  %-7s  %-8s  %6s  %8s  %s\n", "STARTED", "VARIANT", "REACHED", "PETALS", "DURATION", "ASKED")
	for _, v := range list {
		asked := ""
		if v.Completed() {
			asked = "♥"
		}
		_, _ = fmt.Fprintf(w, "%-16s  %-7s  %-8s  %6d  %8s  %s\n",
			v.StartedAt().Local().Format("2006-01-02 15:04"),
			v.Variant(),
			v.Furthest(),
			v.Petals(),
			v.Duration().Round(time.Second),
			asked,
		)
	}
}

// saveViewing opens the history database at path and records s.
func saveViewing(path string, s app.Summary) error {
	db, err := sqlite.NewDB(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return recordViewing(db.Viewings(), s)
}

func recordViewing(repo domain.Repository, s app.Summary) error {
	v := domain.NewViewing(domain.Outcome{
		Variant:   string(s.Variant),
		Furthest:  string(s.Furthest),
		Petals:    s.Petals,
		Clicks:    s.Clicks,
		Completed: s.Completed,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	})
	if err := repo.Save(v); err != nil {
		return fmt.Errorf("saving viewing: %w", err)
	}
	return nil
}
