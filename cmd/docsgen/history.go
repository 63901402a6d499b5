package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Gothic-Multiplayer-Classic/docs-generator/internal/history"
)

func runHistory() error {
	store, err := history.Open(CLI.History.HistoryDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	runs, err := store.RecentRuns(ctx, CLI.History.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STARTED\tRUN\tFILES\tBLOCKS\tENTITIES\tOUTPUTS\tWARN\tFAIL\tDURATION")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%.8s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			r.StartedAt.Format(time.DateTime), r.ID,
			r.FilesScanned, r.Blocks, r.Entities, r.Outputs, r.Warnings, r.Failures,
			r.Duration.Truncate(time.Millisecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if CLI.History.Warnings {
		for _, r := range runs {
			msgs, err := store.RunWarnings(ctx, r.ID)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				continue
			}
			fmt.Printf("\nWarnings for run %.8s:\n", r.ID)
			for _, m := range msgs {
				fmt.Printf("  %s\n", m)
			}
		}
	}
	return nil
}
