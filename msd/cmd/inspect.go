package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sarchlab/massstorage/savegame"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SAVE_FILE [SAVE]",
	Short: "Show the saves in a savegame database.",
	Long: "`inspect saves.sqlite3` lists the saves. `inspect saves.sqlite3 " +
		"autosave` prints the records of one save as JSON.",
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := savegame.Open(args[0])
		if err != nil {
			return err
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		if len(args) == 1 {
			saves, err := store.Saves(ctx)
			if err != nil {
				return err
			}

			for _, s := range saves {
				fmt.Fprintf(out, "%-20s tick %-10d %d records\n",
					s.Name, s.Tick, s.Records)
			}

			return nil
		}

		records, err := store.Records(ctx, args[1])
		if err != nil {
			return err
		}

		names := make([]string, 0, len(records))
		for n := range records {
			names = append(names, n)
		}
		sort.Strings(names)

		for _, n := range names {
			raw, err := json.MarshalIndent(records[n], "  ", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s:\n  %s\n", n, raw)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
