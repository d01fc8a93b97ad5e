package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands offered by the devices of a scenario.",
	Long: "`commands --scenario colony.yaml` prints, for every device, the " +
		"numbered commands that can be passed to `simulate --debug`.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("scenario")
		devMode, _ := cmd.Flags().GetBool("dev")
		if !cmd.Flags().Changed("dev") {
			devMode = envBool(EnvDevMode)
		}

		b := simulateOptions{}.builder(log.New(os.Stderr, "", log.LstdFlags))

		s, err := buildScenario(path, b)
		if err != nil {
			return err
		}
		defer s.Terminate()

		out := cmd.OutOrStdout()
		for _, d := range s.Devices() {
			fmt.Fprintln(out, d.Name())

			commands := d.Commands(devMode)
			if len(commands) == 0 {
				fmt.Fprintln(out, "  (no commands, enable dev mode)")
			}

			for i, c := range commands {
				fmt.Fprintf(out, "  %d. %s\n", i+1, c.Label)
				if c.Description != "" {
					fmt.Fprintf(out, "     %s\n", c.Description)
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().String("scenario", "", "Scenario file to read.")
	commandsCmd.Flags().Bool("dev", false,
		"Show the debug commands. Defaults to "+EnvDevMode+".")
	_ = commandsCmd.MarkFlagRequired("scenario")
}
