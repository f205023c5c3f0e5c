package main

import (
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what setup would do without changing anything",
	Long: `Plan runs the preflight checks and probes each step's state, then
prints what setup would install or rewrite. Nothing on the host is
modified; the only network traffic is the single reachability ping.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&setupUser, "user", "", "workspace owner (default: $SUDO_USER)")
	planCmd.Flags().BoolVar(&setupSkipUpgrade, "skip-upgrade", false, "skip the apt-get upgrade pass")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	orchestrator, err := buildOrchestrator()
	if err != nil {
		return err
	}
	return orchestrator.Plan(cmd.Context())
}
