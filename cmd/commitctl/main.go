// Command commitctl drives the commitment/decommitment aggregation engine
// from the shell: one invocation per lifecycle operation (init, add,
// finalize, verify, tally), with running aggregates persisted to a small
// state file between invocations so that a sequence of commitctl calls can
// stand in for a long-lived in-process Session.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vocdoni/commitment-core/log"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "commitctl",
		Short:         "Aggregate and verify homomorphic vote commitments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(logLevel, "stderr")
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", log.LogLevelError, "debug|info|warn|error")

	root.AddCommand(
		newInitCommitCmd(),
		newAddCommitCmd(),
		newFinalizeCommitCmd(),
		newInitDecommitCmd(),
		newAddDecommitCmd(),
		newFinalizeDecommitCmd(),
		newVerifyCmd(),
		newTallyCmd(),
	)

	if err := root.Execute(); err != nil {
		correlationID := uuid.New().String()
		log.Errorw(err, "commitctl invocation failed (correlation id "+correlationID+")")
		fmt.Fprintf(os.Stderr, "commitctl: %v (correlation id %s)\n", err, correlationID)
		os.Exit(1)
	}
}
