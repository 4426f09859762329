package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocdoni/commitment-core/commitment"
	"github.com/vocdoni/commitment-core/log"
)

func newTallyCmd() *cobra.Command {
	var decommitmentBundle string
	var maxVotes, candidates int
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Decode a finalized decommitment bundle into per-candidate digits",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := commitment.Tally([]byte(decommitmentBundle), maxVotes, candidates)
			if err != nil {
				return fmt.Errorf("tally failed: %w", err)
			}
			log.Debugw("tally decoded", "maxVotes", maxVotes, "candidates", candidates)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&decommitmentBundle, "decommitment", "", "finalized decommitment bundle in wire format (required)")
	cmd.Flags().IntVar(&maxVotes, "max-votes", 0, "maximum vote count per candidate, N (required)")
	cmd.Flags().IntVar(&candidates, "candidates", 0, "number of candidates, m (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "decommitment")
	cobra.MarkFlagRequired(cmd.Flags(), "max-votes")
	cobra.MarkFlagRequired(cmd.Flags(), "candidates")
	return cmd
}
