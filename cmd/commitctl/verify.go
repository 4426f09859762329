package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/vocdoni/commitment-core/commitment"
	"github.com/vocdoni/commitment-core/log"
)

func newVerifyCmd() *cobra.Command {
	var keyHex, commitmentBundle, decommitmentBundle string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a commitment bundle opens to a decommitment bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBlob, err := hexutil.Decode(keyHex)
			if err != nil {
				return fmt.Errorf("--key is not valid hex: %w", err)
			}
			ok, err := commitment.Verify([]byte(commitmentBundle), []byte(decommitmentBundle), keyBlob)
			if err != nil {
				return fmt.Errorf("verification error: %w", err)
			}
			log.Infow("verification complete", "result", ok)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded public key blob (required)")
	cmd.Flags().StringVar(&commitmentBundle, "commitment", "", "finalized commitment bundle in wire format (required)")
	cmd.Flags().StringVar(&decommitmentBundle, "decommitment", "", "finalized decommitment bundle in wire format (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "key")
	cobra.MarkFlagRequired(cmd.Flags(), "commitment")
	cobra.MarkFlagRequired(cmd.Flags(), "decommitment")
	return cmd
}
