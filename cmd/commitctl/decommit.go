package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/vocdoni/commitment-core/commitment"
	"github.com/vocdoni/commitment-core/curve"
	"github.com/vocdoni/commitment-core/log"
	"github.com/vocdoni/commitment-core/wire"
)

func newInitDecommitCmd() *cobra.Command {
	var keyHex, statePath string
	cmd := &cobra.Command{
		Use:   "init-decommit",
		Short: "Start a new decommitment aggregation session",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBlob, err := hexutil.Decode(keyHex)
			if err != nil {
				return fmt.Errorf("--key is not valid hex: %w", err)
			}
			k, err := wire.ParseKey(keyBlob)
			if err != nil {
				return fmt.Errorf("invalid key blob: %w", err)
			}
			curveName, err := curve.Name(k.CurveIdx)
			if err != nil {
				return err
			}
			log.Debugw("initializing decommitment session", "curve", curveName, "state", statePath)
			return writeState(statePath, aggregateState{curveIdx: int(k.CurveIdx), bundle: ""})
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded public key blob (required)")
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "key")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	return cmd
}

func newAddDecommitCmd() *cobra.Command {
	var keyHex, statePath, contribution string
	cmd := &cobra.Command{
		Use:   "add-decommit",
		Short: "Fold one decommitment contribution into the running aggregate",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyBlob, err := hexutil.Decode(keyHex)
			if err != nil {
				return fmt.Errorf("--key is not valid hex: %w", err)
			}
			st, err := readState(statePath)
			if err != nil {
				return err
			}

			sess := commitment.NewSession()
			if err := sess.InitDecommitment(keyBlob); err != nil {
				return fmt.Errorf("cannot resume session: %w", err)
			}
			if st.bundle != "" {
				if err := sess.AddDecommitment([]byte(st.bundle)); err != nil {
					return fmt.Errorf("corrupt session state: %w", err)
				}
			}
			if err := sess.AddDecommitment([]byte(contribution)); err != nil {
				return fmt.Errorf("invalid contribution: %w", err)
			}
			bundle, err := sess.FinalizeDecommitment()
			if err != nil {
				return fmt.Errorf("cannot persist aggregate: %w", err)
			}

			st.bundle = string(bundle)
			log.Debugw("folded decommitment contribution", "state", statePath)
			return writeState(statePath, st)
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded public key blob (required, same as init-decommit)")
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cmd.Flags().StringVar(&contribution, "contribution", "", "one decommitment contribution in wire format (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "key")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	cobra.MarkFlagRequired(cmd.Flags(), "contribution")
	return cmd
}

func newFinalizeDecommitCmd() *cobra.Command {
	var statePath string
	cmd := &cobra.Command{
		Use:   "finalize-decommit",
		Short: "Emit the aggregated decommitment bundle and close the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := readState(statePath)
			if err != nil {
				return err
			}
			if st.bundle == "" {
				return fmt.Errorf("session at %s never received a contribution", statePath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.bundle)
			log.Infow("decommitment session finalized", "state", statePath)
			return os.Remove(statePath)
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	return cmd
}
