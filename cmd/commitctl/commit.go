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

func newInitCommitCmd() *cobra.Command {
	var keyHex, statePath string
	cmd := &cobra.Command{
		Use:   "init-commit",
		Short: "Start a new commitment aggregation session",
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
			log.Debugw("initializing commitment session", "curve", curveName, "state", statePath)
			return writeState(statePath, aggregateState{curveIdx: int(k.CurveIdx), bundle: ""})
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded public key blob (required)")
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "key")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	return cmd
}

func newAddCommitCmd() *cobra.Command {
	var keyHex, statePath, contribution string
	cmd := &cobra.Command{
		Use:   "add-commit",
		Short: "Fold one commitment contribution into the running aggregate",
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
			if err := sess.InitCommitment(keyBlob); err != nil {
				return fmt.Errorf("cannot resume session: %w", err)
			}
			if st.bundle != "" {
				if err := sess.AddCommitment([]byte(st.bundle)); err != nil {
					return fmt.Errorf("corrupt session state: %w", err)
				}
			}
			if err := sess.AddCommitment([]byte(contribution)); err != nil {
				return fmt.Errorf("invalid contribution: %w", err)
			}
			bundle, err := sess.FinalizeCommitment()
			if err != nil {
				return fmt.Errorf("cannot persist aggregate: %w", err)
			}

			st.bundle = string(bundle)
			log.Debugw("folded commitment contribution", "state", statePath)
			return writeState(statePath, st)
		},
	}
	cmd.Flags().StringVar(&keyHex, "key", "", "hex-encoded public key blob (required, same as init-commit)")
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cmd.Flags().StringVar(&contribution, "contribution", "", "one commitment contribution in wire format (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "key")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	cobra.MarkFlagRequired(cmd.Flags(), "contribution")
	return cmd
}

func newFinalizeCommitCmd() *cobra.Command {
	var statePath string
	cmd := &cobra.Command{
		Use:   "finalize-commit",
		Short: "Emit the aggregated commitment bundle and close the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := readState(statePath)
			if err != nil {
				return err
			}
			if st.bundle == "" {
				return fmt.Errorf("session at %s never received a contribution", statePath)
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.bundle)
			log.Infow("commitment session finalized", "state", statePath)
			return os.Remove(statePath)
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "path to the session state file (required)")
	cobra.MarkFlagRequired(cmd.Flags(), "state")
	return cmd
}
