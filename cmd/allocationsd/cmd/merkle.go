package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/allocnet/chain/x/allocations/types"
)

// MerkleRootCmd derives the root an oracle submits with a claim from the
// evidence backing it.
func MerkleRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merkle-root [file...]",
		Short: "Compute the claim merkle root of evidence files",
		Long:  "Each file is one leaf. With --lines every non-empty line of every file is a leaf.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			perLine, _ := cmd.Flags().GetBool("lines")

			var leaves [][]byte
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("error reading %s: %w", path, err)
				}
				if !perLine {
					leaves = append(leaves, content)
					continue
				}
				for _, line := range bytes.Split(content, []byte("\n")) {
					line = bytes.TrimSpace(line)
					if len(line) == 0 {
						continue
					}
					leaves = append(leaves, line)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), types.ComputeMerkleRoot(leaves).String())

			prove, _ := cmd.Flags().GetInt("prove")
			if prove < 0 {
				return nil
			}
			proof, err := types.ProveLeaf(leaves, prove)
			if err != nil {
				return err
			}
			bz, err := json.MarshalIndent(proof, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
	cmd.Flags().Bool("lines", false, "treat every line as a separate leaf")
	cmd.Flags().Int("prove", -1, "also print the inclusion proof of the leaf at this index")
	return cmd
}
