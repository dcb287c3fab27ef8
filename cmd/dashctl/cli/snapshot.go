package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Show category usage per content source",
	RunE:  runCategories,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export dashboard snapshots",
	Long: `Request a stored export of the full dashboard and check on it.

Examples:
  dashctl snapshot create
  dashctl snapshot get 7f1f2a52-4a0d-4a8b-9a55-0c5f1f6f3a10`,
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Queue a new snapshot",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotCreate,
}

var snapshotGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show snapshot status and download URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotGet,
}

func init() {
	snapshotCmd.AddCommand(snapshotCreateCmd)
	snapshotCmd.AddCommand(snapshotGetCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	usage, err := c.CategoryUsage(ctx)
	if err != nil {
		return fmt.Errorf("failed to load category usage: %w", err)
	}
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), usage)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tCATEGORY\tCOUNT")
	for _, u := range usage {
		fmt.Fprintf(w, "%s\t%s\t%d\n", u.Source, u.Name, u.Count)
	}
	return w.Flush()
}

func runSnapshotCreate(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	snap, err := c.RequestSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to request snapshot: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Snapshot queued\n")
	return printJSON(cmd.OutOrStdout(), snap)
}

func runSnapshotGet(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	snap, err := c.Snapshot(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), snap)
}
