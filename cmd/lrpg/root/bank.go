package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"liferpg/internal/engine"
	"liferpg/internal/ui"
)

func parseAmount(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("amount is required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, errors.New("amount must be a positive integer")
	}
	return n, nil
}

func newBankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Move coins to and from the vault",
	}

	deposit := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Move active coins into the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseAmount(args)
			if err != nil {
				return err
			}
			_, err = dispatch(context.Background(), cmd.OutOrStdout(), engine.Deposit{Amount: n})
			return err
		},
	}

	var note string
	withdraw := &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Spend coins from the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseAmount(args)
			if err != nil {
				return err
			}
			_, err = dispatch(context.Background(), cmd.OutOrStdout(), engine.Withdraw{Amount: n, Note: note})
			return err
		},
	}
	withdraw.Flags().StringVarP(&note, "note", "n", "", "What the coins were spent on")

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show vault transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			_, st, notices, err := a.State(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printNotices(w, notices)
			fmt.Fprintln(w, ui.Heading(ui.IconVault, "Vault"))
			fmt.Fprintln(w, ui.LabelValue("Balance", st.Player.CoinsBank))
			fmt.Fprintln(w, ui.LabelValue("Active", st.Player.CoinsActive))
			txs := st.BankHistory
			if limit > 0 && len(txs) > limit {
				txs = txs[:limit]
			}
			for _, tx := range txs {
				amount := ui.Good.Render(fmt.Sprintf("+%d", tx.Amount))
				if tx.Kind == engine.TxWithdraw {
					amount = ui.Bad.Render(fmt.Sprintf("-%d", tx.Amount))
				}
				fmt.Fprintf(w, "- %s %s %s\n", ui.Muted.Render(shortDate(tx.Date)), amount, tx.Note)
			}
			return nil
		},
	}
	history.Flags().IntVarP(&limit, "limit", "l", 20, "Show at most this many entries (0 for all)")

	cmd.AddCommand(deposit, withdraw, history)
	return cmd
}

// shortDate trims an RFC3339 timestamp to its date.
func shortDate(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
