package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Console implementa ports.Notifier.
type Console struct {
	out   io.Writer
	table bool
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole(table bool) *Console {
	return &Console{out: os.Stdout, table: table}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer, table bool) *Console {
	return &Console{out: w, table: table}
}

// Notify imprime la carta en el modo configurado.
func (c *Console) Notify(_ context.Context, card domain.Card) error {
	if len(card.Picks) == 0 {
		fmt.Fprintf(c.out, "[%s] no playable card — picked 0, skipped %d\n",
			time.Now().Format("15:04:05"), card.Skipped)
		for _, r := range card.SkipReasons {
			fmt.Fprintf(c.out, "  skip: %s\n", r)
		}
		return nil
	}

	if c.table {
		c.printFull(card)
	} else {
		c.printCompact(card)
	}
	return nil
}

// printCompact imprime lo esencial en 1-2 líneas.
func (c *Console) printCompact(card domain.Card) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] card: %d picks, %d skipped, $%.2f staked, best $%.2f / worst $%.2f",
		time.Now().Format("15:04:05"),
		card.Picked, card.Skipped, card.TotalStaked, card.BestCase, card.WorstCase)

	for _, p := range card.Picks {
		capped := ""
		if p.Stake.Capped {
			capped = "!"
		}
		fmt.Fprintf(&sb, " | #%d %s %s $%.0f%s", p.Slot, compactName(p.Event, 18), p.Side, p.Stake.Amount, capped)
	}
	if n := len(card.Warnings); n > 0 {
		fmt.Fprintf(&sb, " | warn:%d", n)
	}
	fmt.Fprintln(c.out, sb.String())
}

// printFull imprime la carta completa: picks, warnings y escenarios.
func (c *Console) printFull(card domain.Card) {
	fmt.Fprintf(c.out, "\n[%s] daily card — %d picks, %d skipped, $%.2f staked\n",
		card.BuiltAt.Format("15:04:05"), card.Picked, card.Skipped, card.TotalStaked)

	c.printPicks(card.Picks)
	c.printSkips(card.SkipReasons)
	c.printWarnings(card.Warnings)
	c.printScenarios(card)
}

func (c *Console) printPicks(picks []domain.Pick) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Slot", "Matchup", "Mkt", "Side", "Tier", "Pts", "Cents", "Stake", "Venue", "Odds", "")

	for _, p := range picks {
		capped := ""
		if p.Stake.Capped {
			capped = "CAPPED"
		}
		table.Append(
			fmt.Sprintf("%d", p.Slot),
			p.Event,
			string(p.Market),
			p.Side,
			p.Tier.String(),
			fmt.Sprintf("%+.1f", p.LinePoints),
			fmt.Sprintf("%+.0f", p.PriceCents),
			fmt.Sprintf("$%.2f", p.Stake.Amount),
			p.Stake.Venue,
			fmt.Sprintf("%+d", p.Stake.Odds),
			capped,
		)
	}
	table.Render()
}

func (c *Console) printSkips(reasons []string) {
	if len(reasons) == 0 {
		return
	}
	fmt.Fprintln(c.out, "\n  Skipped:")
	for _, r := range reasons {
		fmt.Fprintf(c.out, "    - %s\n", r)
	}
}

func (c *Console) printWarnings(warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(c.out, "\n  Concentration:")
	for _, w := range warnings {
		fmt.Fprintf(c.out, "    [%s] %s (%s)\n", w.Severity, w.Message, w.Breakdown)
	}
}

func (c *Console) printScenarios(card domain.Card) {
	if len(card.Scenarios) == 0 {
		return
	}

	fmt.Fprintln(c.out, "\n  Outcomes:")
	table := tablewriter.NewWriter(c.out)
	table.Header("W", "L", "Net P&L", "")

	for _, sc := range card.Scenarios {
		be := ""
		if sc.BreakEven {
			be = "~even"
		}
		table.Append(
			fmt.Sprintf("%d", sc.Wins),
			fmt.Sprintf("%d", sc.Losses),
			fmt.Sprintf("$%+.2f", sc.NetPL),
			be,
		)
	}
	table.Render()

	fmt.Fprintf(c.out, "  Best case $%+.2f | Worst case $%+.2f | At risk $%.2f\n",
		card.BestCase, card.WorstCase, card.TotalStaked)
}

// compactName recorta un nombre para el modo de una línea.
func compactName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	return name[:max-1] + "…"
}
