package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/luca-patrignani/camel-cards/domain/camel"
	"github.com/pterm/pterm"
)

// renderRanking prints every hand of one rule mode, weakest first,
// followed by a box with the total.
func renderRanking(w io.Writer, rules camel.Rules, ranked []camel.Ranked) error {
	data := pterm.TableData{{"Rank", "Hand", "Category", "Bid", "Winnings"}}
	var total int64
	for _, r := range ranked {
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			printHand(r.Hand, rules),
			r.Signature.Category().String(),
			strconv.FormatInt(r.Hand.Bid, 10),
			strconv.FormatInt(r.Winnings, 10),
		})
		total += r.Winnings
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	summary := pbox.WithTitle(pterm.LightYellow("|"+rules.String()+"|")).WithTitleTopCenter().
		Sprintf("%d hands\nTotal winnings: %d", len(ranked), total)

	_, err = fmt.Fprintln(w, table+"\n"+summary)
	return err
}

// printHand highlights the wildcards of h.
func printHand(h camel.Hand, rules camel.Rules) string {
	s := ""
	for _, c := range h.Cards {
		if c.IsWildcard(rules) {
			s += pterm.LightRed(c.String())
		} else {
			s += c.String()
		}
	}
	return s
}
