package aggregate

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/releve-dev/releve/internal/model"
)

const tableWidth = 80

// RenderTable writes one grouped summary table: a row per group sorted by
// balance descending, then a grand-total footer.
func RenderTable(w io.Writer, title string, groups map[string]Totals, total Totals) {
	if total.Count == 0 {
		fmt.Fprintln(w, "Aucune opération")
		return
	}

	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "%-25s | %8s | %12s | %12s | %12s\n", "GROUPE", "NOMBRE", "DÉBIT", "CRÉDIT", "SOLDE")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	for _, name := range sortedByBalance(groups) {
		t := groups[name]
		fmt.Fprintf(w, "%-25s | %8d | %12s | %12s | %12s\n",
			clip(name, 24), t.Count, blankIfZero(t.Debit), blankIfZero(t.Credit), signed(t.Balance()))
	}

	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintf(w, "%-25s | %8d | %12s | %12s | %12s\n",
		"TOTAL", total.Count, total.Debit.StringFixed(2), total.Credit.StringFixed(2), signed(total.Balance()))
}

// RenderNested writes the category table with each category's subcategories
// indented beneath it.
func RenderNested(w io.Writer, records []model.Record, uncategorized, unspecified string) {
	if len(records) == 0 {
		fmt.Fprintln(w, "Aucune opération")
		return
	}

	catKey := CategoryKey(uncategorized)
	subKey := SubcategoryKey(unspecified)

	byCat := make(map[string][]model.Record)
	for _, rec := range records {
		key := catKey(rec)
		byCat[key] = append(byCat[key], rec)
	}

	catTotals := By(records, catKey)

	fmt.Fprintf(w, "\n%s\n", "AGRÉGATION PAR CATÉGORIES ET SOUS-CATÉGORIES")
	fmt.Fprintln(w, strings.Repeat("=", tableWidth+10))
	fmt.Fprintf(w, "%-35s | %8s | %12s | %12s | %12s\n", "CATÉGORIE / SOUS-CATÉGORIE", "NOMBRE", "DÉBIT", "CRÉDIT", "SOLDE")
	fmt.Fprintln(w, strings.Repeat("=", tableWidth+10))

	for _, cat := range sortedByBalance(catTotals) {
		t := catTotals[cat]
		fmt.Fprintf(w, "%-35s | %8d | %12s | %12s | %12s\n",
			clip(cat, 33), t.Count, blankIfZero(t.Debit), blankIfZero(t.Credit), signed(t.Balance()))

		subTotals := By(byCat[cat], subKey)
		for _, sub := range sortedByBalance(subTotals) {
			st := subTotals[sub]
			fmt.Fprintf(w, "  - %-31s | %8d | %12s | %12s | %12s\n",
				clip(sub, 30), st.Count, blankIfZero(st.Debit), blankIfZero(st.Credit), signed(st.Balance()))
		}
		fmt.Fprintln(w, strings.Repeat("-", tableWidth+10))
	}

	total := GrandTotal(records)
	fmt.Fprintln(w, strings.Repeat("=", tableWidth+10))
	fmt.Fprintf(w, "%-35s | %8d | %12s | %12s | %12s\n",
		"TOTAL GÉNÉRAL", total.Count, total.Debit.StringFixed(2), total.Credit.StringFixed(2), signed(total.Balance()))
}

// sortedByBalance orders group names by balance descending; ties break on
// the name so output is deterministic.
func sortedByBalance(groups map[string]Totals) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		bi, bj := groups[names[i]].Balance(), groups[names[j]].Balance()
		if !bi.Equal(bj) {
			return bi.GreaterThan(bj)
		}
		return names[i] < names[j]
	})
	return names
}

func blankIfZero(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

func signed(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
