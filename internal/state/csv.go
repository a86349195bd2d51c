package state

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/trifold-dev/trifold/internal/model"
)

// CSVHeader is the header row for ledger CSV exports.
const CSVHeader = "kind,id,label,amount,type,folder"

// WriteLedgerCSV writes one month's line items as CSV, incomes first,
// preserving insertion order.
func WriteLedgerCSV(w io.Writer, ledger model.MonthLedger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, kind := range []model.ItemKind{model.KindIncomes, model.KindExpenses} {
		for i, it := range ledger.Items(kind) {
			row := []string{
				string(kind),
				it.ID,
				it.Label,
				it.Amount.StringFixed(2),
				string(it.Type),
				string(it.Folder),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing %s row %d: %w", kind, i, err)
			}
		}
	}
	return cw.Error()
}
