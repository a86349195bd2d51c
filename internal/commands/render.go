package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// money formats an amount for display with the configured currency label.
func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}

// percent formats a percentage with one decimal place.
func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// newTable returns a table writer in the house style: rounded borders,
// numeric columns right-aligned by the caller.
func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

// rightAligned builds column configs that right-align the given columns.
func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, col := range columns {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight})
	}
	return configs
}
