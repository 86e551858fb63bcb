package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/themestore/themestore/internal/catalog"
	"github.com/themestore/themestore/internal/tui/components"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func writeThemeTable(out io.Writer, themes []catalog.Theme) error {
	rows := make([][]string, 0, len(themes))
	for _, theme := range themes {
		rows = append(rows, []string{
			strconv.Itoa(theme.ID),
			theme.Name,
			string(theme.Category),
			components.FormatPrice(theme.Price),
			strconv.FormatFloat(theme.Rating, 'f', 1, 64),
			humanize.Comma(int64(theme.Sales)),
		})
	}
	return writeTable(out, []string{"ID", "NAME", "CATEGORY", "PRICE", "RATING", "SALES"}, rows)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
