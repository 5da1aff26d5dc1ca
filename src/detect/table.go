package detect

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var tableHeaders = []string{"Index", "Char", "Category", "Block", "Script", "Identifier Type", "Name"}

// RenderTable writes reports to w as a borderless table with a header row.
func RenderTable(w io.Writer, reports []CharacterReport) error {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			r.Char,
			r.Category,
			r.Block,
			r.Script,
			r.IdentifierType,
			r.Name,
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(tableHeaders...).
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("writing character table: %w", err)
	}
	return nil
}
