package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	summaryStyle = lipgloss.NewStyle().Faint(true)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			MarginRight(2)
	statStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// renderTable renders a bordered table for list output
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	return t.Render()
}

// renderCard renders one dashboard stat card
func renderCard(title string, value int, caption string) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		statStyle.Render(fmt.Sprintf("%d", value)),
		summaryStyle.Render(caption),
	)
	return cardStyle.Render(body)
}

func formatPrice(price float64, currency string) string {
	return fmt.Sprintf("%.2f %s", price, currency)
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
