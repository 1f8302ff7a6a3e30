package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/abcpharmacy/backoffice-golang/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).
			BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	boxStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).Padding(1, 2)

	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	badgeSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badgeWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	badgeDanger  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	badgeInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	badgeMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// stockBadge colors a stock status the way the web dashboard's badges did.
func stockBadge(status models.StockStatus) string {
	switch status {
	case models.OutOfStock:
		return badgeDanger.Render(string(status))
	case models.LowStock:
		return badgeWarning.Render(string(status))
	default:
		return badgeSuccess.Render(string(status))
	}
}

// orderBadge colors an order status.
func orderBadge(status string) string {
	switch status {
	case models.OrderCompleted:
		return badgeSuccess.Render(status)
	case models.OrderPending:
		return badgeWarning.Render(status)
	case models.OrderShipped:
		return badgeInfo.Render(status)
	case models.OrderCancelled:
		return badgeDanger.Render(status)
	default:
		return badgeMuted.Render(status)
	}
}
