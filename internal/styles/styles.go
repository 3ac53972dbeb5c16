// Package styles holds the lipgloss palette shared by the CLI and the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pengelbrecht/calc/internal/calculator"
)

// Colors
var (
	ColorGray   = lipgloss.Color("241")
	ColorGreen  = lipgloss.Color("42")
	ColorRed    = lipgloss.Color("196")
	ColorBlue   = lipgloss.Color("39")
	ColorYellow = lipgloss.Color("214")
	ColorPurple = lipgloss.Color("141")
)

// Base styles
var (
	DimStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPurple)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorBlue)
)

// Value styles
var (
	ResultStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	OperandStyle  = lipgloss.NewStyle()
	OperatorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorRed)
)

// Selected marks the focused element in the TUI.
var SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow).Underline(true)

// RenderResult styles a computed value.
func RenderResult(s string) string {
	return ResultStyle.Render(s)
}

// RenderOperator styles an operator symbol.
func RenderOperator(op calculator.Op) string {
	return OperatorStyle.Render(op.Symbol())
}

// RenderError styles an error message.
func RenderError(s string) string {
	return ErrorStyle.Render(s)
}

// RenderHeader styles a section header.
func RenderHeader(s string) string {
	return HeaderStyle.Render(s)
}

// RenderLabel styles a field label.
func RenderLabel(s string) string {
	return LabelStyle.Render(s)
}

// RenderDim styles secondary text.
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// RenderBox draws content inside a rounded border.
func RenderBox(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1).
		Render(content)
}

// RenderExpression renders "a op b = r" with each part styled.
func RenderExpression(a string, op calculator.Op, b, r string) string {
	return OperandStyle.Render(a) + " " + RenderOperator(op) + " " + OperandStyle.Render(b) + " = " + RenderResult(r)
}
