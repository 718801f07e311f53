// SPDX-License-Identifier: MIT

// Package textfmt renders the plain-text pieces shared by engine reports:
// bordered tables, horizontal rules and section headings.
package textfmt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RuleWidth is the width of Rule() separators in reports.
const RuleWidth = 50

var cell = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

// Table renders rows under headers with a thin border. Cells are right
// aligned, which suits columns of numbers.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style { return cell })

	return t.String()
}

// Rule returns a RuleWidth-wide dashed separator.
func Rule() string { return strings.Repeat("-", RuleWidth) }

// Section returns a heading framed by rules.
func Section(title string) string {
	return Rule() + "\n" + title + "\n" + Rule()
}

// F formats v with a fixed number of decimals.
func F(v float64, decimals int) string { return fmt.Sprintf("%.*f", decimals, v) }

// E formats v in scientific notation.
func E(v float64, decimals int) string { return fmt.Sprintf("%.*e", decimals, v) }

// I formats an integer.
func I(v int) string { return fmt.Sprintf("%d", v) }
