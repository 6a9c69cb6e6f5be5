// Copyright 2026 The TaxJar CLI Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/shopspring/decimal"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Field is one row of a labeled field listing, the human-mode
// rendering for single-entity results.
type Field struct {
	Label string
	Value string
}

// RenderFields writes a labeled field listing with aligned values.
// Label width is measured with ANSI sequences stripped so styled
// labels line up.
func RenderFields(w io.Writer, fields []Field) {
	width := 0
	for _, field := range fields {
		if n := ansi.StringWidth(field.Label); n > width {
			width = n
		}
	}
	for _, field := range fields {
		padding := strings.Repeat(" ", width-ansi.StringWidth(field.Label))
		fmt.Fprintf(w, "%s:%s  %s\n", labelStyle.Render(field.Label), padding, field.Value)
	}
}

// RenderError writes a styled error line for main's terminal output.
func RenderError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}

// Money formats an amount as fixed two-decimal currency: 8.875
// becomes $8.88 (banker-free half-up rounding via decimal), -16.5
// becomes -$16.50.
func Money(amount float64) string {
	value := decimal.NewFromFloat(amount)
	if value.IsNegative() {
		return "-$" + value.Abs().StringFixed(2)
	}
	return "$" + value.StringFixed(2)
}

// Percent formats a fractional rate as a percentage: 0.0625 becomes
// 6.25%. Decimal arithmetic keeps 0.0625*100 exact instead of
// accumulating float noise.
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).String() + "%"
}

// YesNo renders a boolean for human-mode output.
func YesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
