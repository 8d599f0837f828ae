// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-staffomatic/models"
)

// Field is one labelled line of a [KeyValues] block.
type Field struct {
	Label string
	Value string
}

// KeyValues renders fields as aligned "label  value" lines under title.
func KeyValues(title string, fields ...Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
	}
	for _, f := range fields {
		b.WriteString(labelStyle.Render(f.Label + strings.Repeat(" ", width-lipgloss.Width(f.Label))))
		b.WriteString("  ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return b.String()
}

// UsersTable renders users as a bordered table.
func UsersTable(users []models.User) string {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		rows = append(rows, []string{strconv.FormatInt(u.ID, 10), u.Email, name})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "EMAIL", "NAME").
		Rows(rows...)

	return t.String() + "\n"
}

// Error renders err for the terminal.
func Error(err error) string {
	return errorStyle.Render("error: "+err.Error()) + "\n"
}
