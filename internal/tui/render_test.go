package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-staffomatic/models"
)

func TestKeyValues(t *testing.T) {
	out := KeyValues("Identity",
		Field{Label: "auth", Value: "token"},
		Field{Label: "endpoint", Value: "https://api.staffomatic.com/v3/"},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Identity")
	assert.Contains(t, lines[1], "auth")
	assert.Contains(t, lines[1], "token")
	assert.Contains(t, lines[2], "https://api.staffomatic.com/v3/")
	assert.Equal(t, strings.Index(lines[1], "token"), strings.Index(lines[2], "https"))
}

func TestKeyValues_NoTitle(t *testing.T) {
	out := KeyValues("", Field{Label: "a", Value: "1"})
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestUsersTable(t *testing.T) {
	out := UsersTable([]models.User{
		{ID: 1, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		{ID: 22, Email: "alan@example.com", FirstName: "Alan"},
	})

	assert.Contains(t, out, "EMAIL")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "22")
	assert.Contains(t, out, "Alan")
}

func TestUsersTable_Empty(t *testing.T) {
	out := UsersTable(nil)
	assert.Contains(t, out, "ID")
	assert.NotContains(t, out, "@")
}

func TestError(t *testing.T) {
	assert.Contains(t, Error(errors.New("boom")), "error: boom")
}
