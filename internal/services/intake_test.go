package services

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDeclaration(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"string true", "true", true},
		{"checkbox on", "on", true},
		{"bool true", true, true},
		{"string false", "false", false},
		{"bool false", false, false},
		{"absent", nil, false},
		{"yes is not consent", "yes", false},
		{"upper case TRUE", "TRUE", false},
		{"empty", "", false},
		{"number", float64(1), false},
		{"form slice", []string{"on"}, true},
		{"empty slice", []string{}, false},
		{"padded on", " on ", false},
		{"trailing newline", "true\n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceDeclaration(tc.in))
		})
	}
}

func TestNewCandidate_OptionalFieldsDefaultEmpty(t *testing.T) {
	c := NewCandidate(map[string]any{
		"fullName": "  A B ",
		"email":    "a@b.com",
	})

	assert.Equal(t, "A B", c.FullName)
	assert.Equal(t, "a@b.com", c.Email)
	for _, v := range []string{c.Skills, c.Experience, c.WhyInternship, c.CareerGoals, c.AreasOfInterest, c.LinkedIn, c.Portfolio, c.Comments} {
		assert.Equal(t, "", v)
	}
	assert.False(t, c.Declaration)
}

func TestNewCandidate_FromForm(t *testing.T) {
	form := url.Values{
		"graduationYear": {"2025", "1999"},
		"declaration":    {"on"},
		"linkedin":       {"https://linkedin.com/in/ab"},
		"unknown":        {"ignored"},
	}
	c := NewCandidate(FieldsFromForm(form))

	assert.Equal(t, "2025", c.GraduationYear)
	assert.True(t, c.Declaration)
	assert.Equal(t, "https://linkedin.com/in/ab", c.LinkedIn)
}

func TestNewCandidate_FromJSON(t *testing.T) {
	body := `{"graduationYear": 2025, "declaration": true, "year": 3, "skills": ["go"]}`
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	require.NoError(t, dec.Decode(&fields))

	c := NewCandidate(fields)
	assert.Equal(t, "2025", c.GraduationYear)
	assert.Equal(t, "3", c.Year)
	assert.True(t, c.Declaration)
	assert.Equal(t, "", c.Skills)
}
