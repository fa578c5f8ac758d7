package summary

import (
	"testing"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s, err := ParseResponse(` {"summary": "  Kunjungan Mei 2024 mencapai 1.200 orang. "} `)
		require.NoError(t, err)
		assert.Equal(t, "Kunjungan Mei 2024 mencapai 1.200 orang.", s)
	})

	t.Run("Empty summary", func(t *testing.T) {
		_, err := ParseResponse(`{"summary": "   "}`)
		assert.ErrorIs(t, err, ErrEmptySummary)
	})

	t.Run("Not JSON", func(t *testing.T) {
		_, err := ParseResponse("Kunjungan bulan ini naik.")
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(models.NarrativeInput{
		MonthName:       "Mei",
		Year:            2024,
		DestinationName: "Goa Jatijajar",
		Wisnus:          1000,
		Wisman:          20,
		Total:           1020,
		Nationalities:   []models.WismanDetail{{Country: "Belanda", Count: 12}},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Goa Jatijajar bulan Mei 2024")
	assert.Contains(t, prompt, `"wisnus": 1000`)
	assert.Contains(t, prompt, `"country": "Belanda"`)

	prompt, err = BuildPrompt(models.NarrativeInput{MonthName: "Juni", Year: 2024})
	require.NoError(t, err)
	assert.Contains(t, prompt, `"nationalities": []`)
}
