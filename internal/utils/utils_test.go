package utils_test

import (
	"testing"
	"time"

	"github.com/disparbud-kebumen/wisata-dashboard-be/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Goa Jatijajar":                 "goa-jatijajar",
		"  Pantai   Menganti ":          "pantai-menganti",
		"Benteng Van Der Wijck":         "benteng-van-der-wijck",
		"Curug Sikopel (Karangsambung)": "curug-sikopel-karangsambung",
		"Waduk_Sempor -- 2":             "waduk-sempor-2",
		"!!!":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.Slugify(in), in)
	}
}

func TestVisitID(t *testing.T) {
	assert.Equal(t, "goa-jatijajar-2024-5", utils.VisitID("goa-jatijajar", 2024, 5))
	assert.Equal(t, "goa-jatijajar-2024-12", utils.VisitID("goa-jatijajar", 2024, 12))
	assert.Equal(t, "visits/goa-jatijajar-2024-5", utils.VisitPath("goa-jatijajar", 2024, 5))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", utils.MonthName(1))
	assert.Equal(t, "Desember", utils.MonthName(12))
	assert.Equal(t, "", utils.MonthName(0))
	assert.Equal(t, "", utils.MonthName(13))
}

func TestPeriodEnded(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, utils.PeriodEnded(2024, 12, now))
	assert.True(t, utils.PeriodEnded(2025, 2, now))
	assert.False(t, utils.PeriodEnded(2025, 3, now), "current month is still open")
	assert.False(t, utils.PeriodEnded(2025, 4, now))
	assert.False(t, utils.PeriodEnded(2026, 1, now))
}

func TestPagination(t *testing.T) {
	q := utils.NewPaginationQuery(3, 10)
	assert.Equal(t, utils.PaginationQuery{Page: 3, Limit: 10, Offset: 20}, q)
	assert.Equal(t, utils.PaginationQuery{Page: 1, Limit: utils.DefaultLimit, Offset: 0}, utils.NewPaginationQuery(0, -5))

	tests := []struct {
		name                string
		total, limit, page  int
		wantPage, wantPages int
	}{
		{name: "Exact", total: 40, limit: 20, page: 2, wantPage: 2, wantPages: 2},
		{name: "Partial Last Page", total: 41, limit: 20, page: 3, wantPage: 3, wantPages: 3},
		{name: "Page Beyond End", total: 5, limit: 20, page: 4, wantPage: 1, wantPages: 1},
		{name: "Empty", total: 0, limit: 20, page: 2, wantPage: 1, wantPages: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := utils.BuildPaginationMeta(tc.total, tc.limit, tc.page)
			assert.Equal(t, tc.wantPage, meta.CurrentPage)
			assert.Equal(t, tc.wantPages, meta.TotalPages)
			assert.Equal(t, tc.total, meta.TotalItems)
		})
	}

	resp := utils.NewPaginatedResponse[string]("ok", nil, utils.BuildPaginationMeta(0, 20, 1))
	require.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestGenerateRandomString(t *testing.T) {
	pw, err := utils.GenerateTemporaryPassword()
	require.NoError(t, err)
	assert.Len(t, pw, utils.TemporaryPasswordLength)
	assert.NotContains(t, pw, "0")
	assert.NotContains(t, pw, "O")

	_, err = utils.GenerateRandomString(0)
	assert.Error(t, err)
}
