package extract

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/euromillions-csv/internal/draw"
	"github.com/pfrederiksen/euromillions-csv/internal/extract/extracttest"
)

func TestExtract_SixMainBalls(t *testing.T) {
	page := extracttest.SourcePage(
		extracttest.SourceSection([]string{"12", "7", "33", "41", "5", "9"}, []string{"3", "11"}),
	)

	draws := Extract(page, "2024-01-01")

	require.Len(t, draws, 1)
	assert.Equal(t, "2024-01-01", draws[0].Date)
	assert.Equal(t, [draw.MainCount]string{"12", "7", "33", "41", "5"}, draws[0].Main)
	assert.Equal(t, [draw.BonusCount]string{"3", "11"}, draws[0].Bonus)
}

func TestExtract_TooFewMainBalls(t *testing.T) {
	page := extracttest.SourcePage(
		extracttest.SourceSection([]string{"1", "2", "3"}, []string{"4", "5"}),
	)

	result := New(nil).Extract(page, "2024-01-01")

	assert.Empty(t, result.Draws)
	assert.Equal(t, 1, result.Sections)
}

func TestExtract_BonusPaddingAndTruncation(t *testing.T) {
	tests := []struct {
		name  string
		bonus []string
		want  [draw.BonusCount]string
	}{
		{name: "none", bonus: nil, want: [draw.BonusCount]string{"", ""}},
		{name: "one", bonus: []string{"8"}, want: [draw.BonusCount]string{"8", ""}},
		{name: "three", bonus: []string{"8", "9", "10"}, want: [draw.BonusCount]string{"8", "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := extracttest.SourcePage(
				extracttest.SourceSection([]string{"1", "2", "3", "4", "5"}, tt.bonus),
			)

			draws := Extract(page, "label")

			require.Len(t, draws, 1)
			assert.Equal(t, tt.want, draws[0].Bonus)
		})
	}
}

func TestExtract_ReversesSectionOrder(t *testing.T) {
	page := extracttest.SourcePage(
		extracttest.SourceSection([]string{"1", "2", "3", "4", "5"}, []string{"1", "2"}),
		extracttest.SourceSection([]string{"1", "2"}, nil),
		extracttest.SourceSection([]string{"11", "12", "13", "14", "15"}, []string{"3", "4"}),
		extracttest.SourceSection([]string{"21", "22", "23", "24", "25"}, []string{"5", "6"}),
	)

	result := New(SourceMatcher{}).Extract(page, "2024-02-02")

	assert.Equal(t, 4, result.Sections)
	require.Len(t, result.Draws, 3)
	assert.Equal(t, "21", result.Draws[0].Main[0])
	assert.Equal(t, "11", result.Draws[1].Main[0])
	assert.Equal(t, "1", result.Draws[2].Main[0])
}

func TestExtract_NoSections(t *testing.T) {
	result := New(nil).Extract("<html><body>nothing here</body></html>", "x")

	assert.Empty(t, result.Draws)
	assert.Zero(t, result.Sections)
}

func TestExtract_BallsOutsideSectionIgnored(t *testing.T) {
	// Balls before the list opens are not part of any section.
	stray := extracttest.SourceSection([]string{"1", "2", "3", "4", "5"}, nil)
	stray = stray[len(`<span class="html-tag">&lt;ul <span class="html-attribute-name">class</span>="<span class="html-attribute-value">balls</span>"&gt;</span>`):]

	draws := Extract(extracttest.SourcePage(stray), "x")

	assert.Empty(t, draws)
}

func TestExtract_Fixture(t *testing.T) {
	data, err := os.ReadFile("testdata/2024-01-02.html")
	require.NoError(t, err)

	result := New(nil).Extract(string(data), "2024-01-02")

	assert.Equal(t, 2, result.Sections)
	require.Len(t, result.Draws, 2)
	assert.Equal(t, []string{"2024-01-02", "3", "11", "20", "41", "50", "2", "12"}, result.Draws[0].Row())
	assert.Equal(t, []string{"2024-01-02", "8", "15", "26", "34", "48", "4", "9"}, result.Draws[1].Row())
}

func TestReverseDraws(t *testing.T) {
	draws := []draw.Draw{{Date: "a"}, {Date: "b"}, {Date: "c"}}

	ReverseDraws(draws)

	assert.Equal(t, []draw.Draw{{Date: "c"}, {Date: "b"}, {Date: "a"}}, draws)

	empty := []draw.Draw{}
	ReverseDraws(empty)
	assert.Empty(t, empty)
}
