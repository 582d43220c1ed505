package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"monastery/internal/catalog"
)

func names(records []catalog.LocationRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestApply_Scenarios(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
		feedback string
	}{
		{
			name:     "nyingma only",
			criteria: Criteria{Category: "Nyingma", Region: Any},
			want: []string{
				"Pemayangtse Monastery",
				"Tashiding Monastery",
				"Enchey Monastery",
				"Sanga Choeling Monastery",
				"Dubdi Monastery",
				"Do Drul Chorten",
			},
			feedback: "Found 6 monasteries matching your criteria.",
		},
		{
			name:     "search ranka",
			criteria: Criteria{Category: Any, Region: Any, SearchText: "ranka"},
			want:     []string{"Lingdum Monastery (Ranka)"},
			feedback: "Found 1 monasteries matching your criteria.",
		},
		{
			name:     "case insensitive name",
			criteria: Criteria{Category: Any, Region: Any, SearchText: "rumtek"},
			want:     []string{"Rumtek Monastery"},
			feedback: "Found 1 monasteries matching your criteria.",
		},
		{
			name:     "region substring",
			criteria: Criteria{Category: Any, Region: Any, SearchText: "east"},
			want: []string{
				"Rumtek Monastery",
				"Enchey Monastery",
				"Do Drul Chorten",
				"Lingdum Monastery (Ranka)",
			},
			feedback: "Found 4 monasteries matching your criteria.",
		},
		{
			name:     "category and region",
			criteria: Criteria{Category: "Kagyu", Region: "East Sikkim"},
			want:     []string{"Rumtek Monastery", "Lingdum Monastery (Ranka)"},
			feedback: "Found 2 monasteries matching your criteria.",
		},
		{
			name:     "all three predicates",
			criteria: Criteria{Category: "Nyingma", Region: "West Sikkim", SearchText: "DUB"},
			want:     []string{"Dubdi Monastery"},
			feedback: "Found 1 monasteries matching your criteria.",
		},
		{
			name:     "no matches",
			criteria: Criteria{Category: Any, Region: Any, SearchText: "zzz"},
			want:     []string{},
			feedback: "Found 0 monasteries matching your criteria.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(c, tt.criteria)
			assert.True(t, got.Applied)
			assert.Equal(t, tt.want, names(got.Records))
			assert.Equal(t, len(tt.want), got.Count())
			assert.Equal(t, tt.feedback, got.Feedback())
		})
	}
}

func TestApply_WildcardReturnsWholeCatalog(t *testing.T) {
	c := catalog.Default()
	for _, crit := range []Criteria{
		{Category: Any, Region: Any},
		{},
		{Category: "  ", Region: ""},
	} {
		assert.True(t, crit.IsWildcard())
		got := Apply(c, crit)
		assert.Equal(t, c.Records(), got.Records)
	}
}

func TestApply_SearchTextKeepsWhitespace(t *testing.T) {
	c := catalog.Default()

	got := Apply(c, Criteria{Category: Any, Region: Any, SearchText: "y "})
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Lingdum Monastery (Ranka)", got.Records[0].Name)
	assert.Equal(t, "y ", got.Criteria.SearchText)

	blank := Criteria{Category: Any, Region: Any, SearchText: "   "}
	assert.False(t, blank.IsWildcard())
	assert.Empty(t, Apply(c, blank).Records)
}

func TestApply_ResultIsOrderedSubsequence(t *testing.T) {
	c := catalog.Default()
	all := c.Records()

	categories := append([]string{Any, "Unknown"}, c.Categories()...)
	regions := append([]string{Any, "South Sikkim"}, c.Regions()...)
	searches := []string{"", "a", "monastery", "SIKKIM", "west", "chorten", "zzz", "(r"}

	for _, cat := range categories {
		for _, reg := range regions {
			for _, s := range searches {
				got := Apply(c, Criteria{Category: cat, Region: reg, SearchText: s}).Records

				j := 0
				for _, r := range got {
					for j < len(all) && all[j] != r {
						j++
					}
					require.Less(t, j, len(all), "record %q out of order or absent for %s/%s/%q", r.Name, cat, reg, s)
					j++
				}
			}
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := catalog.Default()
	crit := Criteria{Category: "Nyingma", Region: Any, SearchText: "sikkim"}
	assert.Equal(t, Apply(c, crit), Apply(c, crit))
}

func TestResult_ZeroValueIsNotApplied(t *testing.T) {
	var r Result
	assert.False(t, r.Applied)

	applied := Apply(catalog.Default(), Criteria{SearchText: "zzz"})
	assert.True(t, applied.Applied)
	assert.Equal(t, 0, applied.Count())
	assert.NotNil(t, applied.Records)
}

func TestApply_EmptyCatalog(t *testing.T) {
	got := Apply(catalog.New(nil), Criteria{})
	assert.True(t, got.Applied)
	assert.Empty(t, got.Records)
}
