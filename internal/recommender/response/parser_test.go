package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-recommender/backend/internal/model"
)

const wellFormed = `{
    "recommendations": [
        {
            "movie_title": "Memento",
            "why_recommended": "Nolan's early puzzle box about memory."
        },
        {
            "movie_title": "Arrival",
            "why_recommended": "Cerebral sci-fi with a non-linear structure."
        }
    ]
}`

var wellFormedRecs = []model.Recommendation{
	{MovieTitle: "Memento", WhyRecommended: "Nolan's early puzzle box about memory."},
	{MovieTitle: "Arrival", WhyRecommended: "Cerebral sci-fi with a non-linear structure."},
}

func TestParse_WellFormedJSON(t *testing.T) {
	res := Parse(wellFormed)

	assert.Equal(t, Decoded, res.Outcome)
	assert.Equal(t, wellFormedRecs, res.Recommendations)
}

func TestParse_CodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n" + wellFormed + "\n```"},
		{"bare fence", "```\n" + wellFormed + "\n```"},
		{"fence with padding", "\n\n  ```json" + wellFormed + "```  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input)

			assert.Equal(t, Decoded, res.Outcome)
			assert.Equal(t, wellFormedRecs, res.Recommendations)
		})
	}
}

func TestParse_HeuristicPairs(t *testing.T) {
	input := strings.Join([]string{
		`"movie_title": "A"`,
		`"why_recommended": "B"`,
		`"movie_title": "C"`,
		`"why_recommended": "D"`,
	}, "\n")

	res := Parse(input)

	assert.Equal(t, Recovered, res.Outcome)
	assert.Equal(t, []model.Recommendation{
		{MovieTitle: "A", WhyRecommended: "B"},
		{MovieTitle: "C", WhyRecommended: "D"},
	}, res.Recommendations)
}

func TestParse_TruncatedJSONFallsBack(t *testing.T) {
	input := `{
    "recommendations": [
        {
            "movie_title": "Primer",
            "why_recommended": "Dense time-travel logic,
            rewarding repeat viewings."
        },
        {
            "movie_title": "Looper",
            "why_recommended": "Time travel with a noir edge.",
        }`

	res := Parse(input)

	assert.Equal(t, Recovered, res.Outcome)
	require.Len(t, res.Recommendations, 2)
	assert.Equal(t, model.Recommendation{
		MovieTitle:     "Primer",
		WhyRecommended: "Dense time-travel logic rewarding repeat viewings.",
	}, res.Recommendations[0])
	assert.Equal(t, model.Recommendation{
		MovieTitle:     "Looper",
		WhyRecommended: "Time travel with a noir edge.",
	}, res.Recommendations[1])
}

func TestParse_NoUsableOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prose", "Sorry, I can't help with that."},
		{"json without key", `{"movies": []}`},
		{"json with empty list", `{"recommendations": []}`},
		{"json with blank records", `{"recommendations": [{}, {}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input)

			assert.Empty(t, res.Recommendations)
			assert.True(t, res.Response().IsEmpty())
		})
	}
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		outcome Outcome
		count   int
	}{
		{"valid", wellFormed, Decoded, 2},
		{"invalid json", `{"recommendations": [`, NeedsFallback, 0},
		{"missing key", `{"items": []}`, NeedsFallback, 0},
		{"wrong shape", `{"recommendations": "none"}`, NeedsFallback, 0},
		{"top-level array", `[{"movie_title": "A"}]`, NeedsFallback, 0},
		{"null list", `{"recommendations": null}`, Decoded, 0},
		{"only blank records", `{"recommendations": [{}, {"movie_title": " "}]}`, NeedsFallback, 0},
		{"partly blank records kept as sent", `{"recommendations": [{"movie_title": "X"}, {}]}`, Decoded, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseStrict(tt.input)

			assert.Equal(t, tt.outcome, res.Outcome)
			assert.Len(t, res.Recommendations, tt.count)
		})
	}
}

func TestParseHeuristic_DropsIncompleteRecords(t *testing.T) {
	input := strings.Join([]string{
		`"movie_title": "No Reason",`,
		`"movie_title": "Heat",`,
		`"why_recommended": "Tight heist thriller.",`,
		`"why_recommended": "Orphan explanation"`,
	}, "\n")

	recs := ParseHeuristic(input)

	assert.Equal(t, []model.Recommendation{
		{MovieTitle: "Heat", WhyRecommended: "Orphan explanation"},
	}, recs)
}

func TestParseHeuristic_ProseAfterTitle(t *testing.T) {
	input := strings.Join([]string{
		"Here are some movies you might like:",
		`"movie_title": "Heat",`,
		"Tight heist thriller.",
		`"movie_title": "Ronin",`,
		`"why_recommended": "Car chases.",`,
		"}",
	}, "\n")

	recs := ParseHeuristic(input)

	assert.Equal(t, []model.Recommendation{
		{MovieTitle: "Heat", WhyRecommended: "Tight heist thriller."},
		{MovieTitle: "Ronin", WhyRecommended: "Car chases."},
	}, recs)
}

func TestParseHeuristic_MarkerRestartsExplanation(t *testing.T) {
	input := strings.Join([]string{
		`"movie_title": "Blade Runner 2049",`,
		"(a sequel)",
		`"why_recommended": "Slow, gorgeous sci-fi",`,
		"about identity.",
	}, "\n")

	recs := ParseHeuristic(input)

	require.Len(t, recs, 1)
	assert.Equal(t, "Blade Runner 2049", recs[0].MovieTitle)
	assert.Equal(t, "Slow, gorgeous sci-fi about identity.", recs[0].WhyRecommended)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", StripCodeFences("  plain \n"))
}

func TestTrimValue(t *testing.T) {
	tests := map[string]string{
		`"Dune",`:   "Dune",
		`"Dune"`:    "Dune",
		`Dune",`:    "Dune",
		`"Dune`:     "Dune",
		`  "Dune" `: "Dune",
		`,`:         "",
	}

	for in, want := range tests {
		assert.Equal(t, want, trimValue(in), "input %q", in)
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "decoded", Decoded.String())
	assert.Equal(t, "recovered", Recovered.String())
	assert.Equal(t, "needs_fallback", NeedsFallback.String())
}
