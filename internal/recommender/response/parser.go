package response

import (
	"strings"

	"github.com/goccy/go-json"

	"movie-recommender/backend/internal/model"
)

// Outcome tags which parsing path produced a Result
type Outcome int

const (
	// NeedsFallback means strict decoding found no usable recommendations array
	NeedsFallback Outcome = iota
	// Decoded means the completion was valid JSON with a recommendations array
	Decoded
	// Recovered means the line scan rebuilt the records from malformed output
	Recovered
)

func (o Outcome) String() string {
	switch o {
	case Decoded:
		return "decoded"
	case Recovered:
		return "recovered"
	default:
		return "needs_fallback"
	}
}

const (
	recommendationsKey = "recommendations"
	titleMarker        = `"movie_title":`
	explanationMarker  = `"why_recommended":`
)

// Result is the tagged output of a parsing path
type Result struct {
	Outcome         Outcome
	Recommendations []model.Recommendation
}

// Response wraps the recommendations in the API response shape
func (r Result) Response() *model.RecommendResponse {
	return &model.RecommendResponse{Recommendations: r.Recommendations}
}

// Parse strips code fences, tries strict JSON and falls back to the line scan
func Parse(text string) Result {
	cleaned := StripCodeFences(text)

	if res := ParseStrict(cleaned); res.Outcome == Decoded {
		return res
	}

	return Result{
		Outcome:         Recovered,
		Recommendations: ParseHeuristic(cleaned),
	}
}

// StripCodeFences removes markdown ```json and ``` markers and surrounding whitespace
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseStrict decodes a JSON object holding a recommendations array.
// The array is returned as decoded; any other input asks for the fallback.
func ParseStrict(text string) Result {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return Result{Outcome: NeedsFallback}
	}

	raw, ok := envelope[recommendationsKey]
	if !ok {
		return Result{Outcome: NeedsFallback}
	}

	var recs []model.Recommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		return Result{Outcome: NeedsFallback}
	}
	if len(recs) > 0 && allBlank(recs) {
		return Result{Outcome: NeedsFallback}
	}

	return Result{Outcome: Decoded, Recommendations: recs}
}

// allBlank reports whether no record carries a title or an explanation
func allBlank(recs []model.Recommendation) bool {
	for _, r := range recs {
		if strings.TrimSpace(r.MovieTitle) != "" || strings.TrimSpace(r.WhyRecommended) != "" {
			return false
		}
	}
	return true
}

// ParseHeuristic rebuilds records from "movie_title": / "why_recommended": lines.
// Once a title has started, other lines continue its explanation until the next
// title; an explanation marker restarts it. A record is kept only when it has
// both a title and an explanation.
func ParseHeuristic(text string) []model.Recommendation {
	var (
		recs        []model.Recommendation
		title       string
		explanation []string
	)

	flush := func() {
		why := strings.Join(explanation, " ")
		if title != "" && why != "" {
			recs = append(recs, model.Recommendation{
				MovieTitle:     title,
				WhyRecommended: why,
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, titleMarker):
			flush()
			title = markerValue(line)
			explanation = nil
		case strings.HasPrefix(line, explanationMarker):
			explanation = nil
			if v := markerValue(line); v != "" {
				explanation = append(explanation, v)
			}
		case title != "" && !isPunctuation(line):
			if v := trimValue(line); v != "" {
				explanation = append(explanation, v)
			}
		}
	}
	flush()

	return recs
}

// markerValue returns the cleaned text after the first colon
func markerValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return trimValue(strings.TrimSpace(value))
}

// trimValue strips quotes, then trailing commas, then any quotes they exposed
func trimValue(s string) string {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	s = strings.Trim(s, ",")
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// isPunctuation reports lines made only of JSON structure characters
func isPunctuation(line string) bool {
	return strings.Trim(line, "{}[], ") == ""
}
