package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
	"github.com/maxeffectus/route-planner-sub001/pkg/utils"
)

// MaxSelectionCandidates caps how many candidates are sent to the
// model. Larger sets blow the context window; the caller hands the
// candidates pre-sorted by relevance, so truncating keeps the best.
const MaxSelectionCandidates = 100

const selectorSystemInstruction = `You select points of interest for a one-day walking itinerary.
Respond with a JSON array of the chosen POI id values and NOTHING else: no prose, no keys, no markdown.
Selection rules:
- Pick a diverse mix: no interest category may appear more than twice unless there is no alternative.
- If a gastronomy POI is selected, place it near the middle of the array.
- If a nightlife POI is selected, place it at the end of the array.
- If a theater POI is selected, place it after the other categories but before nightlife.`

type POISelectorInterface interface {
	// Select returns an ordered, budget-sized list of POI ids drawn
	// from candidates. The returned ids are always strings; order is
	// the model's visiting order.
	Select(ctx context.Context, candidates []route_models.CandidatePOI, window route_models.TimeWindow, pace route_models.TravelPace, interestWeights map[string]float64) ([]string, error)
}

type AIPOISelector struct {
	sessions utils.AISessionFactory
}

func NewAIPOISelector(sessions utils.AISessionFactory) POISelectorInterface {
	return &AIPOISelector{sessions: sessions}
}

// candidateSummary is the minimal AI-facing projection of a candidate:
// geometry and other fields the model does not need are stripped to
// keep the prompt small.
type candidateSummary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	InterestCategories []string `json:"interest_categories"`
	WikipediaRef       string   `json:"wikipedia_ref,omitempty"`
	Website            string   `json:"website,omitempty"`
}

func (s *AIPOISelector) Select(
	ctx context.Context,
	candidates []route_models.CandidatePOI,
	window route_models.TimeWindow,
	pace route_models.TravelPace,
	interestWeights map[string]float64,
) ([]string, error) {
	if len(candidates) == 0 {
		return nil, utils.ErrEmptyCandidateSet
	}
	if window.StartHour == 0 && window.EndHour == 0 {
		return nil, utils.ErrMissingTimeWindow
	}
	if pace == "" {
		return nil, utils.ErrMissingTravelPace
	}

	budget := RecommendedPOICount(window, pace)
	if budget <= 0 {
		return nil, utils.ErrWindowTooShort
	}

	if len(candidates) > MaxSelectionCandidates {
		log.Printf("Truncating candidate set from %d to %d for AI selection", len(candidates), MaxSelectionCandidates)
		candidates = candidates[:MaxSelectionCandidates]
	}

	summaries := make([]candidateSummary, 0, len(candidates))
	byID := make(map[string]route_models.CandidatePOI, len(candidates))
	for _, c := range candidates {
		summaries = append(summaries, candidateSummary{
			ID:                 c.ID,
			Name:               c.Name,
			InterestCategories: c.InterestCategories,
			WikipediaRef:       c.WikipediaRef,
			Website:            c.Website,
		})
		byID[c.ID] = c
	}

	prompt, err := buildSelectionPrompt(summaries, budget, interestWeights)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.NewSession(ctx, selectorSystemInstruction)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}
	// The session is exclusive to this call: tear it down on every
	// exit path, including cancellation.
	defer func() {
		if destroyErr := session.Destroy(); destroyErr != nil {
			log.Printf("Failed to destroy AI session: %v", destroyErr)
		}
	}()

	raw, err := session.Prompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}

	ids, err := parseIDArray(raw)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if _, ok := byID[id]; !ok {
			log.Printf("AI returned unknown POI id %q, dropping", id)
			continue
		}
		seen[id] = true
		selected = append(selected, id)
	}

	if len(selected) == 0 {
		return nil, utils.ErrNoValidSelection
	}

	reportSelectionDiversity(selected, byID)

	return selected, nil
}

func buildSelectionPrompt(summaries []candidateSummary, budget int, interestWeights map[string]float64) (string, error) {
	candidateJSON, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Choose exactly %d POIs from the candidate list below.\n\n", budget)
	b.WriteString("Candidates (JSON):\n")
	b.Write(candidateJSON)
	b.WriteString("\n")

	if interests := weightedInterests(interestWeights); len(interests) > 0 {
		b.WriteString("\nThe traveler cares about these interests, most important first:\n")
		for _, interest := range interests {
			fmt.Fprintf(&b, "- %s\n", interest)
		}
	}

	fmt.Fprintf(&b, "\nReturn a JSON array of %d id values in visiting order. JSON only.", budget)
	return b.String(), nil
}

// weightedInterests returns category names with weight > 0, sorted by
// weight descending (name ascending on ties, for stable prompts).
func weightedInterests(weights map[string]float64) []string {
	interests := make([]string, 0, len(weights))
	for name, w := range weights {
		if w > 0 {
			interests = append(interests, name)
		}
	}
	sort.Slice(interests, func(i, j int) bool {
		if weights[interests[i]] != weights[interests[j]] {
			return weights[interests[i]] > weights[interests[j]]
		}
		return interests[i] < interests[j]
	})
	return interests
}

// parseIDArray recovers an id array from the raw model response.
// Stage one is a direct parse; stage two strips markdown fences,
// cuts out the first bracketed array, and drops comment lines the
// model sometimes sprinkles in. Anything else is unparseable.
func parseIDArray(raw string) ([]string, error) {
	if ids, err := decodeIDArray(strings.TrimSpace(raw)); err == nil {
		return ids, nil
	}

	cleaned := stripMarkdownFences(raw)
	start := strings.Index(cleaned, "[")
	if start == -1 {
		return nil, utils.ErrUnparseableAIResponse
	}
	end := findMatchingBracket(cleaned, start)
	if end == -1 {
		return nil, utils.ErrUnparseableAIResponse
	}

	cleaned = stripCommentLines(cleaned[start : end+1])
	ids, err := decodeIDArray(cleaned)
	if err != nil {
		return nil, utils.ErrUnparseableAIResponse
	}
	return ids, nil
}

// decodeIDArray parses a JSON array and coerces every element to its
// string form; ids are compared as strings throughout to tolerate
// numeric/string mismatches from the model.
func decodeIDArray(s string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var values []interface{}
	if err := dec.Decode(&values); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		switch id := v.(type) {
		case string:
			ids = append(ids, id)
		case json.Number:
			ids = append(ids, id.String())
		default:
			ids = append(ids, fmt.Sprintf("%v", v))
		}
	}
	return ids, nil
}

func stripMarkdownFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// stripCommentLines removes '#' and '//' line comments and blank lines
// that would break a JSON parse.
func stripCommentLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if idx := strings.Index(trimmed, "//"); idx > 0 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		} else if idx := strings.Index(trimmed, "#"); idx > 0 {
			trimmed = strings.TrimSpace(trimmed[:idx])
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}

// findMatchingBracket finds the matching closing bracket for an
// opening bracket, skipping brackets inside string literals.
func findMatchingBracket(s string, start int) int {
	if start >= len(s) || s[start] != '[' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// reportSelectionDiversity logs when one category dominates the final
// selection. Observability only: the result is returned unchanged.
func reportSelectionDiversity(selected []string, byID map[string]route_models.CandidatePOI) {
	counts := make(map[string]int)
	for _, id := range selected {
		for _, category := range byID[id].InterestCategories {
			counts[category]++
		}
	}
	if len(counts) < 2 {
		return
	}
	for category, n := range counts {
		if n*2 > len(selected) {
			log.Printf("Selection diversity warning: category %q covers %d of %d selected POIs", category, n, len(selected))
		}
	}
}
