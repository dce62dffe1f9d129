package usecase

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rashikfit/backend/internal/domain"
)

// Package-level compiled regex patterns. Letters of any script survive so
// Arabic food names tokenize the same way English ones do.
var (
	punctuationRegex    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// Scoring bonuses
const (
	brandMatchBonus     = 15.0
	substringMatchBonus = 10.0
)

// stopWords are dropped before comparing names
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "with": true, "for": true,
	"g": true, "gram": true, "grams": true, "ml": true, "oz": true,
	"cup": true, "cups": true, "tbsp": true, "tsp": true,
	"serving": true, "servings": true, "piece": true, "pieces": true,
	"من": true, "مع": true, "و": true, "جرام": true, "جم": true,
}

// MatchConfig holds configuration for the matcher
type MatchConfig struct {
	MinConfidenceThreshold float64
	EnableFuzzyMatching    bool
	FuzzyEditDistance      int
}

// Matcher scores free-text names against a query. It ranks the local food
// list and picks the best USDA candidate during an import.
type Matcher struct {
	minConfidenceThreshold float64
	enableFuzzyMatching    bool
	fuzzyEditDistance      int
}

// NewMatcher creates a matcher with the given configuration
func NewMatcher(config MatchConfig) *Matcher {
	threshold := config.MinConfidenceThreshold
	if threshold <= 0 {
		threshold = 40.0
	}

	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = 1
	}

	return &Matcher{
		minConfidenceThreshold: threshold,
		enableFuzzyMatching:    config.EnableFuzzyMatching,
		fuzzyEditDistance:      fuzzyDist,
	}
}

// FindBestMatch picks the USDA food whose description best matches query.
// The best candidate is returned together with ErrLowConfidence when its
// score is under the threshold.
func (m *Matcher) FindBestMatch(ctx context.Context, query string, foods []domain.USDAFood) (*domain.MatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if len(foods) == 0 {
		return nil, domain.ErrProductNotFound
	}

	var best *domain.MatchResult
	highest := -1.0
	for _, food := range foods {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score, matched := m.Score(query, food.Description)
		if food.BrandOwner != "" && strings.Contains(strings.ToLower(query), strings.ToLower(food.BrandOwner)) {
			score = min(100, score+brandMatchBonus)
		}
		if score > highest {
			highest = score
			best = &domain.MatchResult{
				ID:            strconv.Itoa(food.FdcID),
				Description:   food.Description,
				MatchScore:    score,
				MatchedTokens: matched,
			}
		}
	}

	if best.MatchScore < m.minConfidenceThreshold {
		return best, domain.ErrLowConfidence
	}
	return best, nil
}

// RankFoods returns the items whose name scores above zero, best first.
// Ties keep the input order.
func (m *Matcher) RankFoods(query string, items []domain.FoodItem) []domain.FoodItem {
	type scored struct {
		item  domain.FoodItem
		score float64
	}
	var hits []scored
	for _, item := range items {
		if score, _ := m.Score(query, item.Name); score > 0 {
			hits = append(hits, scored{item: item, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	ranked := make([]domain.FoodItem, len(hits))
	for i, h := range hits {
		ranked[i] = h.item
	}
	return ranked
}

// Score computes a 0-100 similarity between query and candidate:
// 60% query coverage, 20% candidate coverage, 20% Jaccard, plus a substring bonus.
func (m *Matcher) Score(query, candidate string) (float64, []string) {
	queryTokens := tokenize(query)
	candidateTokens := tokenize(candidate)
	if len(queryTokens) == 0 || len(candidateTokens) == 0 {
		return 0, nil
	}

	queryMatched, matched := m.intersection(queryTokens, candidateTokens)
	candidateMatched, _ := m.intersection(candidateTokens, queryTokens)

	queryCoverage := float64(queryMatched) / float64(len(queryTokens))
	candidateCoverage := float64(candidateMatched) / float64(len(candidateTokens))
	jaccard := float64(queryMatched) / float64(union(queryTokens, candidateTokens))

	score := (queryCoverage*0.60 + candidateCoverage*0.20 + jaccard*0.20) * 100
	if score == 0 {
		return 0, nil
	}

	queryLower := normalize(query)
	candidateLower := normalize(candidate)
	if utf8.RuneCountInString(queryLower) > 3 &&
		(strings.Contains(candidateLower, queryLower) || strings.Contains(queryLower, candidateLower)) {
		score += substringMatchBonus
	}

	return min(100, score), matched
}

// intersection counts tokens of a found in b, exactly or within the fuzzy distance
func (m *Matcher) intersection(a, b []string) (int, []string) {
	var matched []string
	seen := make(map[string]bool)
	for _, t := range a {
		if seen[t] {
			continue
		}
		for _, u := range b {
			if t == u || (m.enableFuzzyMatching && fuzzyTokenMatch(t, u, m.fuzzyEditDistance)) {
				matched = append(matched, t)
				seen[t] = true
				break
			}
		}
	}
	return len(matched), matched
}

func normalize(s string) string {
	s = punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(multipleSpacesRegex.ReplaceAllString(s, " "))
}

// tokenize splits s into lowercase tokens without stop words or pure numbers
func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(normalize(s)) {
		if utf8.RuneCountInString(word) <= 1 || stopWords[word] {
			continue
		}
		if _, err := strconv.ParseFloat(word, 64); err == nil {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

func union(a, b []string) int {
	set := make(map[string]bool, len(a)+len(b))
	for _, t := range a {
		set[t] = true
	}
	for _, t := range b {
		set[t] = true
	}
	return len(set)
}

// fuzzyTokenMatch checks if two tokens are within the edit distance threshold.
// Short tokens must match exactly.
func fuzzyTokenMatch(a, b string, threshold int) bool {
	if a == b {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 4 || len(rb) < 4 {
		return false
	}
	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}
	if diff > threshold {
		return false
	}
	return levenshteinDistance(ra, rb) <= threshold
}

func levenshteinDistance(r1, r2 []rune) int {
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}
