package scoring

const (
	categoryDigital    = "digital_presence"
	categoryReputation = "reputation"
	categorySocial     = "social_engagement"
	categorySEO        = "seo_strength"
)

// BrandSignals captures the aggregated enrichment signals used for scoring.
// Nil pointers mean the signal was unavailable, which is scored differently
// from a measured zero.
type BrandSignals struct {
	PerformanceScore *int
	SEOScore         *int

	GoogleRating     *float64
	GoogleReviews    *int
	TrustpilotScore  *float64
	TrustpilotCount  *int

	TotalFollowers   *int64
	VerifiedProfiles int

	AuthorityScore  *int
	OrganicKeywords *int64
}

// ScoreResult reports the overall score and the per-category breakdown.
// Every value is clamped into 0-100.
type ScoreResult struct {
	Overall   int
	Breakdown map[string]int
}

// ComputeScore evaluates the provided signals and returns the score breakdown.
// Categories with no available signal score zero rather than being omitted,
// so the breakdown shape is stable for the dashboard.
func ComputeScore(signals BrandSignals) ScoreResult {
	breakdown := map[string]int{
		categoryDigital:    scoreDigitalPresence(signals),
		categoryReputation: scoreReputation(signals),
		categorySocial:     scoreSocialEngagement(signals),
		categorySEO:        scoreSEOStrength(signals),
	}

	total := 0
	for _, value := range breakdown {
		total += value
	}

	return ScoreResult{
		Overall:   clamp(total / len(breakdown)),
		Breakdown: breakdown,
	}
}

func scoreDigitalPresence(signals BrandSignals) int {
	score := 0
	count := 0
	if signals.PerformanceScore != nil {
		score += *signals.PerformanceScore
		count++
	}
	if signals.SEOScore != nil {
		score += *signals.SEOScore
		count++
	}
	if count == 0 {
		return 0
	}
	return clamp(score / count)
}

func scoreReputation(signals BrandSignals) int {
	score := 0
	if signals.GoogleRating != nil {
		score += int(*signals.GoogleRating * 12)
	}
	if signals.GoogleReviews != nil && *signals.GoogleReviews >= 25 {
		score += 15
	}
	if signals.TrustpilotScore != nil {
		score += int(*signals.TrustpilotScore * 4)
	}
	if signals.TrustpilotCount != nil && *signals.TrustpilotCount >= 10 {
		score += 5
	}
	return clamp(score)
}

func scoreSocialEngagement(signals BrandSignals) int {
	if signals.TotalFollowers == nil {
		return 0
	}

	score := 0
	switch followers := *signals.TotalFollowers; {
	case followers >= 100_000:
		score = 80
	case followers >= 10_000:
		score = 60
	case followers >= 1_000:
		score = 40
	case followers > 0:
		score = 20
	}
	score += signals.VerifiedProfiles * 10
	return clamp(score)
}

func scoreSEOStrength(signals BrandSignals) int {
	score := 0
	if signals.AuthorityScore != nil {
		score += *signals.AuthorityScore
	}
	if signals.OrganicKeywords != nil {
		switch keywords := *signals.OrganicKeywords; {
		case keywords >= 10_000:
			score += 20
		case keywords >= 1_000:
			score += 10
		case keywords > 0:
			score += 5
		}
	}
	return clamp(score)
}

func clamp(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
