package scoring

import "testing"

func intPtr(v int) *int          { return &v }
func int64Ptr(v int64) *int64    { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestComputeScore_AllSignals(t *testing.T) {
	result := ComputeScore(BrandSignals{
		PerformanceScore: intPtr(90),
		SEOScore:         intPtr(80),
		GoogleRating:     floatPtr(4.5),
		GoogleReviews:    intPtr(120),
		TrustpilotScore:  floatPtr(4.0),
		TrustpilotCount:  intPtr(35),
		TotalFollowers:   int64Ptr(50_000),
		VerifiedProfiles: 2,
		AuthorityScore:   intPtr(60),
		OrganicKeywords:  int64Ptr(5_000),
	})

	if len(result.Breakdown) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(result.Breakdown))
	}
	for name, score := range result.Breakdown {
		if score < 0 || score > 100 {
			t.Fatalf("category %s out of range: %d", name, score)
		}
	}
	if result.Overall < 0 || result.Overall > 100 {
		t.Fatalf("overall out of range: %d", result.Overall)
	}
	if result.Breakdown[categoryDigital] != 85 {
		t.Fatalf("expected digital presence 85, got %d", result.Breakdown[categoryDigital])
	}
}

func TestComputeScore_MissingSignalsScoreZero(t *testing.T) {
	result := ComputeScore(BrandSignals{})
	for name, score := range result.Breakdown {
		if score != 0 {
			t.Fatalf("expected zero for %s with no signals, got %d", name, score)
		}
	}
	if result.Overall != 0 {
		t.Fatalf("expected zero overall, got %d", result.Overall)
	}
}

func TestComputeScore_Clamped(t *testing.T) {
	result := ComputeScore(BrandSignals{
		GoogleRating:    floatPtr(5.0),
		GoogleReviews:   intPtr(1_000),
		TrustpilotScore: floatPtr(5.0),
		TrustpilotCount: intPtr(500),
	})
	if result.Breakdown[categoryReputation] != 100 {
		t.Fatalf("expected reputation clamped to 100, got %d", result.Breakdown[categoryReputation])
	}
}

func TestComputeScore_ZeroFollowersVsUnknown(t *testing.T) {
	unknown := ComputeScore(BrandSignals{})
	measuredZero := ComputeScore(BrandSignals{TotalFollowers: int64Ptr(0), VerifiedProfiles: 1})

	if unknown.Breakdown[categorySocial] != 0 {
		t.Fatalf("expected 0 for unknown followers")
	}
	// a measured zero still counts verification signals
	if measuredZero.Breakdown[categorySocial] != 10 {
		t.Fatalf("expected 10 for verified profile with zero followers, got %d", measuredZero.Breakdown[categorySocial])
	}
}
