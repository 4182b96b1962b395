package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/proteinnavi/backend/internal/domain"
)

// Scoring weights. Purpose matching anchors relevance and must stay the
// dominant contributor if these are ever retuned.
const (
	purposeMatchWeight = 20 // per matched purpose tag
	genderMatchWeight  = 15

	lowCalorieBonus  = 8  // gainWeight answer x low-calorie product
	lactoseSafeBonus = 12 // lactoseIntolerant answer x low/no-lactose product
	fullnessBonus    = 8  // getHungry answer x high-satiety product

	timingMatchWeight = 3 // per overlapping timing tag
	timingMatchCap    = 10

	sweetTasteBonus         = 5
	refreshingTasteBonus    = 5
	fruityTasteBonus        = 5
	lowArtificialTasteBonus = 8

	domesticBonus     = 5
	noArtificialBonus = 5
	beautyBonus       = 5

	// Quality bonuses are independent of user answers and act as tie-breakers
	// favoring objectively better products.
	highProteinBonus     = 3
	solubilityBonus      = 2
	costPerformanceBonus = 3
	lowSugarBonus        = 2
)

// Thresholds the weights above are conditioned on
const (
	lowCalorieThreshold      = 100 // kcal per serving
	fullnessThreshold        = 4
	sweetnessThreshold       = 4
	artificialTasteMax       = 2  // tolerated by "dislikes artificial sweetness"
	artificialStrictMax      = 1  // tolerated by "avoid artificial sweeteners"
	highProteinThreshold     = 24 // grams per serving
	solubilityThreshold      = 4
	costPerServingMax        = 50 // yen per serving
	lowSugarMax              = 2  // grams per serving
	exerciseProteinThreshold = 20 // grams, for the high-frequency exercise bonus
)

const (
	defaultTopN = 3

	// defaultMaxScore is the theoretical maximum of the weighting table above,
	// used to normalize raw scores into a display percentage.
	defaultMaxScore = 125

	// maxDisplayPercentage stops short of 100 so the UI never shows a
	// perfect match.
	maxDisplayPercentage = 99

	maxReasonPhrases = 3
)

// DiagnosisConfig holds configuration for the diagnosis service
type DiagnosisConfig struct {
	TopN     int
	MaxScore int
}

// DiagnosisService scores the protein catalog against questionnaire answers
// and produces ranked recommendations.
type DiagnosisService struct {
	catalog  []domain.Protein
	topN     int
	maxScore int
}

// NewDiagnosisService creates a diagnosis service over the given catalog
func NewDiagnosisService(catalog []domain.Protein, config DiagnosisConfig) *DiagnosisService {
	topN := config.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	maxScore := config.MaxScore
	if maxScore <= 0 {
		maxScore = defaultMaxScore
	}

	return &DiagnosisService{
		catalog:  catalog,
		topN:     topN,
		maxScore: maxScore,
	}
}

// Diagnose scores every catalog entry against the answers and returns the top
// matches, sorted by score descending. Ties keep catalog order. An empty
// catalog yields an empty slice.
func (s *DiagnosisService) Diagnose(answers *domain.DiagnosisAnswers) []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(s.catalog))

	for _, protein := range s.catalog {
		score := s.Score(&protein, answers)
		results = append(results, domain.MatchResult{
			Protein:         protein,
			Score:           score,
			MatchPercentage: s.MatchPercentage(score),
			Reason:          s.Reason(&protein, answers),
		})
	}

	// Stable sort keeps the original catalog order for equal scores, so the
	// first-listed product wins ties deterministically.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.topN {
		results = results[:s.topN]
	}
	return results
}

// Score computes the match score for one product. Pure and deterministic:
// every satisfied criterion adds a non-negative weight, so adding an answer
// can never lower a product's score.
func (s *DiagnosisService) Score(protein *domain.Protein, answers *domain.DiagnosisAnswers) int {
	score := 0.0

	// 1. Purpose matching, the dominant contributor
	score += float64(countOverlap(answers.Purpose, protein.Purpose) * purposeMatchWeight)

	// 2. Gender matching
	if containsString(protein.Gender, answers.Gender) {
		score += genderMatchWeight
	}

	// 3. Body-type constraints, each evaluated independently
	if answers.BodyType.GainWeight && protein.Features.Calories < lowCalorieThreshold {
		score += lowCalorieBonus
	}
	if answers.BodyType.LactoseIntolerant && protein.Features.Lactose != domain.LactoseHigh {
		score += lactoseSafeBonus
	}
	if answers.BodyType.GetHungry && protein.Features.Fullness >= fullnessThreshold {
		score += fullnessBonus
	}

	// 4. Exercise-frequency alignment
	score += float64(exerciseScore(answers.ExerciseFreq, protein))

	// 5. Timing overlap, capped so it cannot dominate
	timingScore := countOverlap(answers.Timing, protein.Timing) * timingMatchWeight
	if timingScore > timingMatchCap {
		timingScore = timingMatchCap
	}
	score += float64(timingScore)

	// 6. Taste preferences
	if answers.Taste.Sweet && protein.Taste.Sweetness >= sweetnessThreshold {
		score += sweetTasteBonus
	}
	if answers.Taste.Refreshing && protein.Taste.Refreshing {
		score += refreshingTasteBonus
	}
	if answers.Taste.Fruity && protein.Taste.Fruity {
		score += fruityTasteBonus
	}
	if answers.Taste.NoArtificial && protein.Features.Artificial <= artificialTasteMax {
		score += lowArtificialTasteBonus
	}

	// 7. Other preferences
	if answers.Preferences.Domestic && protein.Features.Domestic {
		score += domesticBonus
	}
	if answers.Preferences.NoArtificial && protein.Features.Artificial <= artificialStrictMax {
		score += noArtificialBonus
	}
	if answers.Preferences.BeautyIngredients && protein.Features.Beauty {
		score += beautyBonus
	}

	// 8. Quality bonuses, independent of answers
	if protein.Features.Protein >= highProteinThreshold {
		score += highProteinBonus
	}
	if protein.Features.Solubility >= solubilityThreshold {
		score += solubilityBonus
	}
	if protein.PricePerServing <= costPerServingMax {
		score += costPerformanceBonus
	}
	if protein.Features.Sugar <= lowSugarMax {
		score += lowSugarBonus
	}

	return int(math.Round(score))
}

// exerciseScore maps exercise frequency to a bonus conditioned on the
// product's purpose tags and protein content. Unknown frequency values score
// zero rather than erroring.
func exerciseScore(freq string, protein *domain.Protein) int {
	switch freq {
	case "なし":
		if containsString(protein.Purpose, "健康") {
			return 8
		}
		return 2
	case "週1":
		if containsString(protein.Purpose, "日常") {
			return 6
		}
		return 3
	case "週2-3":
		if containsString(protein.Purpose, "筋トレ") {
			return 8
		}
		return 4
	case "週4-5":
		if containsString(protein.Purpose, "筋トレ") && protein.Features.Protein >= exerciseProteinThreshold {
			return 10
		}
		return 5
	case "毎日":
		if containsString(protein.Purpose, "本格") || containsString(protein.Purpose, "アスリート") {
			return 10
		}
		return 6
	default:
		return 0
	}
}

// Reason builds a short human-readable justification for a recommendation.
// It inspects the same criteria as Score in roughly the same priority order
// but never feeds back into the scoring.
func (s *DiagnosisService) Reason(protein *domain.Protein, answers *domain.DiagnosisAnswers) string {
	var phrases []string

	if matched := overlap(answers.Purpose, protein.Purpose); len(matched) > 0 {
		phrases = append(phrases, strings.Join(matched, "・")+"に最適な設計")
	}

	if answers.BodyType.LactoseIntolerant && protein.Features.Lactose != domain.LactoseHigh {
		phrases = append(phrases, "乳糖に配慮した処方")
	}
	if answers.BodyType.GainWeight && protein.Features.Calories < lowCalorieThreshold {
		phrases = append(phrases, "低カロリーでダイエットをサポート")
	}
	if answers.BodyType.GetHungry && protein.Features.Fullness >= fullnessThreshold {
		phrases = append(phrases, "腹持ちが良く空腹感を抑制")
	}

	if answers.Taste.Sweet && protein.Taste.Sweetness >= sweetnessThreshold {
		phrases = append(phrases, "甘くて美味しい味わい")
	}
	if answers.Taste.Refreshing && protein.Taste.Refreshing {
		phrases = append(phrases, "さっぱりとした飲みやすさ")
	}
	if answers.Taste.Fruity && protein.Taste.Fruity {
		phrases = append(phrases, "フルーティーで親しみやすい味")
	}

	if protein.Features.Protein >= highProteinThreshold {
		phrases = append(phrases, "高タンパク質含有")
	}
	if protein.Features.Solubility >= solubilityThreshold {
		phrases = append(phrases, "溶けやすく飲みやすい")
	}
	if protein.PricePerServing <= costPerServingMax {
		phrases = append(phrases, "優れたコストパフォーマンス")
	}

	if answers.Preferences.Domestic && protein.Features.Domestic {
		phrases = append(phrases, "安心の国産品質")
	}
	if answers.Preferences.NoArtificial && protein.Features.Artificial <= artificialStrictMax {
		phrases = append(phrases, "人工甘味料を極力使用せず自然な味")
	}
	if answers.Preferences.BeautyIngredients && protein.Features.Beauty {
		phrases = append(phrases, "美容成分配合で内側からキレイに")
	}

	if answers.Gender == "女性" && len(protein.Gender) == 1 && protein.Gender[0] == "女性" {
		phrases = append(phrases, "女性のニーズに特化した配合")
	}

	if len(phrases) == 0 {
		return "バランスの取れた定番プロテインです。"
	}
	if len(phrases) > maxReasonPhrases {
		phrases = phrases[:maxReasonPhrases]
	}
	return strings.Join(phrases, "、") + "が特徴です。"
}

// MatchPercentage normalizes a raw score into a display percentage clamped
// to [0, 99].
func (s *DiagnosisService) MatchPercentage(score int) int {
	if s.maxScore <= 0 || score <= 0 {
		return 0
	}

	pct := int(math.Round(float64(score) / float64(s.maxScore) * 100))
	if pct > maxDisplayPercentage {
		pct = maxDisplayPercentage
	}
	return pct
}

// countOverlap returns how many values of a appear in b
func countOverlap(a, b []string) int {
	return len(overlap(a, b))
}

// overlap returns the values of a that appear in b, preserving a's order
func overlap(a, b []string) []string {
	var matched []string
	for _, v := range a {
		if containsString(b, v) {
			matched = append(matched, v)
		}
	}
	return matched
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
