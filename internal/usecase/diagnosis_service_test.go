package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proteinnavi/backend/internal/catalog"
	"github.com/proteinnavi/backend/internal/domain"
)

func testProtein(name string, mutate func(*domain.Protein)) domain.Protein {
	p := domain.Protein{
		Name:    name,
		Brand:   "TestBrand",
		Type:    []string{"ホエイ"},
		Purpose: []string{"筋トレ"},
		Gender:  []string{"男性", "女性"},
		Flavor:  "ココア",
		Features: domain.Features{
			Protein:    20,
			Sugar:      3,
			Calories:   110,
			Fullness:   3,
			Absorption: domain.AbsorptionFast,
			Solubility: 3,
			Artificial: 3,
			Lactose:    domain.LactoseHigh,
		},
		Taste:           domain.Taste{Sweetness: 3},
		Timing:          []string{"朝", "運動後"},
		PricePerServing: 70,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func baseAnswers() domain.DiagnosisAnswers {
	return domain.DiagnosisAnswers{
		Purpose:      []string{"筋トレ"},
		Gender:       "男性",
		ExerciseFreq: "週2-3",
		Timing:       []string{"運動後"},
	}
}

func TestScoreDeterminism(t *testing.T) {
	svc := NewDiagnosisService(catalog.Proteins(), DiagnosisConfig{})
	answers := baseAnswers()

	for _, p := range catalog.Proteins() {
		first := svc.Score(&p, &answers)
		second := svc.Score(&p, &answers)
		assert.Equal(t, first, second, "score must be deterministic for %s", p.Name)
		assert.GreaterOrEqual(t, first, 0, "score must be non-negative for %s", p.Name)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	svc := NewDiagnosisService(nil, DiagnosisConfig{})
	p := testProtein("multi purpose", func(p *domain.Protein) {
		p.Purpose = []string{"筋トレ", "ダイエット"}
		p.Features.Lactose = domain.LactoseNone
		p.Taste.Fruity = true
	})

	answers := baseAnswers()
	before := svc.Score(&p, &answers)

	t.Run("extra matching purpose tag never lowers the score", func(t *testing.T) {
		more := answers
		more.Purpose = []string{"筋トレ", "ダイエット"}
		assert.GreaterOrEqual(t, svc.Score(&p, &more), before)
	})

	t.Run("extra satisfied body-type constraint never lowers the score", func(t *testing.T) {
		more := answers
		more.BodyType.LactoseIntolerant = true
		assert.GreaterOrEqual(t, svc.Score(&p, &more), before)
	})

	t.Run("extra satisfied taste preference never lowers the score", func(t *testing.T) {
		more := answers
		more.Taste.Fruity = true
		assert.GreaterOrEqual(t, svc.Score(&p, &more), before)
	})
}

func TestScoreWeights(t *testing.T) {
	svc := NewDiagnosisService(nil, DiagnosisConfig{})

	t.Run("each matched purpose tag adds the purpose weight", func(t *testing.T) {
		p := testProtein("two purposes", func(p *domain.Protein) {
			p.Purpose = []string{"筋トレ", "ダイエット"}
		})
		one := baseAnswers()
		two := baseAnswers()
		two.Purpose = []string{"筋トレ", "ダイエット"}

		assert.Equal(t, purposeMatchWeight, svc.Score(&p, &two)-svc.Score(&p, &one))
	})

	t.Run("timing contribution is capped", func(t *testing.T) {
		p := testProtein("all timings", func(p *domain.Protein) {
			p.Timing = []string{"朝", "運動後", "夜", "間食", "食事置き換え"}
		})
		none := baseAnswers()
		none.Timing = nil
		all := baseAnswers()
		all.Timing = []string{"朝", "運動後", "夜", "間食", "食事置き換え"}

		// 5 overlaps x 3 points would be 15 without the cap
		assert.Equal(t, timingMatchCap, svc.Score(&p, &all)-svc.Score(&p, &none))
	})

	t.Run("gender mismatch scores no gender bonus", func(t *testing.T) {
		p := testProtein("women only", func(p *domain.Protein) {
			p.Gender = []string{"女性"}
		})
		male := baseAnswers()
		female := baseAnswers()
		female.Gender = "女性"

		assert.Equal(t, genderMatchWeight, svc.Score(&p, &female)-svc.Score(&p, &male))
	})
}

func TestExerciseScore(t *testing.T) {
	athlete := testProtein("athlete", func(p *domain.Protein) {
		p.Purpose = []string{"筋トレ", "本格", "アスリート"}
		p.Features.Protein = 25
	})
	health := testProtein("health", func(p *domain.Protein) {
		p.Purpose = []string{"健康"}
	})
	plain := testProtein("plain", nil)

	tests := []struct {
		name    string
		freq    string
		protein *domain.Protein
		want    int
	}{
		{"no exercise prefers health products", "なし", &health, 8},
		{"no exercise otherwise small", "なし", &plain, 2},
		{"weekly prefers daily-use products", "週1", &plain, 3},
		{"2-3 per week prefers training products", "週2-3", &plain, 8},
		{"4-5 per week wants training plus protein", "週4-5", &athlete, 10},
		{"daily prefers serious and athlete products", "毎日", &athlete, 10},
		{"daily without such tags", "毎日", &health, 6},
		{"unknown frequency scores zero", "時々", &plain, 0},
		{"empty frequency scores zero", "", &plain, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exerciseScore(tt.freq, tt.protein))
		})
	}
}

func TestDiagnose(t *testing.T) {
	t.Run("returns at most top N sorted descending", func(t *testing.T) {
		svc := NewDiagnosisService(catalog.Proteins(), DiagnosisConfig{})
		answers := baseAnswers()

		results := svc.Diagnose(&answers)
		require.LessOrEqual(t, len(results), 3)
		require.NotEmpty(t, results)

		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("empty catalog yields empty result", func(t *testing.T) {
		svc := NewDiagnosisService(nil, DiagnosisConfig{})
		answers := baseAnswers()

		results := svc.Diagnose(&answers)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("ties break by catalog order", func(t *testing.T) {
		identical := func(name string) domain.Protein {
			return testProtein(name, nil)
		}
		svc := NewDiagnosisService([]domain.Protein{
			identical("first"), identical("second"), identical("third"), identical("fourth"),
		}, DiagnosisConfig{})
		answers := baseAnswers()

		results := svc.Diagnose(&answers)
		require.Len(t, results, 3)
		assert.Equal(t, "first", results[0].Protein.Name)
		assert.Equal(t, "second", results[1].Protein.Name)
		assert.Equal(t, "third", results[2].Protein.Name)
	})

	t.Run("configurable top N", func(t *testing.T) {
		svc := NewDiagnosisService(catalog.Proteins(), DiagnosisConfig{TopN: 5})
		answers := baseAnswers()

		results := svc.Diagnose(&answers)
		assert.Len(t, results, 5)
	})

	t.Run("every result carries a reason and bounded percentage", func(t *testing.T) {
		svc := NewDiagnosisService(catalog.Proteins(), DiagnosisConfig{})
		answers := baseAnswers()

		for _, r := range svc.Diagnose(&answers) {
			assert.NotEmpty(t, r.Reason)
			assert.GreaterOrEqual(t, r.MatchPercentage, 0)
			assert.LessOrEqual(t, r.MatchPercentage, 99)
		}
	})
}

func TestDiagnoseScenarios(t *testing.T) {
	t.Run("diet answers favor lactose-free women-oriented product", func(t *testing.T) {
		purposeOnly := testProtein("purpose only", func(p *domain.Protein) {
			p.Purpose = []string{"ダイエット"}
			p.Gender = []string{"男性"}
			p.Features.Lactose = domain.LactoseHigh
		})
		fullMatch := testProtein("full match", func(p *domain.Protein) {
			p.Purpose = []string{"ダイエット"}
			p.Gender = []string{"女性"}
			p.Features.Lactose = domain.LactoseNone
		})
		svc := NewDiagnosisService([]domain.Protein{purposeOnly, fullMatch}, DiagnosisConfig{})

		answers := domain.DiagnosisAnswers{
			Purpose:  []string{"ダイエット"},
			Gender:   "女性",
			BodyType: domain.BodyTypeAnswers{LactoseIntolerant: true},
		}

		results := svc.Diagnose(&answers)
		require.Len(t, results, 2)
		assert.Equal(t, "full match", results[0].Protein.Name)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("default answers leave only quality bonuses", func(t *testing.T) {
		svc := NewDiagnosisService(nil, DiagnosisConfig{})
		var empty domain.DiagnosisAnswers

		quality := testProtein("premium", func(p *domain.Protein) {
			p.Features.Protein = 25
			p.Features.Solubility = 5
			p.Features.Sugar = 1.5
			p.PricePerServing = 45
		})
		plain := testProtein("plain", func(p *domain.Protein) {
			p.Features.Solubility = 2
		})

		assert.Equal(t, highProteinBonus+solubilityBonus+costPerformanceBonus+lowSugarBonus,
			svc.Score(&quality, &empty))
		assert.Equal(t, 0, svc.Score(&plain, &empty))
	})

	t.Run("daily training favors athlete-grade products", func(t *testing.T) {
		svc := NewDiagnosisService(catalog.Proteins(), DiagnosisConfig{})
		answers := domain.DiagnosisAnswers{
			Purpose:      []string{"筋トレ"},
			Gender:       "男性",
			ExerciseFreq: "毎日",
			Timing:       []string{"運動後"},
		}

		results := svc.Diagnose(&answers)
		require.Len(t, results, 3)
		// Gold's Gym and DNS are the catalog entries tagged 本格/アスリート and
		// collect the full daily-training bonus
		assert.Equal(t, "Gold's Gym", results[0].Protein.Brand)
		assert.Equal(t, "DNS", results[1].Protein.Brand)
	})
}

func TestMatchPercentage(t *testing.T) {
	svc := NewDiagnosisService(nil, DiagnosisConfig{})

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"zero score", 0, 0},
		{"negative score", -5, 0},
		{"partial score", 50, 40},
		{"fractional score rounds to nearest", 63, 50},
		{"full score capped below 100", 125, 99},
		{"overflow capped below 100", 500, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.MatchPercentage(tt.score))
		})
	}

	t.Run("misconfigured max score yields zero instead of dividing", func(t *testing.T) {
		broken := &DiagnosisService{maxScore: 0}
		assert.Equal(t, 0, broken.MatchPercentage(80))
	})
}

func TestReason(t *testing.T) {
	svc := NewDiagnosisService(nil, DiagnosisConfig{})

	t.Run("joins at most three phrases", func(t *testing.T) {
		p := testProtein("everything", func(p *domain.Protein) {
			p.Purpose = []string{"ダイエット", "美容"}
			p.Features.Lactose = domain.LactoseNone
			p.Features.Calories = 80
			p.Features.Fullness = 5
			p.Features.Protein = 25
		})
		answers := domain.DiagnosisAnswers{
			Purpose: []string{"ダイエット", "美容"},
			BodyType: domain.BodyTypeAnswers{
				GainWeight:        true,
				LactoseIntolerant: true,
				GetHungry:         true,
			},
		}

		reason := svc.Reason(&p, &answers)
		assert.Contains(t, reason, "ダイエット・美容に最適な設計")
		assert.Contains(t, reason, "乳糖に配慮した処方")
		assert.Contains(t, reason, "が特徴です。")
		// The fourth fired phrase must have been cut
		assert.NotContains(t, reason, "腹持ち")
	})

	t.Run("women-only product mentions the specialization", func(t *testing.T) {
		p := testProtein("women", func(p *domain.Protein) {
			p.Purpose = nil
			p.Gender = []string{"女性"}
			p.Features.Solubility = 1
			p.PricePerServing = 200
		})
		answers := domain.DiagnosisAnswers{Gender: "女性"}

		assert.Contains(t, svc.Reason(&p, &answers), "女性のニーズに特化した配合")
	})

	t.Run("no fired criteria still yields a non-empty reason", func(t *testing.T) {
		p := testProtein("unremarkable", func(p *domain.Protein) {
			p.Purpose = nil
			p.Features.Solubility = 1
			p.PricePerServing = 200
		})
		var empty domain.DiagnosisAnswers

		assert.NotEmpty(t, svc.Reason(&p, &empty))
	})

	t.Run("reason generation does not change the score", func(t *testing.T) {
		p := testProtein("stable", nil)
		answers := baseAnswers()

		before := svc.Score(&p, &answers)
		_ = svc.Reason(&p, &answers)
		assert.Equal(t, before, svc.Score(&p, &answers))
	})
}
