package catalog

import "github.com/proteinnavi/backend/internal/domain"

// questions defines the diagnosis questionnaire. The slice order is the flow
// the UI walks through.
var questions = []domain.Question{
	{
		ID:       "purpose",
		Title:    "プロテインを飲む目的は？",
		Subtitle: "当てはまるものを全て選択してください",
		Type:     domain.QuestionMultiple,
		Required: true,
		Options: []domain.Option{
			{Value: "筋トレ", Label: "筋力アップ・筋トレ"},
			{Value: "ダイエット", Label: "ダイエット・体重管理"},
			{Value: "健康", Label: "健康維持・栄養補給"},
			{Value: "美容", Label: "美容・アンチエイジング"},
			{Value: "食事置き換え", Label: "食事代わり・置き換え"},
		},
	},
	{
		ID:       "gender",
		Title:    "性別を教えてください",
		Type:     domain.QuestionSingle,
		Required: true,
		Options: []domain.Option{
			{Value: "男性", Label: "男性"},
			{Value: "女性", Label: "女性"},
		},
	},
	{
		ID:       "bodyType",
		Title:    "体質について教えてください",
		Subtitle: "当てはまるものを全て選択してください",
		Type:     domain.QuestionMultiple,
		Required: false,
		Options: []domain.Option{
			{Value: "gainWeight", Label: "太りやすい・体重が気になる"},
			{Value: "lactoseIntolerant", Label: "牛乳でお腹を壊しやすい"},
			{Value: "getHungry", Label: "すぐお腹が空いてしまう"},
		},
	},
	{
		ID:       "exerciseFreq",
		Title:    "運動頻度はどのくらいですか？",
		Type:     domain.QuestionSingle,
		Required: true,
		Options: []domain.Option{
			{Value: "なし", Label: "運動はほとんどしない"},
			{Value: "週1", Label: "週1回程度"},
			{Value: "週2-3", Label: "週2-3回"},
			{Value: "週4-5", Label: "週4-5回"},
			{Value: "毎日", Label: "ほぼ毎日"},
		},
	},
	{
		ID:       "timing",
		Title:    "いつ飲む予定ですか？",
		Subtitle: "当てはまるものを全て選択してください",
		Type:     domain.QuestionMultiple,
		Required: true,
		Options: []domain.Option{
			{Value: "朝", Label: "朝（朝食時）"},
			{Value: "運動後", Label: "運動・トレーニング後"},
			{Value: "夜", Label: "夜（就寝前）"},
			{Value: "間食", Label: "間食・小腹が空いた時"},
			{Value: "食事置き換え", Label: "食事の置き換えとして"},
		},
	},
	{
		ID:       "taste",
		Title:    "味の好みを教えてください",
		Subtitle: "当てはまるものを全て選択してください",
		Type:     domain.QuestionMultiple,
		Required: false,
		Options: []domain.Option{
			{Value: "sweet", Label: "甘い味が好き"},
			{Value: "refreshing", Label: "さっぱりした味が好き"},
			{Value: "fruity", Label: "フルーツ系の味が好き"},
			{Value: "noArtificial", Label: "人工的な甘みが苦手"},
			{Value: "tasteImportant", Label: "とにかく美味しさ重視"},
		},
	},
	{
		ID:       "preferences",
		Title:    "その他のご希望があれば教えてください",
		Subtitle: "任意回答：当てはまるものがあれば選択",
		Type:     domain.QuestionMultiple,
		Required: false,
		Options: []domain.Option{
			{Value: "domestic", Label: "国産のものが良い"},
			{Value: "noArtificial", Label: "人工甘味料は避けたい"},
			{Value: "beautyIngredients", Label: "美容成分が入っていると嬉しい"},
		},
	},
}

// Questions returns the questionnaire definition in presentation order.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out
}
