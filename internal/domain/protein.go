package domain

// Absorption describes how quickly a protein is absorbed
type Absorption string

const (
	AbsorptionFast   Absorption = "fast"
	AbsorptionMedium Absorption = "medium"
	AbsorptionSlow   Absorption = "slow"
)

// LactoseLevel describes how much lactose a product contains
type LactoseLevel string

const (
	LactoseHigh LactoseLevel = "high"
	LactoseLow  LactoseLevel = "low"
	LactoseNone LactoseLevel = "none"
)

// Features holds the objective product attributes used by the diagnosis engine
type Features struct {
	Protein    float64      `json:"protein"`    // grams per serving
	Sugar      float64      `json:"sugar"`      // grams per serving
	Calories   float64      `json:"calories"`   // kcal per serving
	Fullness   int          `json:"fullness"`   // satiety rating 1-5
	Absorption Absorption   `json:"absorption"`
	Solubility int          `json:"solubility"` // mixability rating 1-5
	Artificial int          `json:"artificial"` // artificial sweetener intensity 1-5, 5 = heavy
	Lactose    LactoseLevel `json:"lactose"`
	Beauty     bool         `json:"beauty"`   // contains beauty-oriented additives
	Domestic   bool         `json:"domestic"` // produced in Japan
}

// Taste holds the subjective flavor profile of a product
type Taste struct {
	Sweetness  int  `json:"sweetness"` // 1-5
	Refreshing bool `json:"refreshing"`
	Fruity     bool `json:"fruity"`
	Natural    bool `json:"natural"`
}

// StoreLink is a per-storefront purchase option
type StoreLink struct {
	Name  string `json:"name"`
	Price int    `json:"price,omitempty"`
	URL   string `json:"url"`
}

// Protein is one catalog entry eligible for recommendation
type Protein struct {
	Name            string      `json:"name"`
	Brand           string      `json:"brand"`
	Type            []string    `json:"type"`    // ホエイ, ソイ, カゼイン, ...
	Purpose         []string    `json:"purpose"` // 筋トレ, ダイエット, 健康, ...
	Gender          []string    `json:"gender"`
	Flavor          string      `json:"flavor"`
	Features        Features    `json:"features"`
	Taste           Taste       `json:"taste"`
	Timing          []string    `json:"timing"` // 朝, 運動後, 夜, 間食, 食事置き換え
	PricePerServing int         `json:"pricePerServing"`
	Description     string      `json:"description"`
	Links           []StoreLink `json:"links"`
}

// MatchResult is one scored recommendation from the diagnosis engine
type MatchResult struct {
	Protein         Protein `json:"protein"`
	Score           int     `json:"score"`
	MatchPercentage int     `json:"matchPercentage"`
	Reason          string  `json:"reason"`
}

// BodyTypeAnswers captures physical-constraint answers (all optional)
type BodyTypeAnswers struct {
	GainWeight        bool `json:"gainWeight"`
	LactoseIntolerant bool `json:"lactoseIntolerant"`
	GetHungry         bool `json:"getHungry"`
}

// TasteAnswers captures flavor-preference answers (all optional)
type TasteAnswers struct {
	Sweet          bool `json:"sweet"`
	Refreshing     bool `json:"refreshing"`
	Fruity         bool `json:"fruity"`
	NoArtificial   bool `json:"noArtificial"`
	TasteImportant bool `json:"tasteImportant"`
}

// PreferenceAnswers captures free-form preference answers (all optional)
type PreferenceAnswers struct {
	Domestic          bool `json:"domestic"`
	NoArtificial      bool `json:"noArtificial"`
	BeautyIngredients bool `json:"beautyIngredients"`
}

// DiagnosisAnswers is the finalized questionnaire answer record
type DiagnosisAnswers struct {
	Purpose      []string          `json:"purpose"`
	Gender       string            `json:"gender"`
	BodyType     BodyTypeAnswers   `json:"bodyType"`
	ExerciseFreq string            `json:"exerciseFreq"`
	Timing       []string          `json:"timing"`
	Taste        TasteAnswers      `json:"taste"`
	Preferences  PreferenceAnswers `json:"preferences"`
}

// Complete reports whether every required question has at least one selection.
// Body type, taste and other preferences are optional.
func (a *DiagnosisAnswers) Complete() bool {
	return len(a.Purpose) > 0 && a.Gender != "" && a.ExerciseFreq != "" && len(a.Timing) > 0
}
