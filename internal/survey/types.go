package survey

// QuestionType identifies the input widget a question renders as. Only a
// handful of types carry point values; the rest exist for flow and layout.
type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeTextarea       QuestionType = "textarea"
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeCheckbox       QuestionType = "checkbox"
	TypeDropdown       QuestionType = "dropdown"
	TypeRating         QuestionType = "rating"
	TypeNPS            QuestionType = "nps"
	TypeNumber         QuestionType = "number"
	TypeDate           QuestionType = "date"
	TypeTime           QuestionType = "time"
	TypeEmail          QuestionType = "email"
	TypePhone          QuestionType = "phone"
	TypeURL            QuestionType = "url"
	TypeSlider         QuestionType = "slider"
	TypeRanking        QuestionType = "ranking"
	TypeMatrix         QuestionType = "matrix"
	TypeYesNo          QuestionType = "yes_no"
	TypeFileUpload     QuestionType = "file_upload"
	TypeSignature      QuestionType = "signature"
	TypeStatement      QuestionType = "statement"
)

// Question is the authored definition of one survey item. Immutable at
// scoring time: the engine only ever reads it.
type Question struct {
	ID              string             `json:"id" yaml:"id"`
	Type            QuestionType       `json:"type" yaml:"type"`
	Prompt          string             `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Required        bool               `json:"required,omitempty" yaml:"required,omitempty"`
	Options         []string           `json:"options,omitempty" yaml:"options,omitempty"`
	RatingScale     int                `json:"rating_scale,omitempty" yaml:"rating_scale,omitempty"`
	ScoringCategory string             `json:"scoring_category,omitempty" yaml:"scoring_category,omitempty"`
	ScoreWeight     float64            `json:"score_weight,omitempty" yaml:"score_weight,omitempty"`
	OptionScores    map[string]float64 `json:"option_scores,omitempty" yaml:"option_scores,omitempty"`
}

// LogicAction is what a matched logic rule asks the question flow to do.
type LogicAction string

const (
	ActionShow LogicAction = "show"
	ActionSkip LogicAction = "skip"
	ActionEnd  LogicAction = "end"
)

// LogicRule pairs a condition expression with a flow action. Rules are
// evaluated in authored order; the first rule whose condition holds wins.
type LogicRule struct {
	ID               string      `json:"id" yaml:"id"`
	Condition        string      `json:"condition" yaml:"condition"`
	Action           LogicAction `json:"action" yaml:"action"`
	TargetQuestionID string      `json:"target_question_id,omitempty" yaml:"target_question_id,omitempty"`
}
