package profilersdk

// ──────────────────────────────────────────────
// Built-in survey definitions
// ──────────────────────────────────────────────
//
// The built-ins make the pipeline usable with zero external configuration.
// Deployments normally override them with files loaded via the survey
// package; the scoring code treats both the same way.

// Attitude survey scale names.
const (
	ScaleAnxiety       = "anxiety"
	ScaleIgnore        = "ignore"
	ScaleAltMed        = "alt_med"
	ScaleWorkEscape    = "work_escape"
	ScaleLowSelfesteem = "low_selfesteem"
	ScaleSecondaryGain = "secondary_gain"
)

// SurveyItem is one statement of the attitude survey. Answers are 0 (disagree),
// 1 (partly), 2 (agree). Reverse items mirror the answer across the 0-2 domain
// before weighting; Weight may be negative.
type SurveyItem struct {
	ID      string `json:"id" yaml:"id"`
	Text    string `json:"text" yaml:"text"`
	Scale   string `json:"scale" yaml:"scale"`
	Reverse bool   `json:"reverse,omitempty" yaml:"reverse,omitempty"`
	Weight  int    `json:"weight,omitempty" yaml:"weight,omitempty"` // 0 means 1
}

// EffectiveWeight returns the item weight, defaulting to 1.
func (it SurveyItem) EffectiveWeight() int {
	if it.Weight == 0 {
		return 1
	}
	return it.Weight
}

// DefaultAttitudeItems returns the built-in 41-item attitude-toward-illness
// survey: six scales of 6-7 items each. low_selfesteem carries two
// negative-weight items, so its raw sum can go below zero.
func DefaultAttitudeItems() []SurveyItem {
	return []SurveyItem{
		{ID: "a01", Text: "I keep imagining the worst possible outcome of my illness.", Scale: ScaleAnxiety},
		{ID: "a02", Text: "Waiting for test results makes me unable to think about anything else.", Scale: ScaleAnxiety},
		{ID: "a03", Text: "I check my body for new symptoms many times a day.", Scale: ScaleAnxiety},
		{ID: "a04", Text: "I stay calm when my condition changes unexpectedly.", Scale: ScaleAnxiety, Reverse: true},
		{ID: "a05", Text: "Reading about my diagnosis leaves me frightened for days.", Scale: ScaleAnxiety},
		{ID: "a06", Text: "I often wake up at night worrying about my health.", Scale: ScaleAnxiety},
		{ID: "a07", Text: "Every minor ache feels like a sign of something serious.", Scale: ScaleAnxiety},

		{ID: "a08", Text: "My symptoms are not worth a doctor's time.", Scale: ScaleIgnore},
		{ID: "a09", Text: "If I stop thinking about the illness it will sort itself out.", Scale: ScaleIgnore},
		{ID: "a10", Text: "I follow the treatment schedule even when I feel fine.", Scale: ScaleIgnore, Reverse: true},
		{ID: "a11", Text: "I skip medication doses when I am busy.", Scale: ScaleIgnore},
		{ID: "a12", Text: "Check-ups are a formality I can safely miss.", Scale: ScaleIgnore},
		{ID: "a13", Text: "Talking about the illness just gives it an importance it does not deserve.", Scale: ScaleIgnore},
		{ID: "a14", Text: "I prefer not to know the details of my diagnosis.", Scale: ScaleIgnore},

		{ID: "a15", Text: "Herbal remedies treat the cause while pills only mask symptoms.", Scale: ScaleAltMed},
		{ID: "a16", Text: "I trust a healer's advice more than a prescription.", Scale: ScaleAltMed},
		{ID: "a17", Text: "Official medicine ignores methods that actually work.", Scale: ScaleAltMed},
		{ID: "a18", Text: "I would rather try a folk remedy first and see a doctor later.", Scale: ScaleAltMed},
		{ID: "a19", Text: "Supplements from the health shop do more for me than my medication.", Scale: ScaleAltMed},
		{ID: "a20", Text: "Doctors dismiss alternative treatments to protect their own methods.", Scale: ScaleAltMed},
		{ID: "a21", Text: "Energy practices can heal what medicine cannot.", Scale: ScaleAltMed},

		{ID: "a22", Text: "Work is the only place where I forget that I am ill.", Scale: ScaleWorkEscape},
		{ID: "a23", Text: "I take extra shifts so there is no time to think about my health.", Scale: ScaleWorkEscape},
		{ID: "a24", Text: "Slowing down at work would mean the illness has won.", Scale: ScaleWorkEscape},
		{ID: "a25", Text: "I have cut back my workload to protect my health.", Scale: ScaleWorkEscape, Reverse: true},
		{ID: "a26", Text: "I answer work messages even from a hospital bed.", Scale: ScaleWorkEscape},
		{ID: "a27", Text: "Being busy is my way of coping with the diagnosis.", Scale: ScaleWorkEscape},
		{ID: "a28", Text: "I would rather be exhausted by work than alone with my thoughts.", Scale: ScaleWorkEscape},

		{ID: "a29", Text: "The illness proves I am weaker than other people.", Scale: ScaleLowSelfesteem},
		{ID: "a30", Text: "I have become a burden to everyone around me.", Scale: ScaleLowSelfesteem},
		{ID: "a31", Text: "I am still proud of what I manage to do each day.", Scale: ScaleLowSelfesteem, Weight: -1},
		{ID: "a32", Text: "Nobody would notice if I stopped trying to get better.", Scale: ScaleLowSelfesteem},
		{ID: "a33", Text: "I blame myself for getting sick.", Scale: ScaleLowSelfesteem},
		{ID: "a34", Text: "I believe I can handle whatever the treatment brings.", Scale: ScaleLowSelfesteem, Weight: -1},
		{ID: "a35", Text: "Compared to healthy people I am worth less.", Scale: ScaleLowSelfesteem},

		{ID: "a36", Text: "Being ill is the only time my family truly cares for me.", Scale: ScaleSecondaryGain},
		{ID: "a37", Text: "My diagnosis lets me avoid things I never wanted to do.", Scale: ScaleSecondaryGain},
		{ID: "a38", Text: "I would lose the attention I get now if I recovered.", Scale: ScaleSecondaryGain},
		{ID: "a39", Text: "I want to return to my normal duties as soon as possible.", Scale: ScaleSecondaryGain, Reverse: true},
		{ID: "a40", Text: "People forgive me more easily because I am ill.", Scale: ScaleSecondaryGain},
		{ID: "a41", Text: "Sympathy from others makes the illness easier to keep.", Scale: ScaleSecondaryGain},
	}
}

// Typology accentuation type names.
const (
	TypeAnxious       = "anxious"
	TypeCyclothymic   = "cyclothymic"
	TypeDemonstrative = "demonstrative"
	TypeDysthymic     = "dysthymic"
	TypeExcitable     = "excitable"
	TypeHyperthymic   = "hyperthymic"
	TypePedantic      = "pedantic"
	TypeSensitive     = "sensitive"
	TypeStuck         = "stuck"
)

// TypologyTypes lists all accentuation types in lexical order. The dominance
// selector uses this order as its deterministic tie-break.
func TypologyTypes() []string {
	return []string{
		TypeAnxious, TypeCyclothymic, TypeDemonstrative, TypeDysthymic,
		TypeExcitable, TypeHyperthymic, TypePedantic, TypeSensitive, TypeStuck,
	}
}

// ChecklistItem is one statement of the typology checklist. The respondent
// marks the statements that apply; each marked item adds one point to its type.
type ChecklistItem struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Type string `json:"type" yaml:"type"`
}

// DefaultChecklistItems returns the built-in typology checklist:
// eight statements per accentuation type.
func DefaultChecklistItems() []ChecklistItem {
	return []ChecklistItem{
		{ID: "t01", Text: "I rehearse conversations in my head before making a phone call.", Type: TypeAnxious},
		{ID: "t02", Text: "Unfamiliar situations make me tense even when nothing is at stake.", Type: TypeAnxious},
		{ID: "t03", Text: "I often ask others to confirm that everything is all right.", Type: TypeAnxious},
		{ID: "t04", Text: "I avoid being alone in the dark.", Type: TypeAnxious},
		{ID: "t05", Text: "Before a trip I worry for days about what could go wrong.", Type: TypeAnxious},
		{ID: "t06", Text: "Sudden noises startle me more than most people.", Type: TypeAnxious},
		{ID: "t07", Text: "I find it hard to object even when I know I am right.", Type: TypeAnxious},
		{ID: "t08", Text: "I feel uneasy until I know the results of any examination.", Type: TypeAnxious},

		{ID: "t09", Text: "My energy swings between bursts of activity and flat weeks.", Type: TypeCyclothymic},
		{ID: "t10", Text: "A small success can lift my mood for a whole day, a small failure can ruin it.", Type: TypeCyclothymic},
		{ID: "t11", Text: "People say they never know which version of me will show up.", Type: TypeCyclothymic},
		{ID: "t12", Text: "I start many projects during good periods and drop them in low ones.", Type: TypeCyclothymic},
		{ID: "t13", Text: "My appetite and sleep change together with my mood.", Type: TypeCyclothymic},
		{ID: "t14", Text: "I can be the life of the party one week and avoid everyone the next.", Type: TypeCyclothymic},
		{ID: "t15", Text: "My plans depend strongly on the mood I wake up with.", Type: TypeCyclothymic},
		{ID: "t16", Text: "Cheerfulness and gloom alternate in me without external reason.", Type: TypeCyclothymic},

		{ID: "t17", Text: "I enjoy being the centre of attention at gatherings.", Type: TypeDemonstrative},
		{ID: "t18", Text: "I can make almost anyone like me when I decide to.", Type: TypeDemonstrative},
		{ID: "t19", Text: "I tell stories vividly, sometimes improving the details.", Type: TypeDemonstrative},
		{ID: "t20", Text: "Being overlooked hurts me more than open criticism.", Type: TypeDemonstrative},
		{ID: "t21", Text: "I adjust my manner to the audience without thinking about it.", Type: TypeDemonstrative},
		{ID: "t22", Text: "I like clothes that make people turn their heads.", Type: TypeDemonstrative},
		{ID: "t23", Text: "I remember compliments word for word.", Type: TypeDemonstrative},
		{ID: "t24", Text: "An ordinary role in a project feels like a defeat to me.", Type: TypeDemonstrative},

		{ID: "t25", Text: "I expect things to go wrong more often than right.", Type: TypeDysthymic},
		{ID: "t26", Text: "Joyful events reach me as if through glass.", Type: TypeDysthymic},
		{ID: "t27", Text: "I speak quietly and little in company.", Type: TypeDysthymic},
		{ID: "t28", Text: "Past losses occupy my thoughts more than future plans.", Type: TypeDysthymic},
		{ID: "t29", Text: "I consider myself a serious person rather than a cheerful one.", Type: TypeDysthymic},
		{ID: "t30", Text: "It takes me a long time to recover from disappointments.", Type: TypeDysthymic},
		{ID: "t31", Text: "I often feel tired even without physical work.", Type: TypeDysthymic},
		{ID: "t32", Text: "Lively company drains me rather than lifts me.", Type: TypeDysthymic},

		{ID: "t33", Text: "I explode over trifles and regret it afterwards.", Type: TypeExcitable},
		{ID: "t34", Text: "When irritated I find it hard to hold my tongue.", Type: TypeExcitable},
		{ID: "t35", Text: "I have left places abruptly because someone annoyed me.", Type: TypeExcitable},
		{ID: "t36", Text: "Waiting in a queue makes me physically restless.", Type: TypeExcitable},
		{ID: "t37", Text: "I act first and weigh the consequences later.", Type: TypeExcitable},
		{ID: "t38", Text: "Criticism makes my blood boil before I can think it over.", Type: TypeExcitable},
		{ID: "t39", Text: "I have broken things in a flash of anger.", Type: TypeExcitable},
		{ID: "t40", Text: "People around me are careful not to provoke me.", Type: TypeExcitable},

		{ID: "t41", Text: "I wake up ready to act and rarely lose that drive.", Type: TypeHyperthymic},
		{ID: "t42", Text: "Silence in a group feels like a problem I should fix.", Type: TypeHyperthymic},
		{ID: "t43", Text: "I usually run several undertakings at the same time.", Type: TypeHyperthymic},
		{ID: "t44", Text: "Setbacks rarely spoil my mood for long.", Type: TypeHyperthymic},
		{ID: "t45", Text: "I talk fast and gesture a lot.", Type: TypeHyperthymic},
		{ID: "t46", Text: "Routine tasks bore me within minutes.", Type: TypeHyperthymic},
		{ID: "t47", Text: "New acquaintances come to me easily.", Type: TypeHyperthymic},
		{ID: "t48", Text: "I am the one who proposes plans in my circle.", Type: TypeHyperthymic},

		{ID: "t49", Text: "I double-check locks and appliances before leaving home.", Type: TypePedantic},
		{ID: "t50", Text: "A misplaced item on my desk bothers me until I fix it.", Type: TypePedantic},
		{ID: "t51", Text: "I keep receipts and records far longer than necessary.", Type: TypePedantic},
		{ID: "t52", Text: "I re-read messages several times before sending them.", Type: TypePedantic},
		{ID: "t53", Text: "Unclear instructions make it impossible for me to start a task.", Type: TypePedantic},
		{ID: "t54", Text: "I finish work slowly because I verify every step.", Type: TypePedantic},
		{ID: "t55", Text: "Changes of plan at the last minute upset me deeply.", Type: TypePedantic},
		{ID: "t56", Text: "I notice mistakes in documents that others pass over.", Type: TypePedantic},

		{ID: "t57", Text: "A careless remark can wound me for days.", Type: TypeSensitive},
		{ID: "t58", Text: "I cry easily at films and books.", Type: TypeSensitive},
		{ID: "t59", Text: "I sense the mood of a room the moment I enter.", Type: TypeSensitive},
		{ID: "t60", Text: "I avoid arguments because raised voices physically hurt.", Type: TypeSensitive},
		{ID: "t61", Text: "I worry about how my words were taken long after a talk.", Type: TypeSensitive},
		{ID: "t62", Text: "Other people's misfortunes move me as if they were mine.", Type: TypeSensitive},
		{ID: "t63", Text: "I need a long time alone to recover after conflicts.", Type: TypeSensitive},
		{ID: "t64", Text: "Harsh jokes aimed at me are unbearable even in fun.", Type: TypeSensitive},

		{ID: "t65", Text: "I remember old offences as sharply as on the day they happened.", Type: TypeStuck},
		{ID: "t66", Text: "Once I set a goal I pursue it against any resistance.", Type: TypeStuck},
		{ID: "t67", Text: "Injustice toward me must be answered, however long it takes.", Type: TypeStuck},
		{ID: "t68", Text: "I find it hard to forgive even after an apology.", Type: TypeStuck},
		{ID: "t69", Text: "I suspect hidden motives behind friendly gestures.", Type: TypeStuck},
		{ID: "t70", Text: "My opinions, once formed, practically never change.", Type: TypeStuck},
		{ID: "t71", Text: "I keep mental lists of who supported me and who did not.", Type: TypeStuck},
		{ID: "t72", Text: "Defending a principle matters more to me than keeping the peace.", Type: TypeStuck},
	}
}

// ──────────────────────────────────────────────
// Values survey fixtures — 11-color palette and concepts
// ──────────────────────────────────────────────

// Palette colors.
const (
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorYellow = "yellow"
	ColorPink   = "pink"
	ColorRed    = "red"
	ColorBlack  = "black"
	ColorBrown  = "brown"
	ColorGray   = "gray"
	ColorWhite  = "white"
	ColorOrange = "orange"
	ColorPurple = "purple"
)

// Palette returns the 11-color palette in its canonical order.
func Palette() []string {
	return []string{
		ColorGreen, ColorBlue, ColorYellow, ColorPink,
		ColorRed, ColorBlack, ColorBrown, ColorGray,
		ColorWhite, ColorOrange, ColorPurple,
	}
}

// Emotional classes of the palette.
var (
	positiveColors = map[string]bool{ColorGreen: true, ColorBlue: true, ColorYellow: true, ColorPink: true}
	negativeColors = map[string]bool{ColorRed: true, ColorBlack: true, ColorBrown: true, ColorGray: true}
	neutralColors  = map[string]bool{ColorWhite: true, ColorOrange: true, ColorPurple: true}
)

// Values survey concepts.
const (
	ConceptMyself    = "myself"
	ConceptHealth    = "my_health"
	ConceptIllness   = "my_illness"
	ConceptTreatment = "my_treatment"
	ConceptDoctor    = "my_doctor"
	ConceptFuture    = "my_future"
	ConceptPast      = "my_past"
	ConceptFamily    = "my_family"
	ConceptWork      = "my_work"
	ConceptFriends   = "my_friends"
	ConceptHome      = "my_home"
)

// ValuesConcepts returns the 11 concepts of the color-association survey.
func ValuesConcepts() []string {
	return []string{
		ConceptMyself, ConceptHealth, ConceptIllness, ConceptTreatment,
		ConceptDoctor, ConceptFuture, ConceptPast, ConceptFamily,
		ConceptWork, ConceptFriends, ConceptHome,
	}
}
