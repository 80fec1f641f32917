package domain

type Instrument string

const (
	InstrumentASRS       Instrument = "asrs"
	InstrumentImpairment Instrument = "impairment"
	InstrumentWURS       Instrument = "wurs"
)

// Instruments lists the instruments in the order a respondent fills them in.
var Instruments = []Instrument{InstrumentASRS, InstrumentImpairment, InstrumentWURS}

func (i Instrument) Valid() bool {
	switch i {
	case InstrumentASRS, InstrumentImpairment, InstrumentWURS:
		return true
	}
	return false
}

func (i Instrument) String() string { return string(i) }

// SymptomLevel grades the two ordinal instruments (ASRS Part A, WURS total).
type SymptomLevel string

const (
	SymptomLow      SymptomLevel = "low"
	SymptomModerate SymptomLevel = "moderate"
	SymptomHigh     SymptomLevel = "high"
)

func (l SymptomLevel) Valid() bool {
	switch l {
	case SymptomLow, SymptomModerate, SymptomHigh:
		return true
	}
	return false
}

func (l SymptomLevel) String() string { return string(l) }

type ImpairmentLevel string

const (
	ImpairmentNone        ImpairmentLevel = "none"
	ImpairmentMild        ImpairmentLevel = "mild"
	ImpairmentSignificant ImpairmentLevel = "significant"
	ImpairmentSevere      ImpairmentLevel = "severe"
)

func (l ImpairmentLevel) Valid() bool {
	switch l {
	case ImpairmentNone, ImpairmentMild, ImpairmentSignificant, ImpairmentSevere:
		return true
	}
	return false
}

func (l ImpairmentLevel) String() string { return string(l) }

// Subtype is the ASRS presentation inferred from the two subtype scores.
type Subtype string

const (
	SubtypeInattentive Subtype = "inattentive"
	SubtypeHyperactive Subtype = "hyperactive"
	SubtypeCombined    Subtype = "combined"
	SubtypeUnknown     Subtype = "unknown"
)

func (s Subtype) Valid() bool {
	switch s {
	case SubtypeInattentive, SubtypeHyperactive, SubtypeCombined, SubtypeUnknown:
		return true
	}
	return false
}

func (s Subtype) String() string { return string(s) }

// Label returns the display name used in reports.
func (s Subtype) Label() string {
	switch s {
	case SubtypeInattentive:
		return "Predominantly inattentive"
	case SubtypeHyperactive:
		return "Predominantly hyperactive-impulsive"
	case SubtypeCombined:
		return "Combined"
	default:
		return "Undetermined"
	}
}

// RiskTier is the composite verdict tier, ordered from most to least severe.
type RiskTier string

const (
	RiskVeryHigh      RiskTier = "very_high"
	RiskHigh          RiskTier = "high"
	RiskModerate      RiskTier = "moderate"
	RiskLowToModerate RiskTier = "low_to_moderate"
	RiskLow           RiskTier = "low"
)

// RiskTiers lists every tier, most severe first.
var RiskTiers = []RiskTier{RiskVeryHigh, RiskHigh, RiskModerate, RiskLowToModerate, RiskLow}

func (t RiskTier) Valid() bool {
	return t.Rank() >= 0
}

// Rank orders tiers: 0 is very_high, 4 is low. Unknown values return -1.
func (t RiskTier) Rank() int {
	for i, tier := range RiskTiers {
		if tier == t {
			return i
		}
	}
	return -1
}

func (t RiskTier) String() string { return string(t) }

type Urgency string

const (
	UrgencyHigh     Urgency = "high"
	UrgencyModerate Urgency = "moderate"
	UrgencyLow      Urgency = "low"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyModerate, UrgencyLow:
		return true
	}
	return false
}

func (u Urgency) String() string { return string(u) }

// Band is the severity band of a category percentage, used for color coding.
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

func (b Band) Valid() bool {
	switch b {
	case BandLow, BandModerate, BandHigh:
		return true
	}
	return false
}

func (b Band) String() string { return string(b) }

type ScreeningStatus string

const (
	ScreeningInProgress ScreeningStatus = "in_progress"
	ScreeningCompleted  ScreeningStatus = "completed"
)

func (s ScreeningStatus) Valid() bool {
	return s == ScreeningInProgress || s == ScreeningCompleted
}

func (s ScreeningStatus) String() string { return string(s) }

// ScreeningSource records how the answers were collected.
type ScreeningSource string

const (
	SourceWizard ScreeningSource = "wizard"
	SourceFile   ScreeningSource = "file"
)

func (s ScreeningSource) Valid() bool {
	return s == SourceWizard || s == SourceFile
}

func (s ScreeningSource) String() string { return string(s) }
