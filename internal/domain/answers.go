package domain

import "strings"

// OrdinalAnswers maps question id to a 0-4 response. Values are trusted;
// nothing clamps or rejects them.
type OrdinalAnswers map[int]int

// Clone returns an independent copy. A nil map clones to an empty map.
func (a OrdinalAnswers) Clone() OrdinalAnswers {
	out := make(OrdinalAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// YesNo is the response type of the impairment instrument.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

func (v YesNo) Valid() bool {
	return v == Yes || v == No
}

func (v YesNo) String() string { return string(v) }

// ParseYesNo accepts yes/no in any case plus y/n. Anything else is No.
func ParseYesNo(s string) YesNo {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return Yes
	default:
		return No
	}
}

// ImpairmentAnswers maps question id to a yes/no response.
type ImpairmentAnswers map[int]YesNo

func (a ImpairmentAnswers) Clone() ImpairmentAnswers {
	out := make(ImpairmentAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// AnswerSet carries the answers of all three instruments. It is the explicit
// state a questionnaire flow accumulates before scoring.
type AnswerSet struct {
	ASRS       OrdinalAnswers
	Impairment ImpairmentAnswers
	WURS       OrdinalAnswers
}

// NewAnswerSet returns an AnswerSet with empty, non-nil maps.
func NewAnswerSet() AnswerSet {
	return AnswerSet{
		ASRS:       OrdinalAnswers{},
		Impairment: ImpairmentAnswers{},
		WURS:       OrdinalAnswers{},
	}
}

// Clone deep-copies all three maps.
func (s AnswerSet) Clone() AnswerSet {
	return AnswerSet{
		ASRS:       s.ASRS.Clone(),
		Impairment: s.Impairment.Clone(),
		WURS:       s.WURS.Clone(),
	}
}

// Answered returns how many questions of the given instrument have a response.
func (s AnswerSet) Answered(inst Instrument) int {
	switch inst {
	case InstrumentASRS:
		return len(s.ASRS)
	case InstrumentImpairment:
		return len(s.Impairment)
	case InstrumentWURS:
		return len(s.WURS)
	}
	return 0
}
