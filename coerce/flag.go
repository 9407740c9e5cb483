package coerce

// Flag records one transformation the coercer applied while turning a
// value.Value into a schema-shaped result. Every flag carries a fixed
// penalty (§3.2); the composite score of a result is the sum of its own
// flags' penalties plus, for object/array containers, ten times the sum of
// child scores, so a single rough edge never outweighs a child that is
// outright wrong.
type Flag int

const (
	ExactMatch Flag = iota
	UnionMatch
	OptionalDefaultFromNoValue
	StringToBool
	StringToNumber
	NumberToString
	BoolToString
	FloatToInt
	SingleToArray
	ArrayToSingle
	ObjectToPrimitive
	ImpliedKey
	SubstringMatch
	CaseCoerced
	PunctuationStripped
	ObjectFromMarkdown
	TrailingCommaFixed
	UnquotedKeyFixed
	AutoClosedBracket
	AutoClosedQuote
	SingleQuoteFixed
	Incomplete
	ExtraKey
	DuplicateKey
	DefaultFromNoValue
	DefaultButHadValue
	NoMatch
)

// infPenalty stands in for the spec's ∞ penalty on NoMatch: large enough
// that no accumulation of lesser flags elsewhere in a tree can ever match
// or beat it, which is all the scoring comparison actually requires.
const infPenalty = 1 << 30

var penalties = map[Flag]int{
	ExactMatch:                 0,
	UnionMatch:                 0,
	OptionalDefaultFromNoValue: 1,
	StringToBool:               1,
	StringToNumber:             1,
	NumberToString:             1,
	BoolToString:               1,
	FloatToInt:                 1,
	SingleToArray:              2,
	ArrayToSingle:              2,
	ObjectToPrimitive:          2,
	ImpliedKey:                 2,
	SubstringMatch:             2,
	CaseCoerced:                1,
	PunctuationStripped:        1,
	ObjectFromMarkdown:         2,
	TrailingCommaFixed:         1,
	UnquotedKeyFixed:           1,
	AutoClosedBracket:          1,
	AutoClosedQuote:            1,
	SingleQuoteFixed:           1,
	Incomplete:                 3,
	ExtraKey:                   0,
	DuplicateKey:               1,
	DefaultFromNoValue:         100,
	DefaultButHadValue:         110,
	NoMatch:                    infPenalty,
}

func (f Flag) Penalty() int { return penalties[f] }

func (f Flag) String() string {
	switch f {
	case ExactMatch:
		return "ExactMatch"
	case UnionMatch:
		return "UnionMatch"
	case OptionalDefaultFromNoValue:
		return "OptionalDefaultFromNoValue"
	case StringToBool:
		return "StringToBool"
	case StringToNumber:
		return "StringToNumber"
	case NumberToString:
		return "NumberToString"
	case BoolToString:
		return "BoolToString"
	case FloatToInt:
		return "FloatToInt"
	case SingleToArray:
		return "SingleToArray"
	case ArrayToSingle:
		return "ArrayToSingle"
	case ObjectToPrimitive:
		return "ObjectToPrimitive"
	case ImpliedKey:
		return "ImpliedKey"
	case SubstringMatch:
		return "SubstringMatch"
	case CaseCoerced:
		return "CaseCoerced"
	case PunctuationStripped:
		return "PunctuationStripped"
	case ObjectFromMarkdown:
		return "ObjectFromMarkdown"
	case TrailingCommaFixed:
		return "TrailingCommaFixed"
	case UnquotedKeyFixed:
		return "UnquotedKeyFixed"
	case AutoClosedBracket:
		return "AutoClosedBracket"
	case AutoClosedQuote:
		return "AutoClosedQuote"
	case SingleQuoteFixed:
		return "SingleQuoteFixed"
	case Incomplete:
		return "Incomplete"
	case ExtraKey:
		return "ExtraKey"
	case DuplicateKey:
		return "DuplicateKey"
	case DefaultFromNoValue:
		return "DefaultFromNoValue"
	case DefaultButHadValue:
		return "DefaultButHadValue"
	case NoMatch:
		return "NoMatch"
	default:
		return "Flag(?)"
	}
}

// FlagSet is an ordered, duplicate-tolerant collection of flags attached to
// one coercion result. Order is preserved for diagnostics; scoring only
// cares about the multiset of penalties.
type FlagSet struct {
	flags []Flag
}

func NewFlagSet(flags ...Flag) FlagSet {
	return FlagSet{flags: append([]Flag{}, flags...)}
}

func (s *FlagSet) Add(f Flag) { s.flags = append(s.flags, f) }

func (s *FlagSet) Merge(other FlagSet) { s.flags = append(s.flags, other.flags...) }

func (s FlagSet) Has(f Flag) bool {
	for _, existing := range s.flags {
		if existing == f {
			return true
		}
	}
	return false
}

func (s FlagSet) List() []Flag { return append([]Flag{}, s.flags...) }

// Penalty sums the penalty of every flag in the set, saturating at
// infPenalty so accumulating other flags alongside a NoMatch can never
// bring the total back under the no-match threshold.
func (s FlagSet) Penalty() int {
	total := 0
	for _, f := range s.flags {
		total += f.Penalty()
		if total >= infPenalty {
			return infPenalty
		}
	}
	return total
}
