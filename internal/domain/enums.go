package domain

import "strings"

type EventStatus string

const (
	EventPlanned   EventStatus = "planned"
	EventConfirmed EventStatus = "confirmed"
	EventCancelled EventStatus = "cancelled"
)

// ValidEventStatuses is the canonical set of accepted event status strings.
var ValidEventStatuses = map[string]bool{
	"planned": true, "confirmed": true, "cancelled": true,
}

// PhaseKind is the closed set of lifecycle phases an event moves through.
// Names that match none of the known phases parse to PhaseUnknown.
type PhaseKind int

const (
	PhaseAssembly PhaseKind = iota
	PhaseMoveIn
	PhaseEvent
	PhaseMoveOut
	PhaseDismantle
	PhaseUnknown
)

// KnownPhaseKinds lists the recognised phases in canonical order.
var KnownPhaseKinds = []PhaseKind{PhaseAssembly, PhaseMoveIn, PhaseEvent, PhaseMoveOut, PhaseDismantle}

// ParsePhaseKind maps a phase name to its kind. Matching ignores case and
// treats '-', ' ' and '_' as equivalent, so "Move-In" and "MOVE_IN" agree.
func ParsePhaseKind(name string) PhaseKind {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	switch norm {
	case "ASSEMBLY":
		return PhaseAssembly
	case "MOVE_IN", "MOVEIN":
		return PhaseMoveIn
	case "EVENT":
		return PhaseEvent
	case "MOVE_OUT", "MOVEOUT":
		return PhaseMoveOut
	case "DISMANTLE":
		return PhaseDismantle
	default:
		return PhaseUnknown
	}
}

// Order returns the canonical ordering rank (lower comes first).
func (k PhaseKind) Order() int {
	if k < PhaseAssembly || k > PhaseUnknown {
		return int(PhaseUnknown)
	}
	return int(k)
}

// Code returns the fixed short code used when a phase label is abbreviated.
// PhaseEvent and PhaseUnknown have no fixed code; their abbreviation depends
// on the event or phase name.
func (k PhaseKind) Code() string {
	switch k {
	case PhaseAssembly:
		return "A"
	case PhaseMoveIn:
		return "MI"
	case PhaseMoveOut:
		return "MO"
	case PhaseDismantle:
		return "D"
	default:
		return ""
	}
}

// Name returns the canonical upper-case identifier, e.g. "MOVE_IN".
func (k PhaseKind) Name() string {
	switch k {
	case PhaseAssembly:
		return "ASSEMBLY"
	case PhaseMoveIn:
		return "MOVE_IN"
	case PhaseEvent:
		return "EVENT"
	case PhaseMoveOut:
		return "MOVE_OUT"
	case PhaseDismantle:
		return "DISMANTLE"
	default:
		return "UNKNOWN"
	}
}

// DisplayName returns a human-readable label.
func (k PhaseKind) DisplayName() string {
	switch k {
	case PhaseAssembly:
		return "Assembly"
	case PhaseMoveIn:
		return "Move-in"
	case PhaseEvent:
		return "Event"
	case PhaseMoveOut:
		return "Move-out"
	case PhaseDismantle:
		return "Dismantle"
	default:
		return "Unknown"
	}
}

func (k PhaseKind) String() string {
	return k.Name()
}

// MarshalText encodes the kind by its canonical name so JSON output stays readable.
func (k PhaseKind) MarshalText() ([]byte, error) {
	return []byte(k.Name()), nil
}

func (k *PhaseKind) UnmarshalText(b []byte) error {
	*k = ParsePhaseKind(string(b))
	return nil
}
