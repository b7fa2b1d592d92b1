package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePhaseKind(t *testing.T) {
	cases := map[string]PhaseKind{
		"ASSEMBLY":  PhaseAssembly,
		"assembly":  PhaseAssembly,
		"Move-In":   PhaseMoveIn,
		"MOVE_IN":   PhaseMoveIn,
		"move in":   PhaseMoveIn,
		"EVENT":     PhaseEvent,
		"MOVE_OUT":  PhaseMoveOut,
		"Dismantle": PhaseDismantle,
		"Catering":  PhaseUnknown,
		"":          PhaseUnknown,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParsePhaseKind(name), "name %q", name)
	}
}

func TestPhaseKind_CanonicalOrder(t *testing.T) {
	for i := 1; i < len(KnownPhaseKinds); i++ {
		assert.Less(t, KnownPhaseKinds[i-1].Order(), KnownPhaseKinds[i].Order())
	}
	assert.Less(t, PhaseDismantle.Order(), PhaseUnknown.Order())
	assert.Equal(t, PhaseUnknown.Order(), PhaseKind(42).Order(), "out-of-range kinds sort as unknown")
}

func TestPhaseKind_Codes(t *testing.T) {
	assert.Equal(t, "A", PhaseAssembly.Code())
	assert.Equal(t, "MI", PhaseMoveIn.Code())
	assert.Equal(t, "MO", PhaseMoveOut.Code())
	assert.Equal(t, "D", PhaseDismantle.Code())
	assert.Empty(t, PhaseEvent.Code())
	assert.Empty(t, PhaseUnknown.Code())
}
