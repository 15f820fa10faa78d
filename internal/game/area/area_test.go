package area

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIsTown(t *testing.T) {
	for _, id := range []ID{None, RogueEncampment, LutGholein, KurastDocktown, ThePandemoniumFortress, Harrogath} {
		assert.True(t, id.IsTown(), "%s should be a town", id)
	}
	for _, id := range []ID{BloodMoor, DenOfEvil, ArcaneSanctuary, ChaosSanctuary, TheWorldstoneChamber, Tristram2} {
		assert.False(t, id.IsTown(), "%s should not be a town", id)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Rogue Encampment", RogueEncampment.String())
	assert.Equal(t, "Halls of the Dead Level 2", HallsOfTheDeadLevel2.String())
	assert.Equal(t, "Area(500)", ID(500).String())
}

func TestAct(t *testing.T) {
	assert.Equal(t, 0, RogueEncampment.Act())
	assert.Equal(t, 0, MooMooFarm.Act())
	assert.Equal(t, 1, LutGholein.Act())
	assert.Equal(t, 1, ArcaneSanctuary.Act())
	assert.Equal(t, 2, KurastDocktown.Act())
	assert.Equal(t, 2, DuranceOfHateLevel3.Act())
	assert.Equal(t, 3, ThePandemoniumFortress.Act())
	assert.Equal(t, 3, ChaosSanctuary.Act())
	assert.Equal(t, 4, Harrogath.Act())
	assert.Equal(t, 4, Tristram2.Act())
}

func TestParse(t *testing.T) {
	id, err := Parse("5")
	require.NoError(t, err)
	assert.Equal(t, DarkWood, id)

	id, err = Parse("cold plains")
	require.NoError(t, err)
	assert.Equal(t, ColdPlains, id)

	id, err = Parse("  DuranceOfHateLevel1 ")
	require.NoError(t, err)
	assert.Equal(t, DuranceOfHateLevel1, id)

	_, err = Parse("137")
	assert.Error(t, err)

	_, err = Parse("Narnia")
	assert.Error(t, err)
}

func TestProperty_ParseStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := ID(rapid.Uint32Range(0, uint32(MaxID)).Draw(t, "id"))
		got, err := Parse(id.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", id.String(), err)
		}
		if got != id {
			t.Fatalf("Parse(%q) = %d, want %d", id.String(), got, id)
		}
	})
}
