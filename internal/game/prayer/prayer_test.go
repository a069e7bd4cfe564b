package prayer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runetools/dpscalc/internal/game/prayer"
	"github.com/runetools/dpscalc/internal/game/stat"
)

func TestStatsAdd(t *testing.T) {
	piety := prayer.Stats{MeleeAccuracy: 20, MeleeDamage: 23, Defence: 25}
	mystic := prayer.Stats{MagicAccuracy: 15}

	sum := piety.Add(mystic)
	assert.Equal(t, stat.Percentage(20), sum.MeleeAccuracy)
	assert.Equal(t, stat.Percentage(23), sum.MeleeDamage)
	assert.Equal(t, stat.Percentage(25), sum.Defence)
	assert.Equal(t, stat.Percentage(15), sum.MagicAccuracy)

	assert.Equal(t, sum, mystic.Add(piety))
	assert.Equal(t, piety, piety.Add(prayer.Stats{}))
}
