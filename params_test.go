package decomposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams_Defaults(t *testing.T) {
	p := NewParams()
	assert.True(t, p.seriesParallel)
	assert.Equal(t, DefaultThreeSumStrategy, p.threeSumStrategy)
	assert.False(t, p.directGraphicness)
	assert.False(t, p.completeTree)
}

func TestNewParams_OptionsOverrideDefaults(t *testing.T) {
	p := NewParams(
		WithSeriesParallel(false),
		WithDirectGraphicness(true),
		WithCompleteTree(true),
		WithThreeSumStrategy("eager"),
		WithThreeSumPivotsDistribution("left-heavy"),
	)
	assert.False(t, p.seriesParallel)
	assert.True(t, p.directGraphicness)
	assert.True(t, p.completeTree)
	assert.Equal(t, "eager", p.threeSumStrategy)
	assert.Equal(t, "left-heavy", p.threeSumPivotsDistribution)
}
