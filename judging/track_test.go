package judging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTrack(t *testing.T) {
	assert.Equal(t, "Healthcare", ResolveTrack(LinkedTrack("Healthcare")))
	assert.Equal(t, "Education Tech", ResolveTrack(LegacyTrack("Education Tech")))
	assert.Equal(t, DefaultTrackName, ResolveTrack(LegacyTrack("")))
	assert.Equal(t, DefaultTrackName, ResolveTrack(UnsetTrack()))
	assert.True(t, LinkedTrack("x").IsLinked())
	assert.False(t, LegacyTrack("x").IsLinked())
}
