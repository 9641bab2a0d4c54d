package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_AtLeast(t *testing.T) {
	assert.True(t, EducationUniversity.AtLeast(EducationHigh))
	assert.True(t, EducationHigh.AtLeast(EducationHigh))
	assert.False(t, EducationMiddle.AtLeast(EducationHigh))
	assert.True(t, EducationElementary.AtLeast(EducationNone))
}

func TestCompulsoryStageAt(t *testing.T) {
	stage, ok := CompulsoryStageAt(6)
	assert.True(t, ok)
	assert.Equal(t, EducationElementary, stage)

	stage, ok = CompulsoryStageAt(11)
	assert.True(t, ok)
	assert.Equal(t, EducationMiddle, stage)

	stage, ok = CompulsoryStageAt(14)
	assert.True(t, ok)
	assert.Equal(t, EducationHigh, stage)

	for _, age := range []int{0, 5, 7, 13, 15, 18, 60} {
		_, ok := CompulsoryStageAt(age)
		assert.False(t, ok, "age %d", age)
	}
}
