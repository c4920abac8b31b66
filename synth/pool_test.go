package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNamePool(t *testing.T) {
	pool := GenerateNamePool(100, 50)
	require.Len(t, pool, 50)
	for _, e := range pool {
		assert.NotEmpty(t, e.First)
		assert.NotEmpty(t, e.Last)
		assert.Contains(t, []string{"Male", "Female"}, e.Gender)
	}

	assert.Equal(t, pool, GenerateNamePool(100, 50))
	assert.NotEqual(t, pool, GenerateNamePool(101, 50))
}

func TestGenerateNamePool_FirstNameMatchesGender(t *testing.T) {
	pool := GenerateNamePool(1, 200)
	var female, male int
	for _, e := range pool {
		switch e.Gender {
		case "Female":
			female++
			assert.Contains(t, femaleFirstNames, e.First, "%s %s", e.First, e.Last)
		case "Male":
			male++
			assert.Contains(t, maleFirstNames, e.First, "%s %s", e.First, e.Last)
		}
	}
	assert.Positive(t, female)
	assert.Positive(t, male)

	for _, name := range []string{"Alice", "Margaret", "Sophia"} {
		assert.NotContains(t, maleFirstNames, name)
	}
	for _, name := range []string{"Matthew", "Edward", "Benjamin"} {
		assert.NotContains(t, femaleFirstNames, name)
	}
}

func TestGenerateNamePool_FeedsSynthesizer(t *testing.T) {
	s, err := New(Options{Seed: 1, Names: GenerateNamePool(5, 10)})
	require.NoError(t, err)
	id, err := s.SynthesizeIdentity(s.names)
	require.NoError(t, err)
	assert.NotEmpty(t, id.Name())
}
