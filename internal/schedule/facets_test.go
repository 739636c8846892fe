package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techsummit/backend/internal/models"
)

func TestExtractFacets_Tracks(t *testing.T) {
	t.Parallel()

	sessions := []models.Session{
		{ID: 1, Track: "AI & Machine Learning"},
		{ID: 2, Track: "AI & Machine Learning"},
		{ID: 3, Track: "Security"},
	}

	facets := ExtractFacets(sessions)

	assert.Equal(t, []Option{
		{Value: "AI & Machine Learning", Label: "AI & Machine Learning", Count: 2},
		{Value: "Security", Label: "Security", Count: 1},
	}, facets.Tracks)
}

func TestExtractFacets_TracksSortedByLabel(t *testing.T) {
	t.Parallel()

	facets := ExtractFacets(twelveSessions())

	labels := make([]string, len(facets.Tracks))
	for i, o := range facets.Tracks {
		labels[i] = o.Label
	}
	assert.Equal(t, []string{
		"AI & Machine Learning",
		"Blockchain",
		"Cloud Native",
		"DevOps",
		"Emerging Tech",
		"Security",
		"Web Development",
	}, labels)
}

func TestExtractFacets_Topics(t *testing.T) {
	t.Parallel()

	sessions := []models.Session{
		{ID: 1, Title: "Cloud Security", Description: "Securing the cloud.", Track: "Security"},
		{ID: 2, Title: "Kubernetes", Description: "Cloud orchestration.", Track: "Cloud Native"},
		{ID: 3, Title: "Gardening", Description: "Nothing technical here.", Track: "Lifestyle"},
	}

	facets := ExtractFacets(sessions)
	byValue := make(map[string]Option)
	for _, o := range facets.Topics {
		byValue[o.Value] = o
	}

	require.Contains(t, byValue, "cloud")
	assert.Equal(t, 2, byValue["cloud"].Count)
	assert.Equal(t, "Cloud", byValue["cloud"].Label)
	require.Contains(t, byValue, "security")
	assert.Equal(t, 1, byValue["security"].Count)
	assert.Equal(t, 1, byValue["kubernetes"].Count)
	assert.NotContains(t, byValue, "blockchain")

	for i := 1; i < len(facets.Topics); i++ {
		assert.GreaterOrEqual(t, facets.Topics[i-1].Count, facets.Topics[i].Count, "topics must be sorted by count")
	}
}

func TestExtractFacets_TopicTiesKeepEncounterOrder(t *testing.T) {
	t.Parallel()

	sessions := []models.Session{
		{ID: 1, Title: "Docker basics", Track: "Ops"},
		{ID: 2, Title: "Quantum basics", Track: "Research"},
	}

	facets := ExtractFacets(sessions)

	require.Len(t, facets.Topics, 2)
	assert.Equal(t, "docker", facets.Topics[0].Value)
	assert.Equal(t, "quantum", facets.Topics[1].Value)
}

func TestExtractFacets_TopicMatchedOnlyAcrossBoundaryIsDropped(t *testing.T) {
	t.Parallel()

	// "edge computing" only appears once title and description are joined.
	sessions := []models.Session{
		{ID: 1, Title: "Edge", Description: "computing for retail", Track: "Misc"},
	}

	facets := ExtractFacets(sessions)
	for _, o := range facets.Topics {
		assert.NotEqual(t, "edge computing", o.Value)
		assert.Positive(t, o.Count, "topic %q has zero count", o.Value)
	}
}

func TestExtractFacets_Speakers(t *testing.T) {
	t.Parallel()

	facets := ExtractFacets(twelveSessions())

	require.NotEmpty(t, facets.Speakers)
	assert.Equal(t, Option{Value: "1", Label: "Speaker 1", Count: 2}, facets.Speakers[0])
	assert.Equal(t, Option{Value: "2", Label: "Speaker 2", Count: 1}, facets.Speakers[1])

	total := 0
	for _, o := range facets.Speakers {
		total += o.Count
	}
	assert.Equal(t, 11, total, "session without a speaker is not counted")
}

func TestFacets_WithSpeakerNames(t *testing.T) {
	t.Parallel()

	facets := ExtractFacets(twelveSessions())
	named := facets.WithSpeakerNames([]models.Speaker{{ID: 1, Name: "Dr. Sarah Chen"}})

	assert.Equal(t, "Dr. Sarah Chen", named.Speakers[0].Label)
	assert.Equal(t, "Speaker 2", named.Speakers[1].Label)
	assert.Equal(t, "Speaker 1", facets.Speakers[0].Label, "original facets are not mutated")
}

func TestExtractFacets_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExtractFacets(twelveSessions()), ExtractFacets(twelveSessions()))
}

func TestExtractFacets_Empty(t *testing.T) {
	t.Parallel()

	facets := ExtractFacets(nil)
	assert.Empty(t, facets.Tracks)
	assert.Empty(t, facets.Topics)
	assert.Empty(t, facets.Speakers)
}
