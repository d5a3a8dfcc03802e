package skills

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddHasLen(t *testing.T) {
	s := NewSet("python", "python", "go")
	s.Add("")
	s.Add("rust")

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("python"))
	assert.True(t, s.Has("rust"))
	assert.False(t, s.Has(""))
	assert.False(t, s.Has("Python"))
}

func TestSet_Operations(t *testing.T) {
	resume := NewSet("python", "react", "aws", "docker")
	job := NewSet("python", "react", "aws", "kubernetes")

	assert.Equal(t, []string{"aws", "docker", "kubernetes", "python", "react"}, resume.Union(job).Sorted())
	assert.Equal(t, []string{"aws", "python", "react"}, job.Intersect(resume).Sorted())
	assert.Equal(t, []string{"kubernetes"}, job.Difference(resume).Sorted())

	// Operands are not modified
	assert.Equal(t, 4, resume.Len())
	assert.Equal(t, 4, job.Len())
}

func TestSet_SortedNeverNil(t *testing.T) {
	assert.NotNil(t, NewSet().Sorted())
	assert.Empty(t, NewSet().Sorted())

	var nilSet Set
	assert.NotNil(t, nilSet.Sorted())
}

func TestSet_JSON(t *testing.T) {
	data, err := json.Marshal(NewSet("sql", "aws", "go"))
	require.NoError(t, err)
	assert.JSONEq(t, `["aws","go","sql"]`, string(data))

	empty, err := json.Marshal(NewSet())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(empty))

	var decoded Set
	require.NoError(t, json.Unmarshal([]byte(`["docker","docker","git"]`), &decoded))
	assert.Equal(t, []string{"docker", "git"}, decoded.Sorted())
}
