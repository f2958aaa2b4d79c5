package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/contextio"
	"github.com/lbrehon/galois/implications"
	"github.com/lbrehon/galois/search"
)

func TestParseBasis(t *testing.T) {
	testCases := []struct {
		name     string
		expected implications.Kind
		wantErr  bool
	}{
		{name: "canonical-direct", expected: implications.CanonicalDirect},
		{name: "karell", expected: implications.CanonicalDirect},
		{name: "canonical", expected: implications.Canonical},
		{name: "duquenne-guigues", expected: implications.Canonical},
		{name: "minimum", expected: implications.Canonical},
		{name: "direct", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := parseBasis(tc.name)
			if tc.wantErr {
				assert.ErrorIs(t, err, implications.ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	testCases := []struct {
		name     string
		expected search.Policy
		wantErr  bool
	}{
		{name: "mrg-exp", expected: search.MRGExp},
		{name: "pyramidal", expected: search.Pyramidal},
		{name: "levelwise", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			policy, err := parsePolicy(tc.name)
			if tc.wantErr {
				assert.ErrorIs(t, err, search.ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, policy)
		})
	}
}

func TestParseIntent(t *testing.T) {
	named := &contextio.Named{
		Attributes: []string{"fly", "hunt", "run", "swim"},
	}

	testCases := []struct {
		name     string
		spec     string
		expected []int
		wantErr  bool
	}{
		{name: "single attribute", spec: "fly", expected: []int{0}},
		{name: "several attributes", spec: "hunt,swim", expected: []int{1, 3}},
		{name: "spaces trimmed", spec: " run , fly ", expected: []int{0, 2}},
		{name: "empty entries skipped", spec: "fly,,swim,", expected: []int{0, 3}},
		{name: "empty spec", spec: "", expected: []int{}},
		{name: "unknown attribute", spec: "fly,teleport", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := parseIntent(named, tc.spec)
			if tc.wantErr {
				assert.ErrorIs(t, err, contextio.ErrUnknownAttribute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.Indices())
		})
	}
}

func TestLoadContext_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animals.yml")
	doc := `attributes: [fly, hunt, run, swim]
objects:
  eagle: [fly, hunt]
  duck: [fly, swim]
  horse: [run]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	named, err := loadContext(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fly", "hunt", "run", "swim"}, named.Attributes)
	assert.Equal(t, 3, named.Context.Objects())
	assert.Equal(t, 4, named.Context.Attributes())
}

func TestLoadContext_Bal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.bal")

	rows := []bitvec.Vector{
		vectorOf(t, 6, 0, 4, 5),
		vectorOf(t, 6, 1, 3, 5),
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, contextio.SaveBal(f, rows))
	require.NoError(t, f.Close())

	named, err := loadContext(path)
	require.NoError(t, err)
	assert.Equal(t, 2, named.Context.Objects())
	assert.Equal(t, 6, named.Context.Attributes())
	assert.Equal(t, []string{"object_0", "object_1"}, named.Objects)
	assert.Equal(t, "attribute_5", named.Attributes[5])

	assert.Equal(t, []int{0, 4, 5}, named.Context.Rows()[0].Indices())
}

func TestLoadContext_Itemsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.dat")
	data := "# header comment\n0 4 5\n1 3 5\n\n1 2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	named, err := loadContext(path)
	require.NoError(t, err)
	assert.Equal(t, 3, named.Context.Objects())
	assert.Equal(t, 6, named.Context.Attributes())
	assert.Equal(t, []string{"object_0", "object_1", "object_2"}, named.Objects)
}

func TestLoadContext_MissingFile(t *testing.T) {
	_, err := loadContext(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestContextioThreshold(t *testing.T) {
	assert.Equal(t, 3, contextioThreshold(3, 10))
	assert.Equal(t, 5, contextioThreshold(0.5, 10))
	assert.Equal(t, 10, contextioThreshold(1, 10))
	assert.Equal(t, 0, contextioThreshold(0, 10))
}

func vectorOf(t *testing.T, width int, bits ...int) bitvec.Vector {
	t.Helper()
	v := bitvec.New(width)
	for _, b := range bits {
		require.NoError(t, v.Set(b))
	}
	return v
}
