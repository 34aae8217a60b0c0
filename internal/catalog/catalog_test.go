package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_TableIsValid(t *testing.T) {
	c := Default()
	require.Greater(t, c.Len(), 100)

	for _, alias := range c.Aliases() {
		r, ok := c.Lookup(alias)
		require.True(t, ok, alias)
		assert.NotEmpty(t, r.ObjectName, alias)
		switch r.Dialect {
		case ERS:
			assert.True(t, strings.HasPrefix(r.Path, "/ers/"), alias)
			assert.NotEqual(t, "-", r.ObjectName, "ERS resource %s needs an object name", alias)
		case OpenAPI:
			assert.True(t, strings.HasPrefix(r.Path, "/api/"), alias)
			assert.Equal(t, "-", r.ObjectName, alias)
		}
	}
}

func TestDefault_Quirks(t *testing.T) {
	c := Default()

	sgm, ok := c.Lookup("sponsorgroupmember")
	require.True(t, ok)
	assert.True(t, sgm.NoDetail)

	gt, ok := c.Lookup("guesttype")
	require.True(t, ok)
	assert.Positive(t, gt.SettleDelay)

	ep, ok := c.Lookup("endpoint")
	require.True(t, ok)
	assert.Equal(t, "ERSEndPoint", ep.ObjectName)
	assert.Equal(t, ERS, ep.Dialect)
	assert.False(t, ep.NoDetail)
	assert.Zero(t, ep.SettleDelay)
}

func TestNew_RejectsBadRows(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"unknown prefix", []Entry{{Alias: "x", Path: "/admin/API/x"}}},
		{"prefix lookalike", []Entry{{Alias: "x", Path: "/ersatz/x"}}},
		{"duplicate alias", []Entry{
			{Alias: "x", Path: "/ers/config/x"},
			{Alias: "x", Path: "/api/v1/x"},
		}},
		{"empty alias", []Entry{{Alias: "", Path: "/ers/config/x"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.entries)
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	c := Default()

	t.Run("plain ERS", func(t *testing.T) {
		r, err := c.Resolve("sgt", nil)
		require.NoError(t, err)
		assert.Equal(t, "/ers/config/sgt", r.Path)
		assert.Equal(t, ERS, r.Dialect)
	})

	t.Run("substitutes variables", func(t *testing.T) {
		r, err := c.Resolve("na-policy-set-authz", map[string]string{"id": "11a1d056-7a2b-4b58-bdd0-624d005ac92e"})
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/policy/network-access/policy-set/11a1d056-7a2b-4b58-bdd0-624d005ac92e/authorization", r.Path)
		assert.Equal(t, OpenAPI, r.Dialect)
		assert.Empty(t, r.Variables())
	})

	t.Run("missing variable", func(t *testing.T) {
		_, err := c.Resolve("na-policy-set-authz", map[string]string{"name": "x"})
		var mv *MissingVariableError
		require.ErrorAs(t, err, &mv)
		assert.Equal(t, "id", mv.Variable)
		assert.Equal(t, "na-policy-set-authz", mv.Alias)
	})

	t.Run("empty variable value counts as missing", func(t *testing.T) {
		_, err := c.Resolve("certs-system", map[string]string{"hostname": ""})
		var mv *MissingVariableError
		require.ErrorAs(t, err, &mv)
		assert.Equal(t, "hostname", mv.Variable)
	})

	t.Run("unknown alias", func(t *testing.T) {
		_, err := c.Resolve("xyz", nil)
		var ur *UnknownResourceError
		require.ErrorAs(t, err, &ur)
		assert.Equal(t, "xyz", ur.Alias)
		assert.Contains(t, err.Error(), "Unknown resource: xyz")
	})

	t.Run("resolve does not mutate the catalog", func(t *testing.T) {
		_, err := c.Resolve("task-detail", map[string]string{"id": "42"})
		require.NoError(t, err)
		r, ok := c.Lookup("task-detail")
		require.True(t, ok)
		assert.Equal(t, "/api/v1/task/$id", r.Path)
		assert.Equal(t, []string{"id"}, r.Variables())
	})
}

func TestSuggest(t *testing.T) {
	c, err := New([]Entry{
		{Alias: "endpoint", Path: "/ers/config/endpoint", ObjectName: "ERSEndPoint"},
		{Alias: "endpointgroup", Path: "/ers/config/endpointgroup", ObjectName: "EndPointGroup"},
		{Alias: "sgt", Path: "/ers/config/sgt", ObjectName: "Sgt"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"endpoint", "endpointgroup"}, c.Suggest("endpoints"))
	assert.Equal(t, []string{"endpoint", "endpointgroup"}, c.Suggest("END"))
	assert.Empty(t, c.Suggest("xyz"))
	assert.Empty(t, c.Suggest(""))

	_, err = c.Resolve("endpnt", nil)
	assert.EqualError(t, err, "Unknown resource: endpnt (did you mean: endpoint, endpointgroup?)")
}

func TestSuggest_Capped(t *testing.T) {
	c := Default()
	assert.LessOrEqual(t, len(c.Suggest("na-")), maxSuggestions)
}

func TestAliases_SortedCopy(t *testing.T) {
	c := Default()
	a := c.Aliases()
	require.NotEmpty(t, a)
	assert.IsIncreasing(t, a)
	a[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Aliases()[0])
}
