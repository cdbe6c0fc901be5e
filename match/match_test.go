package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.source.hueristiq.com/urlcanon/match"
	"go.source.hueristiq.com/urlcanon/parser"
)

func Test_Rule_Domain(t *testing.T) {
	t.Parallel()

	rule, err := match.New(match.Options{Domain: []byte("example.com")})
	require.NoError(t, err)

	assert.True(t, rule.Applies(parser.Parse([]byte("https://abc.example.com")), nil))
	assert.False(t, rule.Applies(parser.Parse([]byte("https://twitter.com")), nil))
}

func Test_Rule_Surt_Prefix(t *testing.T) {
	t.Parallel()

	base := parser.Parse([]byte("http://example.com/foo/bar"))

	rule, err := match.New(match.Options{Surt: base.SURT(true, true)})
	require.NoError(t, err)

	assert.True(t, rule.Applies(parser.Parse([]byte("http://example.com/foo/bar/baz")), nil))
	assert.False(t, rule.Applies(parser.Parse([]byte("http://example.com/foo/baz")), nil))
}

func Test_Rule_LegacyUrlMatch(t *testing.T) {
	t.Parallel()

	rule, err := match.New(match.Options{
		UrlMatch: match.StringMatch,
		Value:    []byte("bar"),
	})
	require.NoError(t, err)
	assert.NotNil(t, rule.Substring)

	_, err = match.New(match.Options{UrlMatch: "BOGUS_MATCH"})
	require.Error(t, err)

	var ce match.ConstructionError
	assert.ErrorAs(t, err, &ce)
}

func Test_Rule_ParentURLRegex_RequiresParent(t *testing.T) {
	t.Parallel()

	rule, err := match.New(match.Options{ParentURLRegex: []byte(`https?://(www\.)?youtube\.com/user/.*`)})
	require.NoError(t, err)

	url := parser.Parse([]byte("https://youtube.com/watch?v=1"))

	assert.False(t, rule.Applies(url, nil))

	parent := parser.Parse([]byte("https://youtube.com/user/someone"))
	assert.True(t, rule.Applies(url, parent))
}

func Test_HostMatchesDomain_IPLiteral(t *testing.T) {
	t.Parallel()

	assert.True(t, match.HostMatchesDomain([]byte("127.0.0.1"), []byte("127.0.0.1")))
	assert.False(t, match.HostMatchesDomain([]byte("127.0.0.1"), []byte("127.0.0.2")))
}
