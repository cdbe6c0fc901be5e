package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.source.hueristiq.com/urlcanon/parser"
	"go.source.hueristiq.com/urlcanon/scope"
)

func Test_HostSiteKey_OrdinaryDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, scope.SiteKey("example.com"), scope.HostSiteKey([]byte("www.example.com")))
	assert.Equal(t, scope.SiteKey("example.com"), scope.HostSiteKey([]byte("example.com")))
}

func Test_HostSiteKey_IPLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, scope.SiteKey("127.0.0.1"), scope.HostSiteKey([]byte("127.0.0.1")))
}

func Test_URLSiteKey(t *testing.T) {
	t.Parallel()

	u := parser.Parse([]byte("http://blog.example.co.uk/path"))

	assert.Equal(t, scope.SiteKey("example.co.uk"), scope.URLSiteKey(u))
}
