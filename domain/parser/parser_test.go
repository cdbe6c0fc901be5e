package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.source.hueristiq.com/urlcanon/domain"
	"go.source.hueristiq.com/urlcanon/domain/parser"
)

func Test_New(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, parser.New())
}

func Test_Parse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want *domain.Domain
	}{
		{"localhost", &domain.Domain{SLD: "localhost"}},
		{"co.uk", &domain.Domain{SLD: "co.uk"}},
		{"example.com", &domain.Domain{SLD: "example", TLD: "com"}},
		{"www.example.com", &domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}},
		{"example.co.uk", &domain.Domain{SLD: "example", TLD: "co.uk"}},
		{"www.example.co.uk", &domain.Domain{Subdomain: "www", SLD: "example", TLD: "co.uk"}},
		{"www.example.custom", &domain.Domain{SLD: "www.example.custom"}},
	}

	p := parser.New()

	for _, c := range cases {
		c := c

		t.Run(c.raw, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.want, p.Parse(c.raw))
		})
	}
}
