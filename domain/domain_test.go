package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.source.hueristiq.com/urlcanon/domain"
)

func Test_Domain_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    *domain.Domain
		want string
	}{
		{"sld only", &domain.Domain{SLD: "example"}, "example"},
		{"sld and tld", &domain.Domain{SLD: "example", TLD: "com"}, "example.com"},
		{"full", &domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}, "www.example.com"},
		{"multi-label subdomain", &domain.Domain{Subdomain: "blog.www", SLD: "example", TLD: "com"}, "blog.www.example.com"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.want, c.d.String())
		})
	}
}
