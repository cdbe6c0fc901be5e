package idnahost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.source.hueristiq.com/urlcanon/internal/idnahost"
)

func Test_Encode_ASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", string(idnahost.Encode([]byte("example.com"))))
	assert.Equal(t, "example.com", string(idnahost.Encode([]byte("Example.COM"))))
}

func Test_Encode_Unicode(t *testing.T) {
	t.Parallel()

	got := string(idnahost.Encode([]byte("müller.de")))

	assert.Equal(t, "xn--mller-kva.de", got)
}
