package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  La Vernice  ", "la-vernice"},
		{"Perché l'abete rosso?", "perche-l-abete-rosso"},
		{"Viola da Gamba (1720)", "viola-da-gamba-1720"},
		{"---", ""},
		{"IMG_0042.JPG", "img-0042-jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestSlugifyOutputIsValidSlug(t *testing.T) {
	for _, in := range []string{"Ciao Mondo", "../etc/passwd", "a/b\\c"} {
		got := Slugify(in)
		assert.True(t, validSlug(got), "Slugify(%q) = %q", in, got)
	}
}
