package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, []string{"", "/blog", "/privacy", "/terms", "/cookies"}, s.Routes.Paths())
	assert.Equal(t, "it", s.Locales.Default)
}

func TestRoutesValidate(t *testing.T) {
	tests := []struct {
		name   string
		routes Routes
		ok     bool
	}{
		{"valid", Routes{{Path: "", Priority: 1, ChangeFrequency: Weekly}, {Path: "/a", Priority: 0, ChangeFrequency: Never}}, true},
		{"duplicate path", Routes{{Path: "/a", Priority: 0.5, ChangeFrequency: Weekly}, {Path: "/a", Priority: 0.5, ChangeFrequency: Weekly}}, false},
		{"priority too high", Routes{{Path: "/a", Priority: 1.1, ChangeFrequency: Weekly}}, false},
		{"negative priority", Routes{{Path: "/a", Priority: -0.1, ChangeFrequency: Weekly}}, false},
		{"bad frequency", Routes{{Path: "/a", Priority: 0.5, ChangeFrequency: "fortnightly"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.routes.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRoutesLookups(t *testing.T) {
	rs := Default().Routes

	r, ok := rs.ByPath("/blog")
	require.True(t, ok)
	assert.Equal(t, 0.8, r.Priority)

	_, ok = rs.ByPath("/nope")
	assert.False(t, ok)

	high := rs.ByPriority(0.8)
	assert.Equal(t, []string{"", "/blog"}, high.Paths())
}

func TestLocalesValidate(t *testing.T) {
	l := Locales{Codes: []string{"en", "it", "fr"}, Default: "en"}
	require.NoError(t, l.Check())
	assert.NoError(t, l.Validate("it"))

	err := l.Validate("de")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownLocale))
}

func TestLocalesCheck(t *testing.T) {
	assert.Error(t, Locales{}.Check())
	assert.Error(t, Locales{Codes: []string{"en"}, Default: "it"}.Check())
	assert.Error(t, Locales{Codes: []string{"en", "en"}, Default: "en"}.Check())
}

func TestParseOverlay(t *testing.T) {
	raw := []byte(`
meta:
  site_name: Bottega
  url: https://example.test/
locales:
  codes: [en, it, fr]
  default: en
`)
	s, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Bottega", s.Meta.SiteName)
	assert.Equal(t, "https://example.test", s.Meta.URL)
	assert.Equal(t, []string{"en", "it", "fr"}, s.Locales.Codes)
	// routes untouched
	assert.Equal(t, Default().Routes, s.Routes)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("colour: red\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestMetadataService(t *testing.T) {
	m := Default().Meta
	svc, ok := m.Service("restoration")
	require.True(t, ok)
	assert.Equal(t, "Restoration & Setup", svc.Name)
	_, ok = m.Service("tuning")
	assert.False(t, ok)
}
