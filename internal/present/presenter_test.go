package present

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/nodehtml/internal/config"
	"github.com/mithrel/nodehtml/internal/present/format"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"html": ModeHTML, "pretty": ModePretty, "json": ModeJSON} {
		got, ok := ParseMode(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMode("xml")
	assert.False(t, ok)
}

func TestParseModeAgreesWithConfig(t *testing.T) {
	for _, name := range []string{"html", "pretty", "json", "raw", "xml"} {
		v := viper.New()
		v.Set("data_dir", t.TempDir())
		v.Set("render.output", name)
		v.Set("render.wrap", "p")

		_, ok := ParseMode(name)
		assert.Equal(t, ok, config.CheckConfigValidity(v) == nil, name)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Result{HTML: "<p>x</p>"}, Options{Mode: ModeHTML}))
	assert.Equal(t, "<p>x</p>\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Result{HTML: "<p>a&b</p>", Fingerprint: "abc"}, Options{Mode: ModeJSON}))
	assert.Equal(t, "{\"html\":\"<p>a&b</p>\",\"fingerprint\":\"abc\"}\n", buf.String())

	var d format.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &d))
	assert.Equal(t, "<p>a&b</p>", d.HTML)
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Mode: ModePretty, Title: "page", Pretty: format.PrettyOptions{Style: "notty", WordWrap: 80}}
	require.NoError(t, Write(&buf, Result{HTML: "<div>Hello</div>"}, opts))
	assert.Contains(t, buf.String(), "Hello")
	assert.Contains(t, buf.String(), "page")
}
