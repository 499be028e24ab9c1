package textspan

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanEqual(t *testing.T) {
	t.Run("same fields", func(t *testing.T) {
		assert.True(t, New("This is a text node", Bold).Equal(New("This is a text node", Bold)))
	})

	t.Run("different text", func(t *testing.T) {
		assert.False(t, New("Test", Bold).Equal(New("Different", Bold)))
	})

	t.Run("different style", func(t *testing.T) {
		assert.False(t, New("Test", Bold).Equal(New("Test", Italic)))
	})

	t.Run("absent urls are equal", func(t *testing.T) {
		a := New("Test", Link)
		b := New("Test", Link)
		assert.True(t, a.Equal(b))

		a = a.WithURL("https://www.test.com")
		assert.False(t, a.Equal(b))
		assert.False(t, b.Equal(a))
	})

	t.Run("different urls", func(t *testing.T) {
		a := NewWithURL("Test", Link, "https://www.test1.com")
		b := NewWithURL("Test", Link, "https://www.test2.com")
		assert.False(t, a.Equal(b))
	})

	t.Run("urls compare by value", func(t *testing.T) {
		u1, u2 := "https://x.dev", "https://x.dev"
		a := Span{Text: "x", Style: Image, URL: &u1}
		b := Span{Text: "x", Style: Image, URL: &u2}
		assert.True(t, a.Equal(b))
	})

	t.Run("explicit nil url matches omitted url", func(t *testing.T) {
		a := New("Test", Plain)
		b := Span{Text: "Test", Style: Plain, URL: nil}
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(b.WithURL("https://test.com")))
	})
}

func TestSpanCopies(t *testing.T) {
	a := NewWithURL("x", Link, "https://a")
	b := a.WithURL("https://b")
	assert.Equal(t, "https://a", a.URLString())
	assert.Equal(t, "https://b", b.URLString())

	c := b.WithoutURL()
	assert.False(t, c.HasURL())
	assert.True(t, b.HasURL())
	assert.Equal(t, "", c.URLString())
}

func TestSpanLinkWithoutURLIsConstructible(t *testing.T) {
	s := New("click", Link)
	assert.Equal(t, Link, s.Style)
	assert.Nil(t, s.URL)
}

func TestParseStyle(t *testing.T) {
	for _, st := range Styles() {
		got, err := ParseStyle(strings.ToUpper(st.String()))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	got, err := ParseStyle("text")
	require.NoError(t, err)
	assert.Equal(t, Plain, got)

	_, err = ParseStyle("bld")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStyle))
	assert.Contains(t, err.Error(), "did you mean bold")

	_, err = ParseStyle("zzz")
	assert.True(t, errors.Is(err, ErrUnknownStyle))
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "image", Image.String())
	assert.Equal(t, "style(9)", Style(9).String())
	assert.False(t, Style(-1).Valid())

	_, err := Style(9).MarshalText()
	assert.True(t, errors.Is(err, ErrUnknownStyle))
}

func TestSpanJSON(t *testing.T) {
	b, err := json.Marshal(NewWithURL("Go", Link, "https://go.dev"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Go","style":"link","url":"https://go.dev"}`, string(b))

	b, err = json.Marshal(New("hi", Bold))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi","style":"bold"}`, string(b))

	var s Span
	require.NoError(t, json.Unmarshal([]byte(`{"text":"Go","style":"LINK","url":"https://go.dev"}`), &s))
	assert.True(t, s.Equal(NewWithURL("Go", Link, "https://go.dev")))
}

func TestReadSpans(t *testing.T) {
	want := []Span{
		New("Hello ", Plain),
		New("world", Bold),
		NewWithURL("docs", Link, "https://go.dev"),
	}

	t.Run("array", func(t *testing.T) {
		in := `  [{"text":"Hello ","style":"plain"},{"text":"world","style":"bold"},{"text":"docs","style":"link","url":"https://go.dev"}]`
		got, err := ReadSpans(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, want[i].Equal(got[i]), "span %d", i)
		}
	})

	t.Run("ndjson", func(t *testing.T) {
		in := "{\"text\":\"Hello \",\"style\":\"plain\"}\n{\"text\":\"world\",\"style\":\"bold\"}\n{\"text\":\"docs\",\"style\":\"link\",\"url\":\"https://go.dev\"}\n"
		got, err := ReadSpans(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.True(t, want[i].Equal(got[i]), "span %d", i)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := ReadSpans(strings.NewReader("  \n"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := ReadSpans(strings.NewReader(`{"text":"x","style":"itallic"}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownStyle))
		assert.Contains(t, err.Error(), "span 0")
	})
}
