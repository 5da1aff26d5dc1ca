package textops

import (
	"errors"
	"strings"
	"testing"
)

func TestTransliterate(t *testing.T) {
	tests := map[string]string{
		"hello":   "hello",
		"héllo":   "hello",
		"Æneid":   "AEneid",
		"\u00fc":  "u",
		"\u0430b": "ab",
	}
	for in, want := range tests {
		if got := Transliterate(in); got != want {
			t.Errorf("Transliterate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripTags(t *testing.T) {
	tests := map[string]string{
		`<a href='http://evil.com'>hi</a>`: "hi",
		"<b>bold</b> text":                 "bold text",
		"<script>alert(1)</script>":        "",
		"plain":                            "plain",
	}
	for in, want := range tests {
		if got := StripTags(in); got != want {
			t.Errorf("StripTags(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripTags_keepsQuotes(t *testing.T) {
	got := StripTags(`<p>it's "quoted"</p>`)
	if want := `it's "quoted"`; got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestStripTags_escapesMarkupCharacters(t *testing.T) {
	got := StripTags("a &amp; b &lt;c&gt; &amp;#39;")
	if want := "a &amp; b &lt;c&gt; &amp;#39;"; got != want {
		t.Errorf("StripTags = %q, want %q", got, want)
	}
}

func TestFindLinkSpans(t *testing.T) {
	text := "see http://evil.com and mail bob@example.org, not example.net"
	spans := FindLinkSpans(text)
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}

	if spans[0].Kind != LinkURL {
		t.Errorf("spans[0].Kind = %v, want url", spans[0].Kind)
	}
	if got := text[spans[0].Start:spans[0].End]; got != "http://evil.com" {
		t.Errorf("spans[0] = %q, want %q", got, "http://evil.com")
	}
	if spans[1].Kind != LinkEmail {
		t.Errorf("spans[1].Kind = %v, want email", spans[1].Kind)
	}
	if got := text[spans[1].Start:spans[1].End]; got != "bob@example.org" {
		t.Errorf("spans[1] = %q, want %q", got, "bob@example.org")
	}
}

func TestDefang(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url", "visit http://evil.com now", "visit hXXp://evil[.]com now"},
		{"https", "https://a.b.c/x", "hXXps://a[.]b[.]c/x"},
		{"ftp", "ftp://files.example.com", "fXp://files[.]example[.]com"},
		{"email", "write to bob@example.org", "write to bob[@]example[.]org"},
		{"bare domain untouched", "example.com is fine", "example.com is fine"},
		{"no links", "nothing here.", "nothing here."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Defang(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Defang(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefangSpanUnsupportedKind(t *testing.T) {
	_, err := defangSpan("x", LinkKind(99))
	if !errors.Is(err, ErrUnsupportedLinkKind) {
		t.Fatalf("err = %v, want ErrUnsupportedLinkKind", err)
	}
	if !strings.Contains(err.Error(), "LinkKind(99)") {
		t.Errorf("err = %v, want it to name the kind", err)
	}
}

func TestCensor(t *testing.T) {
	tests := map[string]string{
		"what the fuck": "what the ****",
		"hello world":   "hello world",
	}
	for in, want := range tests {
		if got := Censor(in); got != want {
			t.Errorf("Censor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Hello World!": "hello-world",
		"héllo":        "hello",
		"!!!":          "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
