package utils

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildShareLinks(t *testing.T) {
	pageURL := "http://localhost:37371/insights?post=7"
	links := BuildShareLinks(pageURL, "Guerra de Preço", "LUMETRIC")

	encodedURL := url.QueryEscape(pageURL)

	if !strings.HasPrefix(links.WhatsApp, "https://wa.me/?text=") {
		t.Errorf("unexpected WhatsApp link: %s", links.WhatsApp)
	}
	if !strings.Contains(links.WhatsApp, encodedURL) {
		t.Errorf("WhatsApp link must embed the encoded page URL: %s", links.WhatsApp)
	}
	if links.LinkedIn != "https://www.linkedin.com/sharing/share-offsite/?url="+encodedURL {
		t.Errorf("unexpected LinkedIn link: %s", links.LinkedIn)
	}
	if !strings.HasPrefix(links.Twitter, "https://twitter.com/intent/tweet?text=") {
		t.Errorf("unexpected Twitter link: %s", links.Twitter)
	}
}

func TestBuildShareLinksText(t *testing.T) {
	links := BuildShareLinks("http://x/insights?post=1", "Título", "LUMETRIC")

	wantText := url.QueryEscape("Título - Leia na LUMETRIC")
	if !strings.Contains(links.Twitter, "text="+wantText) {
		t.Errorf("expected share text %q in %s", wantText, links.Twitter)
	}
}
