package utils

import (
	"fmt"
	"net/url"
)

// ShareLinks holds the external share targets for an open article.
type ShareLinks struct {
	WhatsApp string
	LinkedIn string
	Twitter  string
}

// BuildShareLinks constructs target-specific share URLs embedding the page URL
// and a share text of the form "TITLE - Leia na SITE".
func BuildShareLinks(pageURL, title, siteName string) ShareLinks {
	text := fmt.Sprintf("%s - Leia na %s", title, siteName)
	encodedURL := url.QueryEscape(pageURL)
	encodedText := url.QueryEscape(text)

	return ShareLinks{
		WhatsApp: fmt.Sprintf("https://wa.me/?text=%s%%20%s", encodedText, encodedURL),
		LinkedIn: fmt.Sprintf("https://www.linkedin.com/sharing/share-offsite/?url=%s", encodedURL),
		Twitter:  fmt.Sprintf("https://twitter.com/intent/tweet?text=%s&url=%s", encodedText, encodedURL),
	}
}
