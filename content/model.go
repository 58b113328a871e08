package content

import (
	"net/url"
	"strings"

	"z3z/constants"
)

// Collection names one of the three content categories. Each one lives in
// its own JSON array file under the data directory.
type Collection string

const (
	Poemas    Collection = "poemas"
	Filosofia Collection = "filosofia"
	Religiao  Collection = "religiao"
)

// Collections lists every known collection, in nav order.
var Collections = []Collection{Poemas, Filosofia, Religiao}

func ParseCollection(s string) (Collection, bool) {
	switch Collection(s) {
	case Poemas, Filosofia, Religiao:
		return Collection(s), true
	}
	return "", false
}

func (c Collection) FileName() string {
	return string(c) + ".json"
}

// IsVerse reports whether items in this collection use poem formatting
// (stanza lines) rather than article paragraphs.
func (c Collection) IsVerse() bool {
	return c == Poemas
}

// Label is the display name used in page titles and navigation.
func (c Collection) Label() string {
	switch c {
	case Poemas:
		return "Poemas"
	case Filosofia:
		return "Filosofia"
	case Religiao:
		return "Religião"
	}
	return string(c)
}

// Item is a poem or article. Content holds stanza lines for poems and
// paragraphs for articles; it is never empty for a saved item.
type Item struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   []string `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
	Date      string   `json:"date"`
	Author    string   `json:"author,omitempty"`
	Image     string   `json:"image,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// Excerpt derives the listing-card summary from the first content element,
// cut at the configured length with a trailing ellipsis.
func (it Item) Excerpt() string {
	if len(it.Content) == 0 {
		return ""
	}
	first := it.Content[0]
	runes := []rune(first)
	if len(runes) <= constants.EXCERPT_LENGTH {
		return first
	}
	return strings.TrimRight(string(runes[:constants.EXCERPT_LENGTH]), " ") + "..."
}

// sanitizeImageURL keeps the image only when it parses as an absolute
// http(s) URL; anything else is dropped without complaint.
func sanitizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return raw
}
