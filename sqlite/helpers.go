package sqlite

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// hashQuote computes the xxHash of a quote's text and author as hex.
// Tags are left out so retagged quotes keep their hash.
func hashQuote(text, author string) string {
	h := xxhash.New()
	_, _ = h.WriteString(text)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(author)
	return hex.EncodeToString(h.Sum(nil))
}
