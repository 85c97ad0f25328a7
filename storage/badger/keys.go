package badger

import (
	"fmt"

	"github.com/poiesic/topical/core"
)

// Key prefix for registered articles
const articleRecordPrefix = "artrec"

// makeArticleKey generates a key for an article by the hash of its URL.
func makeArticleKey(url string) []byte {
	return []byte(fmt.Sprintf("%s:%d", articleRecordPrefix, core.IDFromContent(url)))
}
