package embed

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// DefaultTag prefixes every delimiter unless Options.Tag says otherwise.
const DefaultTag = "RUFUS"

const fingerprintLen = 8

// Delimiter returns the raw string delimiter for content: the tag, an
// underscore, and the first eight hex digits of the content's MD5 digest.
//
// In the unlikely case that content already contains the closing sequence
// for that delimiter, the digest is recomputed over the content followed by
// a NUL byte and an attempt counter until the closing sequence is absent.
// The result depends only on tag and content.
func Delimiter(tag string, content []byte) string {
	delim, _ := delimiter(tag, content, fingerprint)
	return delim
}

// delimiter also returns how many fingerprints were rejected.
func delimiter(tag string, content []byte, fp func([]byte, int) string) (string, int) {
	for attempt := 0; ; attempt++ {
		delim := tag + "_" + fp(content, attempt)
		if !bytes.Contains(content, closing(delim)) {
			return delim, attempt
		}
	}
}

func fingerprint(content []byte, attempt int) string {
	h := md5.New()
	h.Write(content)
	if attempt > 0 {
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(attempt)))
	}

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLen]
}

// closing is the sequence that ends a C++ raw string bounded by delim.
func closing(delim string) []byte {
	return []byte(")" + delim + `"`)
}
