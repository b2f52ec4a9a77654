package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const hashDayLayout = "2006-01-02"

// AnonymityHash derives the pseudonym shown next to a post. It is stable for
// the same topic, user and UTC calendar day, and changes across any of them.
// Time below day resolution never affects the result.
func AnonymityHash(topicID string, date time.Time, userID string) string {
	day := date.UTC().Format(hashDayLayout)

	h := sha256.New()
	h.Write([]byte(topicID))
	h.Write([]byte{0})
	h.Write([]byte(day))
	h.Write([]byte{0})
	h.Write([]byte(userID))
	return hex.EncodeToString(h.Sum(nil))
}
