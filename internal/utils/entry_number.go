package utils

import (
	"github.com/oklog/ulid/v2"
)

// entryNumberPrefix is the human-readable prefix on journal entry numbers.
const entryNumberPrefix = "JE-"

// NewEntryNumber allocates a unique, time-ordered journal entry number.
// ULIDs sort lexicographically by creation time, which keeps entry numbers
// monotonically distinguishable across commits.
func NewEntryNumber() string {
	return entryNumberPrefix + ulid.Make().String()
}
