// Package phonetic encodes words by how they sound.
package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
	"go.uber.org/zap"
)

// Key returns the double metaphone primary code of s, or the secondary code
// when the primary is empty. It returns "" when s cannot be encoded.
func Key(s string) (key string) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Debug("phonetic: encode failed", zap.String("input", s), zap.Any("panic", r))
			key = ""
		}
	}()

	primary, secondary := matchr.DoubleMetaphone(strings.ToUpper(s))
	if primary != "" {
		return primary
	}
	return secondary
}
