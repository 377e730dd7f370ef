// Package identity превращает id пользователя платформы в стабильный псевдоним.
// Обратного отображения нет и не хранится.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"offertracker/internal/domain/models"
)

const pseudonymLength = sha256.Size * 2

// Pseudonym = hex(sha256("<id>:<salt>"))
func Pseudonym(platformID int64, salt string) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(platformID, 10) + ":" + salt))
	return hex.EncodeToString(sum[:])
}

// Normalize принимает то, что пришло в параметре u редиректа:
// готовый псевдоним, сырой числовой id (хешируется здесь же) или пустую строку (аноним).
func Normalize(raw, salt string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if IsPseudonym(raw) {
		return raw, nil
	}

	if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
		return Pseudonym(id, salt), nil
	}

	return "", fmt.Errorf("%w: malformed user identifier", models.ErrInvalidData)
}

func IsPseudonym(s string) bool {
	if len(s) != pseudonymLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
