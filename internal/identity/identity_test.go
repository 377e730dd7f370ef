package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"offertracker/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudonym(t *testing.T) {
	sum := sha256.Sum256([]byte("123456:pepper"))
	want := hex.EncodeToString(sum[:])

	assert.Equal(t, want, Pseudonym(123456, "pepper"))
	assert.Equal(t, Pseudonym(123456, "pepper"), Pseudonym(123456, "pepper"))
	assert.NotEqual(t, Pseudonym(123456, "pepper"), Pseudonym(123457, "pepper"))
	assert.NotEqual(t, Pseudonym(123456, "pepper"), Pseudonym(123456, "salt"))
	assert.True(t, IsPseudonym(Pseudonym(1, "x")))
}

func TestNormalize(t *testing.T) {
	hashed := Pseudonym(42, "pepper")

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "anonymous", raw: "", want: ""},
		{name: "whitespace is anonymous", raw: "  ", want: ""},
		{name: "ready pseudonym", raw: hashed, want: hashed},
		{name: "raw platform id is hashed", raw: "42", want: hashed},
		{name: "negative id", raw: "-42", wantErr: models.ErrInvalidData},
		{name: "garbage", raw: "not-a-user", wantErr: models.ErrInvalidData},
		{name: "uppercase hex", raw: "ABCDEF" + hashed[6:], wantErr: models.ErrInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, "pepper")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
