package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	system := SystemClassCodeID
	student := uuid.MustParse("7b9c5a52-3f1e-4b0a-9d7e-111111111111")

	t.Run("simetris terhadap urutan partisipan", func(t *testing.T) {
		r1a, i1a, r1b, i1b := normalizePair("class-code", system, "student", student)
		r2a, i2a, r2b, i2b := normalizePair("student", student, "class-code", system)

		assert.Equal(t, r1a, r2a)
		assert.Equal(t, i1a, i2a)
		assert.Equal(t, r1b, r2b)
		assert.Equal(t, i1b, i2b)
	})

	t.Run("role jadi kunci urut pertama", func(t *testing.T) {
		ra, _, rb, _ := normalizePair("student", student, "class-code", system)
		assert.Equal(t, "class-code", ra)
		assert.Equal(t, "student", rb)
	})

	t.Run("role sama → urut berdasar id", func(t *testing.T) {
		lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
		hi := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

		_, ia, _, ib := normalizePair("student", hi, "student", lo)
		assert.Equal(t, lo, ia)
		assert.Equal(t, hi, ib)
	})
}
