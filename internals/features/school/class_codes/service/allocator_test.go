package service

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAllocator struct {
	code  string
	err   error
	calls int
}

func (s *stubAllocator) Allocate(_ *gorm.DB, _ uuid.UUID) (string, error) {
	s.calls++
	return s.code, s.err
}

func TestFallbackCodeAllocator(t *testing.T) {
	classID := uuid.New()

	t.Run("primary sukses → fallback tidak disentuh", func(t *testing.T) {
		primary := &stubAllocator{code: "358"}
		fallback := &stubAllocator{code: "999"}
		a := FallbackCodeAllocator{Primary: primary, Fallback: fallback}

		code, err := a.Allocate(nil, classID)
		require.NoError(t, err)
		assert.Equal(t, "358", code)
		assert.Equal(t, 1, primary.calls)
		assert.Equal(t, 0, fallback.calls, "fallback hanya boleh jalan kalau primary error")
	})

	t.Run("primary error → recover lewat fallback", func(t *testing.T) {
		primary := &stubAllocator{err: errors.New("store down")}
		fallback := &stubAllocator{code: "742"}
		a := FallbackCodeAllocator{Primary: primary, Fallback: fallback}

		code, err := a.Allocate(nil, classID)
		require.NoError(t, err)
		assert.Equal(t, "742", code)
		assert.Equal(t, 1, fallback.calls)
	})

	t.Run("keduanya error → error diteruskan", func(t *testing.T) {
		primary := &stubAllocator{err: errors.New("store down")}
		fallback := &stubAllocator{err: errors.New("rand down")}
		a := FallbackCodeAllocator{Primary: primary, Fallback: fallback}

		_, err := a.Allocate(nil, classID)
		assert.Error(t, err)
	})
}

func TestRandomCodeAllocator(t *testing.T) {
	a := RandomCodeAllocator{Rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 500; i++ {
		code, err := a.Allocate(nil, uuid.Nil)
		require.NoError(t, err)
		require.Len(t, code, 3)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, CodeMin)
		assert.LessOrEqual(t, n, CodeMax)
	}
}
