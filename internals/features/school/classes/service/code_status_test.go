package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCodeStatus(t *testing.T) {
	validUntil := monday(17, 20)

	assert.Equal(t, CodeStatusActive, DeriveCodeStatus(validUntil, monday(16, 30)))
	assert.Equal(t, CodeStatusActive, DeriveCodeStatus(validUntil, monday(17, 20)), "tepat di valid_until masih active")
	assert.Equal(t, CodeStatusExpired, DeriveCodeStatus(validUntil, monday(17, 21)))
	assert.Equal(t, CodeStatusExpired, DeriveCodeStatus(validUntil, validUntil.Add(time.Second)))
}
