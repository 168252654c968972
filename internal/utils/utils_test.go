package utils

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), "u-1", "Alice", "ADMIN")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u-1", id)
	assert.Equal(t, "Alice", GetUserNameFromContext(ctx))
	assert.Equal(t, "ADMIN", GetUserRoleFromContext(ctx))
}

func TestUserContext_Empty(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "", GetUserRoleFromContext(context.Background()))
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{6}$`)

	num := GenerateOrderNumber()
	assert.Regexp(t, pattern, num)
	assert.Contains(t, num, time.Now().UTC().Format("20060102"))
}

func TestGenerateOrderNumber_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateOrderNumber()] = true
	}
	// 50 draws from a 10^6 space should essentially never collide
	assert.Greater(t, len(seen), 45)
}
