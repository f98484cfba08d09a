package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Resenas-api/internal/domain"
)

func TestError_IsKind(t *testing.T) {
	err := domain.Errorf(domain.ErrConflict, "You already commented to this restaurant")
	wrapped := fmt.Errorf("crear comentario: %w", err)

	assert.True(t, errors.Is(wrapped, domain.ErrConflict))
	assert.False(t, errors.Is(wrapped, domain.ErrNotFound))
	assert.Equal(t, "You already commented to this restaurant", domain.Message(wrapped))
}

func TestMessage_SentinelEnvuelto(t *testing.T) {
	err := fmt.Errorf("get user: %w", domain.ErrStoreUnavailable)
	assert.Equal(t, domain.ErrStoreUnavailable.Error(), domain.Message(err))
}
