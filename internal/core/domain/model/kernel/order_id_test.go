package kernel_test

import (
	"regexp"
	"testing"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedOrderID = regexp.MustCompile(`^ORD-[0-9A-Z]{6}$`)

func TestNewOrderID(t *testing.T) {
	t.Run("should match the ORD-XXXXXX format", func(t *testing.T) {
		id := kernel.NewOrderID()

		require.NoError(t, id.Validate())
		assert.Regexp(t, generatedOrderID, id.String())
	})

	t.Run("should create distinct ids", func(t *testing.T) {
		seen := make(map[string]struct{}, 200)
		for i := 0; i < 200; i++ {
			id := kernel.NewOrderID()
			_, dup := seen[id.String()]
			require.False(t, dup, "duplicate id %s", id)
			seen[id.String()] = struct{}{}
		}
	})

	t.Run("should round trip through OrderIDFromString", func(t *testing.T) {
		id := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should accept short legacy suffixes", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-4F")

		require.NoError(t, err)
		assert.Equal(t, "ORD-4F", id.String())
	})

	invalid := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"missing prefix", "ABC123"},
		{"prefix only", "ORD-"},
		{"suffix too long", "ORD-ABCDEFG"},
		{"lower case", "ORD-abc123"},
		{"punctuation", "ORD-AB_123"},
	}

	for _, tc := range invalid {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			id, err := kernel.OrderIDFromString(tc.value)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Error(t, id.Validate())
		})
	}
}

func TestOrderID_Validate(t *testing.T) {
	var id kernel.OrderID

	err := id.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
}
