package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewInMemoryRules([]Coupon{
		{Code: "WELCOME10", DiscountPercentage: 10},
		{Code: "SEASON20", DiscountPercentage: 20},
	}))
}

func TestApply_ValidCode(t *testing.T) {
	s := newTestService()

	c, ok := s.Apply("sess-1", "WELCOME10")
	require.True(t, ok)
	assert.Equal(t, 10.0, c.DiscountPercentage)

	active, ok := s.Active("sess-1")
	require.True(t, ok)
	assert.Equal(t, "WELCOME10", active.Code)
}

func TestApply_InvalidCodeLeavesStateUnchanged(t *testing.T) {
	s := newTestService()
	_, ok := s.Apply("sess-1", "WELCOME10")
	require.True(t, ok)

	for _, bad := range []string{"INVALID", "", "   ", "welcome10"} {
		_, ok := s.Apply("sess-1", bad)
		assert.False(t, ok, "code %q must be rejected", bad)

		active, stillThere := s.Active("sess-1")
		require.True(t, stillThere, "failed apply must not clear the active coupon")
		assert.Equal(t, "WELCOME10", active.Code)
	}
}

func TestApply_ReplacesPriorCoupon(t *testing.T) {
	s := newTestService()
	_, ok := s.Apply("sess-1", "WELCOME10")
	require.True(t, ok)
	_, ok = s.Apply("sess-1", "SEASON20")
	require.True(t, ok)

	active, ok := s.Active("sess-1")
	require.True(t, ok)
	assert.Equal(t, "SEASON20", active.Code, "a new successful apply replaces the prior coupon")
}

func TestRemove_Unconditional(t *testing.T) {
	s := newTestService()

	// removing with nothing applied is fine
	s.Remove("sess-1")

	_, ok := s.Apply("sess-1", "WELCOME10")
	require.True(t, ok)
	s.Remove("sess-1")
	_, ok = s.Active("sess-1")
	assert.False(t, ok)
}

func TestCouponsAreIsolatedPerSession(t *testing.T) {
	s := newTestService()
	_, ok := s.Apply("sess-1", "WELCOME10")
	require.True(t, ok)

	_, ok = s.Active("sess-2")
	assert.False(t, ok)
}
