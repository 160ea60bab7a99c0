package share

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShareLink_IsUsable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	cases := []struct {
		name      string
		active    bool
		expiresAt *time.Time
		want      bool
	}{
		{"active permanent", true, nil, true},
		{"active not yet expired", true, &future, true},
		{"active but expired", true, &past, false},
		{"active expiring this instant", true, &now, false},
		{"revoked permanent", false, nil, false},
		{"revoked and unexpired", false, &future, false},
		{"revoked and expired", false, &past, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &ShareLink{IsActive: tc.active, ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.want, l.IsUsable(now))
		})
	}
}
