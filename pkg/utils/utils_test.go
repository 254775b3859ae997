package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMonotonicClock_NeverGoesBackwards(t *testing.T) {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(-time.Hour), base.Add(time.Minute)}
	i := 0
	c := NewMonotonicClock(func() time.Time {
		t := ticks[i]
		i++
		return t
	})

	assert.Equal(t, base, c.Now())
	assert.Equal(t, base, c.Now())
	assert.Equal(t, base.Add(time.Minute), c.Now())
}

func TestPhoneDigits(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"international", "+20 100 123 4567", "201001234567"},
		{"national", "0100 123 4567", "201001234567"},
		{"garbage falls back to digits", "call 12-34", "1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhoneDigits(tt.phone, "EG"))
		})
	}
}

type form struct {
	Name  string `validate:"required"`
	Phone string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	err := ValidateStruct(form{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"phone": "required"}, ValidationErrors(err))

	assert.NoError(t, ValidateStruct(form{Name: "x", Phone: "1"}))
}
