package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TimeOfDay
	}{
		{"24-hour afternoon", "14:00", 840},
		{"12-hour afternoon", "02:00 PM", 840},
		{"12-hour no space", "02:00PM", 840},
		{"lowercase meridiem", "02:00 pm", 840},
		{"morning", "09:30", 570},
		{"12-hour morning", "09:30 AM", 570},
		{"midnight 24h", "00:00", 0},
		{"midnight 12h", "12:00 AM", 0},
		{"noon 24h", "12:00", 720},
		{"noon 12h", "12:00 PM", 720},
		{"end of day", "23:59", 1439},
		{"surrounding whitespace", "  14:00  ", 840},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Sama jam dinding harus normalisasi ke nilai yang sama, apapun formatnya.
func TestParseTimeOfDayEquivalentFormats(t *testing.T) {
	a, err := ParseTimeOfDay("14:00")
	require.NoError(t, err)

	b, err := ParseTimeOfDay("02:00 PM")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"25:00",
		"-1:00",
		"9:60",
		"13:00 PM", // 12-hour clock only runs 1-12
		"00:00 AM", // likewise, zero hour is not on the 12-hour clock
		"14",
		"14:00:00",
		"half past two",
		"aa:bb",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimeOfDay(input)
			assert.Error(t, err)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "14:00", TimeOfDay(840).String())
	assert.Equal(t, "09:05", TimeOfDay(545).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
}

func TestTimeOfDayClock12(t *testing.T) {
	assert.Equal(t, "02:00 PM", TimeOfDay(840).Clock12())
	assert.Equal(t, "12:00 AM", TimeOfDay(0).Clock12())
	assert.Equal(t, "12:00 PM", TimeOfDay(720).Clock12())
	assert.Equal(t, "11:59 PM", TimeOfDay(1439).Clock12())
}

func TestTimeOfDayValid(t *testing.T) {
	assert.True(t, TimeOfDay(0).Valid())
	assert.True(t, TimeOfDay(1439).Valid())
	assert.False(t, TimeOfDay(1440).Valid())
	assert.False(t, TimeOfDay(-1).Valid())
}
