package boss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Float64(t *testing.T) {
	f, ok := Value("1.5e6").Float64()
	assert.True(t, ok)
	assert.Equal(t, 1.5e6, f)

	_, ok = Value(`"12"`).Float64()
	assert.False(t, ok)
	_, ok = Value(nil).Float64()
	assert.False(t, ok)
}

func TestValue_Text(t *testing.T) {
	s, ok := Value(`"Fire & Ice"`).Text()
	assert.True(t, ok)
	assert.Equal(t, "Fire & Ice", s)

	_, ok = Value("3").Text()
	assert.False(t, ok)
}

func TestValue_Native(t *testing.T) {
	assert.Nil(t, Value(nil).Native())
	assert.Equal(t, int64(120), Value("120").Native())
	assert.Equal(t, 0.5, Value("0.5").Native())
	assert.Equal(t, "Dark", Value(`"Dark"`).Native())
	assert.Equal(t, true, Value("true").Native())
	assert.Equal(t, `[1,2]`, Value(`[1,2]`).Native())
}

func TestValueOf(t *testing.T) {
	v, err := ValueOf(int64(42))
	require.NoError(t, err)
	assert.Equal(t, Value("42"), v)

	v, err = ValueOf(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestStats_Fields(t *testing.T) {
	var s Stats
	fields := s.Fields()
	require.Len(t, fields, 15)
	assert.Equal(t, "level", fields[0].Name)
	assert.Equal(t, "proration_magic", fields[14].Name)

	*fields[1].Value = Value("10")
	assert.Equal(t, Value("10"), s.HP)
}
