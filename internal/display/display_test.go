package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopDisplayerRecordsCalls(t *testing.T) {
	d := &NopDisplayer{}

	require.NoError(t, d.Show("first", []byte{1, 2, 3}))
	require.NoError(t, d.Show("second", nil))

	assert.Equal(t, 2, d.Calls())
	assert.Equal(t, []string{"first", "second"}, d.Titles)
}

func TestNopDisplayerErr(t *testing.T) {
	want := errors.New("window unavailable")
	d := &NopDisplayer{Err: want}

	err := d.Show("chart", nil)
	assert.ErrorIs(t, err, want)
	assert.Equal(t, 1, d.Calls())
}
