package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want [4]int
	}{
		{name: "all zeros", text: "0.0.0.0", want: [4]int{0, 0, 0, 0}},
		{name: "all max", text: "255.255.255.255", want: [4]int{255, 255, 255, 255}},
		{name: "private range", text: "192.168.0.1", want: [4]int{192, 168, 0, 1}},
		{name: "ascending", text: "1.2.3.4", want: [4]int{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a, err := Parse(tc.text)
			require.NoError(t, err)

			for i, want := range tc.want {
				got, err := a.Segment(i)
				require.NoError(t, err)
				assert.Equal(t, want, got, "segment %d", i)
			}
			assert.Equal(t, tc.text, a.String(), "String should round-trip the input")
		})
	}
}

func TestParse_Failure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "three segments", text: "1.2.3", wantErr: ErrInvalidFormat},
		{name: "five segments", text: "1.2.3.4.5", wantErr: ErrInvalidFormat},
		{name: "empty input", text: "", wantErr: ErrInvalidFormat},
		{name: "alpha token", text: "10.0.a.1", wantErr: ErrInvalidSyntax},
		{name: "empty token", text: "1..2.3", wantErr: ErrInvalidSyntax},
		{name: "token with space", text: "1. 2.3.4", wantErr: ErrInvalidSyntax},
		{name: "above max", text: "256.1.1.1", wantErr: ErrInvalidValue},
		{name: "negative", text: "1.2.3.-1", wantErr: ErrInvalidValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParse_ErrorNamesOffendingSegment(t *testing.T) {
	t.Parallel()

	_, err := Parse("1.2.999.4")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "segment 2")
	assert.Contains(t, err.Error(), "999")
}

func TestNew_MatchesParse(t *testing.T) {
	t.Parallel()

	fromInts, err := New(10, 0, 255, 7)
	require.NoError(t, err)

	fromText, err := Parse("10.0.255.7")
	require.NoError(t, err)

	assert.Equal(t, fromText, fromInts, "both construction paths must yield equal state")
}

func TestNew_Failure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		segs       [4]int
		wantDetail string
	}{
		{name: "above max", segs: [4]int{1, 300, 3, 4}, wantDetail: "segment 1"},
		{name: "negative", segs: [4]int{1, 2, 3, -1}, wantDetail: "segment 3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tc.segs[0], tc.segs[1], tc.segs[2], tc.segs[3])
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), tc.wantDetail)
		})
	}
}

func TestSegment_IndexOutOfBounds(t *testing.T) {
	t.Parallel()

	a := MustParse("1.2.3.4")

	for _, i := range []int{-1, 4, 99} {
		_, err := a.Segment(i)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", i)
	}
}

func TestSetSegment_Applies(t *testing.T) {
	t.Parallel()

	a := MustParse("10.0.0.1")
	require.NoError(t, a.SetSegment(2, 42))

	assert.Equal(t, "10.0.42.1", a.String(), "only the addressed segment changes")
}

func TestSetSegment_FailureLeavesAddressUntouched(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		index   int
		value   int
		wantErr error
	}{
		{name: "value above max", index: 1, value: 256, wantErr: ErrInvalidValue},
		{name: "negative value", index: 1, value: -1, wantErr: ErrInvalidValue},
		{name: "index too large", index: 4, value: 1, wantErr: ErrInvalidIndex},
		{name: "negative index", index: -1, value: 1, wantErr: ErrInvalidIndex},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := MustParse("9.9.9.9")
			err := a.SetSegment(tc.index, tc.value)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, "9.9.9.9", a.String(), "failed set must not mutate")
		})
	}
}

func TestString_ZeroValue(t *testing.T) {
	t.Parallel()

	var a Address
	assert.Equal(t, "0.0.0.0", a.String())
}

func TestMustParse_PanicsOnBadInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("not.an.address") })
	assert.NotPanics(t, func() { MustParse("127.0.0.1") })
}
