package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30:45", 750},
		{" 17:05 ", 1025},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "aa:bb", "1:2:3:4", "10:00:99"} {
		_, err := ParseClock(in)
		assert.Error(t, err, "should reject %q", in)
	}
}

func TestParsePostpone(t *testing.T) {
	p, err := ParsePostpone("YES")
	require.NoError(t, err)
	assert.Equal(t, PostponeYes, p)

	p, err = ParsePostpone("n")
	require.NoError(t, err)
	assert.Equal(t, PostponeNo, p)

	_, err = ParsePostpone("maybe")
	assert.Error(t, err)
}

func TestPostpone_Toggle(t *testing.T) {
	assert.Equal(t, PostponeNo, PostponeYes.Toggle())
	assert.Equal(t, PostponeYes, PostponeNo.Toggle())
	assert.False(t, Postpone("").Valid())
}

func TestAgenda_HasLunch(t *testing.T) {
	var nilAgenda *Agenda
	assert.False(t, nilAgenda.HasLunch())
	assert.False(t, (&Agenda{Lunch: true, LunchStartTime: "12:00"}).HasLunch())
	assert.True(t, (&Agenda{Lunch: true, LunchStartTime: "12:00", LunchEndTime: "13:00"}).HasLunch())
}

func TestCloneItems_Independent(t *testing.T) {
	orig := []AgendaItem{{ID: "a", Postpone: PostponeNo}}
	cp := CloneItems(orig)
	cp[0].Postpone = PostponeYes
	assert.Equal(t, PostponeNo, orig[0].Postpone)
	assert.Nil(t, CloneItems(nil))
}
