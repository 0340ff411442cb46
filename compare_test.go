package fixstr

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func TestCompareBasic(t *testing.T) {
	a := Truncate[[9]byte]("abc")
	b := Truncate[[9]byte]("abd")
	prefix := Truncate[[9]byte]("ab")

	require.Negative(t, a.Compare(b))
	require.Positive(t, b.Compare(a))
	require.Zero(t, a.Compare(a))
	require.Negative(t, prefix.Compare(a)) // strict prefix sorts first

	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
}

func TestCompareIgnoresStaleBufferTail(t *testing.T) {
	a := Truncate[[9]byte]("abcdef")
	require.NoError(t, a.Set("ab")) // tail bytes past the terminator keep "def"
	b := Truncate[[9]byte]("ab")
	require.Zero(t, a.Compare(b))
	require.True(t, a.Equal(b))
}

func TestCompareEmbeddedNul(t *testing.T) {
	short := TruncateBytes[[9]byte]([]byte{'a'})
	withNul := TruncateBytes[[9]byte]([]byte{'a', 0, 'b'})
	require.Negative(t, short.Compare(withNul))
	require.False(t, short.Equal(withNul))
}

func TestCompareTotalOrder(t *testing.T) {
	condition := func(x, y, z string) bool {
		a := Truncate[[17]byte](x)
		b := Truncate[[17]byte](y)
		c := Truncate[[17]byte](z)
		if a.Compare(a) != 0 {
			return false
		}
		if (a.Compare(b) == 0) != a.Equal(b) {
			return false
		}
		if sign(a.Compare(b)) != -sign(b.Compare(a)) {
			return false
		}
		if a.Less(b) != (a.Compare(b) < 0) {
			return false
		}
		// transitivity of <=
		if a.Compare(b) <= 0 && b.Compare(c) <= 0 && a.Compare(c) > 0 {
			return false
		}
		return true
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestSortWithLess(t *testing.T) {
	vals := []String[[9]byte]{
		Truncate[[9]byte]("pear"),
		Truncate[[9]byte]("apple"),
		Truncate[[9]byte]("fig"),
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i].Less(vals[j]) })
	require.Equal(t, "apple", vals[0].String())
	require.Equal(t, "fig", vals[1].String())
	require.Equal(t, "pear", vals[2].String())
}
