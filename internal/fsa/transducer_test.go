package fsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDFATransducerOutputs(t *testing.T) {
	tr := NewDFATransducer(evenAs(t), map[string]string{
		"q0": "even",
		"q1": "odd",
	})

	out, ok := tr.Output()
	require.True(t, ok)
	require.Equal(t, "even", out)

	out, ok = tr.Push("a")
	require.True(t, ok)
	require.Equal(t, "odd", out)

	out, ok = tr.Push("a")
	require.True(t, ok)
	require.Equal(t, "even", out)
	require.True(t, tr.IsAccepting())
}

func TestDFATransducerDeadStaysDead(t *testing.T) {
	tr := evenAs(t).Transducer()

	_, ok := tr.Push("z")
	require.False(t, ok)
	require.False(t, tr.IsAccepting())

	_, ok = tr.Push("a")
	require.False(t, ok)
	_, ok = tr.Current()
	require.False(t, ok)
	_, ok = tr.Output()
	require.False(t, ok)
}

func TestDFATransducerUnmappedState(t *testing.T) {
	tr := NewDFATransducer(evenAs(t), map[string]string{"q0": "even"})

	_, ok := tr.Push("a")
	require.False(t, ok)

	// the cursor still moved, only the output is missing
	cur, ok := tr.Current()
	require.True(t, ok)
	require.Equal(t, "q1", cur)

	out, ok := tr.Push("a")
	require.True(t, ok)
	require.Equal(t, "even", out)
}

func TestDFATransducerDefaultsToFinality(t *testing.T) {
	tr := evenAs(t).Transducer()

	out, ok := tr.Output()
	require.True(t, ok)
	require.True(t, out)

	out, ok = tr.Push("a")
	require.True(t, ok)
	require.False(t, out)
}

func TestDFATransducerReset(t *testing.T) {
	tr := evenAs(t).Transducer()
	tr.Push("z")
	_, ok := tr.Current()
	require.False(t, ok)

	tr.Reset()
	cur, ok := tr.Current()
	require.True(t, ok)
	require.Equal(t, "q0", cur)
	require.True(t, tr.IsAccepting())
}

// ------------------------------------------------------------- NFA

func TestNFATransducerCursor(t *testing.T) {
	tr := aStarBStar(t).Transducer()

	require.True(t, tr.Current().Equal(NewSet("q0", "q1")))
	require.True(t, tr.IsAccepting())

	out := tr.Push("b")
	require.True(t, tr.Current().Equal(NewSet("q1")))
	require.True(t, out.Equal(NewSet(true)))
	require.True(t, tr.IsAccepting())
}

func TestNFATransducerEmptyCursorAbsorbs(t *testing.T) {
	tr := aStarBStar(t).Transducer()

	tr.Push("b")
	out := tr.Push("a")
	require.Equal(t, 0, out.Len())
	require.Equal(t, 0, tr.Current().Len())
	require.False(t, tr.IsAccepting())

	out = tr.Push("a")
	require.Equal(t, 0, out.Len())
	require.False(t, tr.IsAccepting())
}

func TestNFATransducerDefaultOutputs(t *testing.T) {
	// q0 reaches acceptance through its epsilon edge, so the default
	// mapping marks it true as well
	n := aStarBStar(t)
	tr := n.Transducer()
	require.True(t, tr.Outputs().Equal(NewSet(true)))

	tr.Push("a")
	require.True(t, tr.Outputs().Equal(NewSet(true)))
}

func TestNFATransducerCustomOutputs(t *testing.T) {
	tr := NewNFATransducer(aStarBStar(t), map[string]string{"q1": "tail"})

	out := tr.Push("a")
	require.True(t, out.Equal(NewSet("tail")))

	// q0 is unmapped, so only mapped members contribute
	require.True(t, tr.Current().Equal(NewSet("q0", "q1")))
	require.Equal(t, 1, out.Len())
}

func TestNFATransducerCurrentIsACopy(t *testing.T) {
	tr := aStarBStar(t).Transducer()
	cur := tr.Current()
	cur.Remove("q0")
	require.True(t, tr.Current().Equal(NewSet("q0", "q1")))
}

func TestNFATransducerReset(t *testing.T) {
	tr := aStarBStar(t).Transducer()
	tr.Push("b")
	tr.Push("a")
	require.Equal(t, 0, tr.Current().Len())

	tr.Reset()
	require.True(t, tr.Current().Equal(NewSet("q0", "q1")))
	require.True(t, tr.IsAccepting())
}
