package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypingTracker_Add_Remove(t *testing.T) {
	req := require.New(t)
	tracker := NewTypingTracker()

	// Given an empty set
	req.Empty(tracker.List())

	// When a user starts typing
	req.True(tracker.Add("alice"))
	// Then adding again reports no change
	req.False(tracker.Add("alice"))

	req.True(tracker.Add("bob"))
	req.Equal([]string{"alice", "bob"}, tracker.List())

	// When a user stops typing
	req.True(tracker.Remove("alice"))
	// Then removing again reports no change
	req.False(tracker.Remove("alice"))

	req.Equal([]string{"bob"}, tracker.List())
}

func TestTypingTracker_List_Is_Sorted(t *testing.T) {
	req := require.New(t)
	tracker := NewTypingTracker()

	tracker.Add("zoe")
	tracker.Add("alice")
	tracker.Add("mallory")

	req.Equal([]string{"alice", "mallory", "zoe"}, tracker.List())
}
