package store

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/tree"
)

func seeded(values ...int64) *Store {
	s := NewStore()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

func TestFind(t *testing.T) {
	s := seeded(5, 3, 8)

	v, err := s.Find(3)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	_, err = s.Find(7)
	require.Equal(t, ErrNotFound, errors.Cause(err))
	require.EqualError(t, err, "find 7: value not found")
}

func TestParent(t *testing.T) {
	s := seeded(5, 3, 8, 1, 4)

	p, err := s.Parent(4)
	require.NoError(t, err)
	require.Equal(t, int64(3), p)

	_, err = s.Parent(5)
	require.Equal(t, ErrNoParent, errors.Cause(err))

	_, err = s.Parent(9)
	require.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestRemoveAndStats(t *testing.T) {
	s := seeded(5, 3, 8, 1, 4)
	require.Equal(t, Stats{NodeCount: 5, LeavesCount: 3, Height: 3}, s.Stats())

	require.True(t, s.Remove(3))
	require.False(t, s.Remove(3))
	require.Equal(t, Stats{NodeCount: 4, LeavesCount: 2, Height: 3}, s.Stats())
	require.Equal(t, []int64{5, 1, 4, 8}, s.Traverse(tree.PreOrder))
	require.Equal(t, []int64{1, 4, 5, 8}, s.Traverse(tree.InOrder))
	require.Equal(t, []int64{4, 1, 8, 5}, s.Traverse(tree.PostOrder))
}

func TestConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for j := int64(0); j < 100; j++ {
				s.Insert(base*100 + j)
				s.Traverse(tree.InOrder)
			}
		}(int64(i))
	}
	wg.Wait()

	require.Equal(t, 800, s.Stats().NodeCount)
	require.Len(t, s.Traverse(tree.InOrder), 800)
}
