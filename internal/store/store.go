package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/tree"
)

var (
	ErrNotFound = errors.New("value not found")
	ErrNoParent = errors.New("value has no parent")
)

type Stats struct {
	NodeCount   int `json:"nodeCount"`
	LeavesCount int `json:"leavesCount"`
	Height      int `json:"height"`
}

// Store serializes access to a tree shared by concurrent callers. Node
// pointers never leave the lock; callers only see copied values.
type Store struct {
	tree  tree.Tree[int64]
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		tree: tree.New[int64](),
	}
}

func (s *Store) Insert(value int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tree.Insert(value)
}

func (s *Store) Remove(value int64) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.tree.Remove(value)
}

func (s *Store) Find(value int64) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := s.tree.Find(value)
	if n == nil {
		return 0, errors.Wrapf(ErrNotFound, "find %d", value)
	}
	return n.Data(), nil
}

// Parent returns the value held by the parent of the node Find(value)
// would return.
func (s *Store) Parent(value int64) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	n := s.tree.Find(value)
	if n == nil {
		return 0, errors.Wrapf(ErrNotFound, "parent of %d", value)
	}
	p := s.tree.FindParent(n)
	if p == nil {
		return 0, errors.Wrapf(ErrNoParent, "parent of %d", value)
	}
	return p.Data(), nil
}

func (s *Store) Traverse(order tree.Order) []int64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tree.Values(order)
}

func (s *Store) Stats() Stats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return Stats{
		NodeCount:   s.tree.NodeCount(),
		LeavesCount: s.tree.LeavesCount(),
		Height:      s.tree.Height(),
	}
}
