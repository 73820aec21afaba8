package notification

import (
	"github.com/stretchr/testify/suite"
	"sync"
	"testing"
	"time"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreSuite) SetupTest() {
	store, err := New()
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.store.Close()
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func ids(notifications []Notification) []uint64 {
	res := make([]uint64, 0, len(notifications))
	for _, obj := range notifications {
		res = append(res, obj.ID)
	}
	return res
}

func (s *StoreSuite) TestAddKeepsInsertionOrder() {
	var added []uint64
	for _, msg := range []string{"c", "a", "b", "d"} {
		added = append(added, s.store.Add(msg, SeverityInfo, 0))
	}

	s.Equal([]uint64{1, 2, 3, 4}, added)
	snapshot := s.store.Snapshot()
	s.Equal(added, ids(snapshot))
	s.Equal("c", snapshot[0].Message)
	s.Equal("d", snapshot[3].Message)
}

func (s *StoreSuite) TestShortcutsUseSeverities() {
	s.store.Success("saved")
	s.store.Error("failed")
	s.store.Warning("careful")
	s.store.Info("fyi")

	snapshot := s.store.Snapshot()
	s.Require().Len(snapshot, 4)
	s.Equal(SeveritySuccess, snapshot[0].Severity)
	s.Equal(SeverityDanger, snapshot[1].Severity)
	s.Equal(SeverityWarning, snapshot[2].Severity)
	s.Equal(SeverityInfo, snapshot[3].Severity)
	s.store.Clear()
}

func (s *StoreSuite) TestRemoveIsIdempotent() {
	first := s.store.Add("first", SeverityInfo, 0)
	second := s.store.Add("second", SeverityInfo, 0)

	s.store.Remove(first)
	s.store.Remove(first)
	s.store.Remove(9999)

	s.Equal([]uint64{second}, ids(s.store.Snapshot()))
}

func (s *StoreSuite) TestRemoveFromSubscriber() {
	var mtx sync.Mutex
	var seen [][]uint64
	defer s.store.Subscribe(func(notifications []Notification) {
		mtx.Lock()
		seen = append(seen, ids(notifications))
		mtx.Unlock()
		for _, obj := range notifications {
			if obj.Severity == SeverityDanger {
				s.store.Remove(obj.ID)
			}
		}
	})()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.store.Info("kept")
		s.store.Error("dismissed right away")
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.FailNow("adding a notification did not return")
	}

	s.Equal([]uint64{1}, ids(s.store.Snapshot()))
	mtx.Lock()
	defer mtx.Unlock()
	s.Equal([][]uint64{{}, {1}, {1, 2}, {1}}, seen)
}

func (s *StoreSuite) TestExpiry() {
	s.Run("removes notification after its timeout", func() {
		id := s.store.Add("short lived", SeverityInfo, 20*time.Millisecond)
		kept := s.store.Add("kept", SeverityInfo, 0)
		s.Contains(ids(s.store.Snapshot()), id)

		s.Eventually(func() bool {
			return len(s.store.Snapshot()) == 1
		}, time.Second, 5*time.Millisecond)
		s.Equal([]uint64{kept}, ids(s.store.Snapshot()))

		// removing after expiry must not affect others
		s.store.Remove(id)
		s.Equal([]uint64{kept}, ids(s.store.Snapshot()))
	})

	s.Run("manual removal cancels the pending expiry", func() {
		id := s.store.Add("dismissed", SeverityInfo, 20*time.Millisecond)
		s.store.Remove(id)

		_, pending := s.store.timers.Lookup(id)
		s.False(pending)
	})
}

func (s *StoreSuite) TestClear() {
	s.store.Add("a", SeverityInfo, time.Hour)
	s.store.Add("b", SeverityInfo, 0)

	s.store.Clear()
	s.Empty(s.store.Snapshot())

	s.Zero(s.store.timers.Size())

	next := s.store.Add("c", SeverityInfo, 0)
	s.Equal(uint64(3), next, "IDs keep increasing after a clear")
}

func (s *StoreSuite) TestSubscribe() {
	var mtx sync.Mutex
	var seen [][]uint64
	unsubscribe := s.store.Subscribe(func(notifications []Notification) {
		mtx.Lock()
		defer mtx.Unlock()
		seen = append(seen, ids(notifications))
	})
	defer unsubscribe()

	first := s.store.Add("a", SeverityInfo, 0)
	second := s.store.Add("b", SeverityInfo, 0)
	s.store.Remove(first)
	s.store.Remove(first)

	mtx.Lock()
	defer mtx.Unlock()
	s.Equal([][]uint64{
		{},
		{first},
		{first, second},
		{second},
	}, seen)
}
