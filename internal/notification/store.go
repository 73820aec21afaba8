package notification

import (
	"github.com/hashicorp/go-memdb"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/observable"
	"github.com/skybi/asset-manager/internal/task"
	"github.com/skybi/asset-manager/internal/threadsafe"
	"sync/atomic"
	"time"
)

const tableNotifications = "notifications"

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tableNotifications: {
			Name: tableNotifications,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.UintFieldIndex{Field: "ID"},
				},
			},
		},
	},
}

// Store keeps the ordered sequence of active notifications.
// Notifications are ordered by their ID which equals their insertion order.
type Store struct {
	db     *memdb.MemDB
	lastID atomic.Uint64
	state  *observable.Value[[]Notification]

	timers *threadsafe.Map[uint64, *task.DelayedTask]
}

// New creates a new empty notification store
func New() (*Store, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		state:  observable.New([]Notification{}),
		timers: threadsafe.NewMap[uint64, *task.DelayedTask](),
	}, nil
}

// Add appends a new notification and returns its ID.
// If timeout is greater than zero, the notification gets removed automatically after it has passed.
func (store *Store) Add(message string, severity Severity, timeout time.Duration) uint64 {
	id := store.lastID.Add(1)
	obj := &Notification{
		ID:       id,
		Message:  message,
		Severity: severity,
	}

	store.state.Update(func(current []Notification) []Notification {
		txn := store.db.Txn(true)
		defer txn.Abort()
		if err := txn.Insert(tableNotifications, obj); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("could not insert notification")
			return current
		}
		txn.Commit()
		return store.snapshot()
	})

	if timeout > 0 {
		store.schedule(id, timeout)
	}
	return id
}

// Success adds a success notification using DefaultSuccessTimeout
func (store *Store) Success(message string) uint64 {
	return store.Add(message, SeveritySuccess, DefaultSuccessTimeout)
}

// Error adds a danger notification using DefaultErrorTimeout
func (store *Store) Error(message string) uint64 {
	return store.Add(message, SeverityDanger, DefaultErrorTimeout)
}

// Warning adds a warning notification using DefaultWarningTimeout
func (store *Store) Warning(message string) uint64 {
	return store.Add(message, SeverityWarning, DefaultWarningTimeout)
}

// Info adds an info notification using DefaultInfoTimeout
func (store *Store) Info(message string) uint64 {
	return store.Add(message, SeverityInfo, DefaultInfoTimeout)
}

// Remove removes the notification with the given ID and cancels its expiry.
// Removing an unknown or already removed notification is a no-op.
func (store *Store) Remove(id uint64) {
	if timer, ok := store.timers.Take(id); ok {
		timer.Cancel()
	}

	store.delete(id)
}

// Clear removes all notifications and cancels all pending expiries
func (store *Store) Clear() {
	store.cancelTimers()

	store.state.Update(func([]Notification) []Notification {
		txn := store.db.Txn(true)
		defer txn.Abort()
		if _, err := txn.DeleteAll(tableNotifications, "id"); err != nil {
			log.Error().Err(err).Msg("could not clear notifications")
			return store.snapshot()
		}
		txn.Commit()
		return []Notification{}
	})
}

// Snapshot returns the current sequence of notifications
func (store *Store) Snapshot() []Notification {
	return store.state.Get()
}

// Subscribe registers fn to receive the full sequence of notifications on every change.
// fn is called immediately with the current sequence.
func (store *Store) Subscribe(fn func([]Notification)) (unsubscribe func()) {
	return store.state.Subscribe(fn)
}

// Close cancels all pending expiries.
// The notifications themselves are kept.
func (store *Store) Close() {
	store.cancelTimers()
}

func (store *Store) schedule(id uint64, timeout time.Duration) {
	timer := task.NewDelayed(func() {
		store.expire(id)
	}, timeout)

	store.timers.Set(id, timer)

	timer.Start()
}

func (store *Store) expire(id uint64) {
	store.timers.Take(id)

	log.Debug().Uint64("id", id).Msg("notification expired")
	store.delete(id)
}

func (store *Store) delete(id uint64) {
	store.state.UpdateIf(func(current []Notification) ([]Notification, bool) {
		txn := store.db.Txn(true)
		defer txn.Abort()
		obj, err := txn.First(tableNotifications, "id", id)
		if err != nil || obj == nil {
			return current, false
		}
		if err := txn.Delete(tableNotifications, obj); err != nil {
			log.Error().Err(err).Uint64("id", id).Msg("could not remove notification")
			return current, false
		}
		txn.Commit()
		return store.snapshot(), true
	})
}

func (store *Store) cancelTimers() {
	for _, timer := range store.timers.Drain() {
		timer.Cancel()
	}
}

// snapshot reads the committed notifications in ID order
func (store *Store) snapshot() []Notification {
	txn := store.db.Txn(false)
	it, err := txn.Get(tableNotifications, "id")
	if err != nil {
		log.Error().Err(err).Msg("could not read notifications")
		return []Notification{}
	}
	notifications := []Notification{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		notifications = append(notifications, *obj.(*Notification))
	}
	return notifications
}
