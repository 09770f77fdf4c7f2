//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"sockchat/domain"
	"sockchat/errors"
	pb "sockchat/proto/storage"
)

type IUserRepository interface {
	UpsertUser(username string, id domain.ConnectionID) error
	SetStatus(id domain.ConnectionID, status domain.Status, lastSeen *time.Time) error
	OnlineUsers() ([]domain.Session, error)
}

// UserRepository persists presence rows: one record per username plus a
// secondary index from connection id to username, so disconnects (which
// only know the connection) can find their row.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) UserRepository {
	return UserRepository{db: db}
}

// UpsertUser creates or rebinds the record for username and marks it
// online. A previous connection's index entry is replaced, matching the
// session table's last-register-wins semantics.
func (u UserRepository) UpsertUser(username string, id domain.ConnectionID) error {
	record := &pb.UserRecord{
		Username:     username,
		ConnectionId: string(id),
		Status:       string(domain.StatusOnline),
	}
	data, err := proto.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err == nil {
			// Drop the stale connection index before rebinding.
			var previous pb.UserRecord
			err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &previous)
			})
			if err != nil {
				return err
			}
			if previous.ConnectionId != "" && previous.ConnectionId != string(id) {
				if err = txn.Delete(connKey(domain.ConnectionID(previous.ConnectionId))); err != nil {
					return err
				}
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err = txn.Set(userKey(username), data); err != nil {
			return err
		}
		return txn.Set(connKey(id), []byte(username))
	})
}

// SetStatus updates the presence row owned by this connection. The
// connection index resolves the username; an unknown connection means the
// row was already rebound elsewhere and is reported as such.
func (u UserRepository) SetStatus(id domain.ConnectionID, status domain.Status, lastSeen *time.Time) error {
	return u.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(connKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrUnknownConnection
		}
		if err != nil {
			return err
		}
		var username string
		err = item.Value(func(val []byte) error {
			username = string(val)
			return nil
		})
		if err != nil {
			return err
		}

		item, err = txn.Get(userKey(username))
		if err != nil {
			return err
		}
		var record pb.UserRecord
		err = item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &record)
		})
		if err != nil {
			return err
		}

		record.Status = string(status)
		record.LastSeen = 0
		if lastSeen != nil {
			record.LastSeen = lastSeen.UnixNano()
		}
		data, err := proto.Marshal(&record)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(userKey(username), data)
	})
}

// OnlineUsers scans every presence row and returns those still marked
// online. Used at boot to sweep liveness left behind by a crash.
func (u UserRepository) OnlineUsers() ([]domain.Session, error) {
	var records []*pb.UserRecord
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record pb.UserRecord
				if err := proto.Unmarshal(val, &record); err != nil {
					return err
				}
				if record.Status == string(domain.StatusOnline) {
					records = append(records, &record)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(records, func(record *pb.UserRecord, _ int) domain.Session {
		return toSession(record)
	}), nil
}

func toSession(record *pb.UserRecord) domain.Session {
	s := domain.Session{
		Username:     record.Username,
		ConnectionID: domain.ConnectionID(record.ConnectionId),
		Status:       domain.Status(record.Status),
	}
	if record.LastSeen != 0 {
		s.LastSeen = lo.ToPtr(time.Unix(0, record.LastSeen).UTC())
	}
	return s
}

func userKey(username string) []byte {
	return []byte("user:" + username)
}

func connKey(id domain.ConnectionID) []byte {
	return []byte("conn:" + string(id))
}
