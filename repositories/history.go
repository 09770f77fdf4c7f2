//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"sockchat/domain"
	pb "sockchat/proto/storage"
)

type IHistoryRepository interface {
	AppendPublic(username, content string, at time.Time) (domain.Message, error)
	AppendPrivate(sender, receiver, content string, at time.Time) (domain.PrivateMessage, error)
	RecentPublic(limit int) ([]domain.Message, error)
	RecentPrivate(userA, userB string, limit int) ([]domain.PrivateMessage, error)
}

// HistoryRepository is the append-only log of public and private messages,
// persisted in BadgerDB with protobuf-encoded values.
type HistoryRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger) HistoryRepository {
	return HistoryRepository{db: db, log: log}
}

// AppendPublic persists a public message and returns the stored record.
// The key is formatted as "pub:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func (h HistoryRepository) AppendPublic(username, content string, at time.Time) (domain.Message, error) {
	msg := domain.Message{
		ID:       uuid.New(),
		Username: username,
		Content:  content,
		At:       at.UTC(),
	}
	key := fmt.Sprintf("pub:%019d:%s", msg.At.UnixNano(), msg.ID)
	bytes, err := proto.Marshal(lo.ToPtr(fromMessage(msg)))
	if err != nil {
		return domain.Message{}, err
	}
	err = h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	return msg, err
}

// AppendPrivate persists a direct message under the sorted username pair so
// both directions of a conversation share a single key range.
func (h HistoryRepository) AppendPrivate(sender, receiver, content string, at time.Time) (domain.PrivateMessage, error) {
	msg := domain.PrivateMessage{
		ID:       uuid.New(),
		Sender:   sender,
		Receiver: receiver,
		Content:  content,
		At:       at.UTC(),
	}
	key := fmt.Sprintf("priv:%s:%019d:%s", pairKey(sender, receiver), msg.At.UnixNano(), msg.ID)
	bytes, err := proto.Marshal(lo.ToPtr(fromPrivateMessage(msg)))
	if err != nil {
		return domain.PrivateMessage{}, err
	}
	err = h.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	return msg, err
}

// RecentPublic returns up to limit most recent public messages, oldest
// first, ready to be delivered as a history snapshot.
func (h HistoryRepository) RecentPublic(limit int) ([]domain.Message, error) {
	values, err := h.recentValues("pub:", limit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(values))
	for _, b := range values {
		var messagePb pb.Message
		if err = proto.Unmarshal(b, &messagePb); err != nil {
			return nil, err
		}
		msg, err := toMessage(&messagePb)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return lo.Reverse(messages), nil
}

// RecentPrivate returns up to limit most recent direct messages between the
// two usernames, in either direction, oldest first.
func (h HistoryRepository) RecentPrivate(userA, userB string, limit int) ([]domain.PrivateMessage, error) {
	values, err := h.recentValues(fmt.Sprintf("priv:%s:", pairKey(userA, userB)), limit)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.PrivateMessage, 0, len(values))
	for _, b := range values {
		var messagePb pb.PrivateMessage
		if err = proto.Unmarshal(b, &messagePb); err != nil {
			return nil, err
		}
		msg, err := toPrivateMessage(&messagePb)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return lo.Reverse(messages), nil
}

// recentValues scans a prefix backwards from its newest key. Thanks to the
// padded timestamps the reverse iterator yields newest-first; callers flip
// the order once decoded.
func (h HistoryRepository) recentValues(prefixStr string, limit int) ([][]byte, error) {
	var values [][]byte
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Seek past the newest possible key of this prefix, then walk back.
		seekKey := append([]byte(prefixStr), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(values) == limit {
				h.log.Debug(fmt.Sprintf("Maximum of %d messages reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				values = append(values, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return values, err
}

// pairKey builds the order-independent conversation key for two usernames.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

func fromMessage(msg domain.Message) pb.Message {
	return pb.Message{
		Id:       msg.ID.String(),
		Username: msg.Username,
		Content:  msg.Content,
		At:       msg.At.UnixNano(),
	}
}

func toMessage(messagePb *pb.Message) (domain.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:       parsedID,
		Username: messagePb.Username,
		Content:  messagePb.Content,
		At:       time.Unix(0, messagePb.At).UTC(),
	}, nil
}

func fromPrivateMessage(msg domain.PrivateMessage) pb.PrivateMessage {
	return pb.PrivateMessage{
		Id:       msg.ID.String(),
		Sender:   msg.Sender,
		Receiver: msg.Receiver,
		Content:  msg.Content,
		At:       msg.At.UnixNano(),
	}
}

func toPrivateMessage(messagePb *pb.PrivateMessage) (domain.PrivateMessage, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.PrivateMessage{}, err
	}
	return domain.PrivateMessage{
		ID:       parsedID,
		Sender:   messagePb.Sender,
		Receiver: messagePb.Receiver,
		Content:  messagePb.Content,
		At:       time.Unix(0, messagePb.At).UTC(),
	}, nil
}
