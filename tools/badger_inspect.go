package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "sockchat/proto/storage"
)

// Offline inspector for the chat database. Opens the store read-only so it
// can run next to a live server process.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "pub:", "Prefix to scan (pub:, priv:, user:, conn:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Time", "From", "To", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				row, ok := describe(rawKey, v)
				if !ok {
					fmt.Printf("Error unmarshaling key %s\n", rawKey)
					return nil
				}
				table.Append(row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// describe decodes one record according to its key namespace.
func describe(key string, value []byte) ([]string, bool) {
	switch {
	case strings.HasPrefix(key, "pub:"):
		var p pb.Message
		if err := proto.Unmarshal(value, &p); err != nil {
			return nil, false
		}
		return []string{key, "PUBLIC", formatNanos(p.At), p.Username, "", truncate(p.Content)}, true
	case strings.HasPrefix(key, "priv:"):
		var p pb.PrivateMessage
		if err := proto.Unmarshal(value, &p); err != nil {
			return nil, false
		}
		return []string{key, "PRIVATE", formatNanos(p.At), p.Sender, p.Receiver, truncate(p.Content)}, true
	case strings.HasPrefix(key, "user:"):
		var p pb.UserRecord
		if err := proto.Unmarshal(value, &p); err != nil {
			return nil, false
		}
		lastSeen := ""
		if p.LastSeen > 0 {
			lastSeen = formatNanos(p.LastSeen)
		}
		detail := fmt.Sprintf("%s conn=%s", p.Status, shortID(p.ConnectionId))
		return []string{key, "USER", lastSeen, p.Username, "", detail}, true
	case strings.HasPrefix(key, "conn:"):
		return []string{key, "INDEX", "", "", "", string(value)}, true
	default:
		return []string{key, "?", "", "", "", ""}, true
	}
}

func formatNanos(at int64) string {
	return time.Unix(0, at).UTC().Format("15:04:05")
}

func truncate(content string) string {
	if len(content) > 60 {
		return content[:60] + "..."
	}
	return content
}

// shortID keeps the first 8 characters of a connection id for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// Badger sometimes requires a writable open to truncate a torn log
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
