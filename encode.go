package backoffice

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The store snapshot is a JSONL stream, one record per line, each line
// carrying a "record" discriminator. The format is human-readable and
// diff-friendly; it is the only way state leaves the process.

type recordType string

const (
	recSettings recordType = "settings"
	recAccounts recordType = "accounts"
	recClient   recordType = "client"
	recUser     recordType = "user"
	recStock    recordType = "stock"
	recNews     recordType = "news"
	recCash     recordType = "cash"
	recEntry    recordType = "entry"
	recAboutUs  recordType = "aboutus"
)

// encodeRecord writes one snapshot line: the discriminator followed by
// the record's own fields, flattened.
func encodeRecord(w io.Writer, kind recordType, v any) error {
	var ow jsonObjectWriter
	ow.Append("record", kind)
	ow.EmbedFrom(v)
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal %s record: %w", kind, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write %s record: %w", kind, err)
	}
	return nil
}

// EncodeStore writes the whole store, trashed records included, as a
// JSONL snapshot.
func EncodeStore(w io.Writer, s *Store) error {
	if err := encodeRecord(w, recSettings, s.settings); err != nil {
		return err
	}
	if err := encodeRecord(w, recAccounts, s.accounts); err != nil {
		return err
	}
	for _, c := range s.clients {
		if err := encodeRecord(w, recClient, c); err != nil {
			return err
		}
	}
	for _, u := range s.users {
		if err := encodeRecord(w, recUser, u); err != nil {
			return err
		}
	}
	for _, st := range s.stocks {
		if err := encodeRecord(w, recStock, st); err != nil {
			return err
		}
	}
	for _, n := range s.news {
		if err := encodeRecord(w, recNews, n); err != nil {
			return err
		}
	}
	for _, t := range s.cashbook {
		if err := encodeRecord(w, recCash, t); err != nil {
			return err
		}
	}
	for _, e := range s.ledger.profitAndLoss {
		if err := encodeRecord(w, recEntry, e); err != nil {
			return err
		}
	}
	for _, e := range s.ledger.balanceSheet {
		if err := encodeRecord(w, recEntry, e); err != nil {
			return err
		}
	}
	return encodeRecord(w, recAboutUs, s.aboutUs)
}

// DecodeStore reads a JSONL snapshot back into a fresh store. Nobody
// is logged in on the decoded store.
func DecodeStore(r io.Reader) (*Store, error) {
	s := NewStore()
	scanner := bufio.NewScanner(r)
	// Snapshot lines with large data URLs can exceed the default limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Record recordType `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(lineBytes), err)
		}

		var err error
		switch identifier.Record {
		case recSettings:
			err = json.Unmarshal(lineBytes, &s.settings)
		case recAccounts:
			err = json.Unmarshal(lineBytes, &s.accounts)
		case recClient:
			var c Client
			if err = json.Unmarshal(lineBytes, &c); err == nil {
				s.clients = append(s.clients, c)
			}
		case recUser:
			var u User
			if err = json.Unmarshal(lineBytes, &u); err == nil {
				s.users = append(s.users, u)
			}
		case recStock:
			var st Stock
			if err = json.Unmarshal(lineBytes, &st); err == nil {
				s.stocks = append(s.stocks, st)
			}
		case recNews:
			var n NewsItem
			if err = json.Unmarshal(lineBytes, &n); err == nil {
				s.news = append(s.news, n)
			}
		case recCash:
			var t CashTransaction
			if err = json.Unmarshal(lineBytes, &t); err == nil {
				s.cashbook = append(s.cashbook, t)
			}
		case recEntry:
			var e Entry
			if err = json.Unmarshal(lineBytes, &e); err == nil {
				s.ledger.Load(e)
			}
		case recAboutUs:
			err = json.Unmarshal(lineBytes, &s.aboutUs)
		default:
			err = fmt.Errorf("unknown record type: %q", identifier.Record)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}
	return s, nil
}
