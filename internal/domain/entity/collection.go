package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection is the ordered set of all feeds, keyed by FeedID.
// Iteration order is insertion order. A Collection is not safe for
// concurrent use; the feed store guards it.
type Collection struct {
	order []string
	feeds map[string]*Feed
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{feeds: make(map[string]*Feed)}
}

// Len returns the number of feeds.
func (c *Collection) Len() int { return len(c.order) }

// Get returns the feed stored under id.
func (c *Collection) Get(id string) (*Feed, bool) {
	f, ok := c.feeds[id]
	return f, ok
}

// Put stores f under f.FeedID. A new ID is appended to the iteration order;
// an existing one keeps its position.
func (c *Collection) Put(f *Feed) {
	if c.feeds == nil {
		c.feeds = make(map[string]*Feed)
	}
	if _, ok := c.feeds[f.FeedID]; !ok {
		c.order = append(c.order, f.FeedID)
	}
	c.feeds[f.FeedID] = f
}

// Delete removes the feed stored under id and reports whether it existed.
func (c *Collection) Delete(id string) bool {
	if _, ok := c.feeds[id]; !ok {
		return false
	}
	delete(c.feeds, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Feeds returns the stored feeds in iteration order. The pointers are shared
// with the collection.
func (c *Collection) Feeds() []*Feed {
	out := make([]*Feed, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.feeds[id])
	}
	return out
}

// EntryCount returns the total number of entries across all feeds.
func (c *Collection) EntryCount() int {
	n := 0
	for _, f := range c.feeds {
		n += len(f.Entries)
	}
	return n
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	out := NewCollection()
	for _, f := range c.Feeds() {
		out.Put(f.Clone())
	}
	return out
}

// MarshalJSON encodes the collection as a JSON object keyed by feed ID,
// with keys in iteration order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, id := range c.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(id); err != nil {
			return nil, fmt.Errorf("encode feed id: %w", err)
		}
		buf.WriteByte(':')
		f := c.feeds[id]
		if f.Entries == nil {
			nf := *f
			nf.Entries = []FeedEntry{}
			f = &nf
		}
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("encode feed %s: %w", id, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either the keyed-object form written by MarshalJSON
// or a plain array of feeds. Object key order becomes iteration order, and
// the object key wins over a missing or mismatched feedId field.
// A null feed, a blank required field or a missing or repeated entry GUID
// fails the whole decode.
func (c *Collection) UnmarshalJSON(data []byte) error {
	*c = Collection{feeds: make(map[string]*Feed)}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case json.Delim('['):
		for dec.More() {
			f, err := decodeStoredFeed(dec, "")
			if err != nil {
				return err
			}
			c.Put(f)
		}
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, ok := keyTok.(string)
			if !ok {
				return fmt.Errorf("unexpected key token %v", keyTok)
			}
			f, err := decodeStoredFeed(dec, key)
			if err != nil {
				return fmt.Errorf("feed %s: %w", key, err)
			}
			c.Put(f)
		}
	default:
		return fmt.Errorf("unexpected token %v: want object or array", tok)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeStoredFeed reads the next feed from dec. A non-empty key overrides feedId.
func decodeStoredFeed(dec *json.Decoder, key string) (*Feed, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, errors.New("feed is null")
	}

	var f Feed
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if key != "" {
		f.FeedID = key
	}
	if f.FeedID == "" {
		return nil, errors.New("feed without feedId")
	}
	if err := f.checkStored(); err != nil {
		return nil, err
	}
	return &f, nil
}
