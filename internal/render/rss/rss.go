// Package rss renders feeds as RSS 2.0 documents.
package rss

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"

	"github.com/gorilla/feeds"

	"feedstore/internal/domain/entity"
)

const (
	rssVersion       = "2.0"
	contentNamespace = "http://purl.org/rss/1.0/modules/content/"
	enclosureType    = "image/jpeg"
)

// ContentType is the media type of rendered documents.
const ContentType = "application/rss+xml; charset=utf-8"

// CombinedDescription describes the channel that merges every feed.
const CombinedDescription = "Combination of all available feeds"

// Channel describes a synthesized channel that combines the items of several feeds.
type Channel struct {
	Title       string
	Link        string
	Description string
	Language    string
	ImageURL    string
}

// FeedXML renders one feed as a channel, items in stored order.
func FeedXML(f *entity.Feed) ([]byte, error) {
	ch := newChannel(Channel{
		Title:       f.Title,
		Link:        f.Link,
		Description: f.Description,
		Language:    f.Language,
		ImageURL:    f.ImageURL,
	})
	for _, e := range f.Entries {
		ch.Items = append(ch.Items, newItem(e, e.Title))
	}
	return marshal(ch)
}

// CollectionXML renders the entries of all feeds in one channel described by c.
// Item titles are prefixed with "[feed title] " and items are sorted newest
// first; items with equal dates keep feed order.
func CollectionXML(c Channel, fs []*entity.Feed) ([]byte, error) {
	type sourced struct {
		entry entity.FeedEntry
		title string
	}
	var all []sourced
	for _, f := range fs {
		for _, e := range f.Entries {
			all = append(all, sourced{entry: e, title: fmt.Sprintf("[%s] %s", f.Title, e.Title)})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].entry.Published.After(all[j].entry.Published)
	})

	ch := newChannel(c)
	for _, s := range all {
		ch.Items = append(ch.Items, newItem(s.entry, s.title))
	}
	return marshal(ch)
}

func newChannel(c Channel) *feeds.RssFeed {
	lang := c.Language
	if lang == "" {
		lang = entity.DefaultLanguage
	}
	ch := &feeds.RssFeed{
		Title:       c.Title,
		Link:        c.Link,
		Description: c.Description,
		Language:    lang,
		Items:       []*feeds.RssItem{},
	}
	if c.ImageURL != "" {
		ch.Image = &feeds.RssImage{Url: c.ImageURL, Title: c.Title, Link: c.Link}
	}
	return ch
}

func newItem(e entity.FeedEntry, title string) *feeds.RssItem {
	item := &feeds.RssItem{
		Title:       title,
		Link:        e.Link,
		Description: e.Description,
		PubDate:     e.PubDate,
		Guid:        &feeds.RssGuid{Id: e.GUID, IsPermaLink: "false"},
	}
	if e.ImageURL != "" {
		item.Enclosure = &feeds.RssEnclosure{Url: e.ImageURL, Length: "0", Type: enclosureType}
	}
	return item
}

func marshal(ch *feeds.RssFeed) ([]byte, error) {
	doc := &feeds.RssFeedXml{
		Version:          rssVersion,
		ContentNamespace: contentNamespace,
		Channel:          ch,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode rss: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
