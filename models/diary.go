// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DefaultCategoryColor is applied to categories created without a color.
const DefaultCategoryColor = "#607D8B"

// Diary is the per-account document holding categories and entries.
//
// NextCategoryID and NextEntryID are monotonically increasing counters: an id
// is never reissued within one document, even after the item is deleted.
type Diary struct {
	Categories     []Category `json:"categories"`
	Entries        []Entry    `json:"entries"`
	NextCategoryID int64      `json:"nextCategoryId"`
	NextEntryID    int64      `json:"nextEntryId"`
}

// Category is a named grouping entries are filed under.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// Entry is a titled, timestamped piece of free text filed under one category.
type Entry struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID int64      `json:"categoryId"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// NewDiary returns the document every account starts with: six seeded
// categories and no entries.
func NewDiary() Diary {
	return Diary{
		Categories: []Category{
			{ID: 1, Name: "Education", Color: "#607D8B", Emoji: "🎓"},
			{ID: 2, Name: "Friends", Color: "#4CAF50", Emoji: "👥"},
			{ID: 3, Name: "Future", Color: "#2196F3", Emoji: "🚀"},
			{ID: 4, Name: "Wishes", Color: "#FF9800", Emoji: "⭐"},
			{ID: 5, Name: "Clothes", Color: "#E91E63", Emoji: "👕"},
			{ID: 6, Name: "Love", Color: "#9C27B0", Emoji: "💖"},
		},
		Entries:        []Entry{},
		NextCategoryID: 7,
		NextEntryID:    1,
	}
}

// Normalize repairs documents written by older tools: nil slices become
// empty ones and counters are moved past the highest id in use.
func (d *Diary) Normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	if d.Entries == nil {
		d.Entries = []Entry{}
	}

	for _, c := range d.Categories {
		if c.ID >= d.NextCategoryID {
			d.NextCategoryID = c.ID + 1
		}
	}
	for _, e := range d.Entries {
		if e.ID >= d.NextEntryID {
			d.NextEntryID = e.ID + 1
		}
	}
}

// FindCategory returns the index of the category with the given id or -1.
func (d *Diary) FindCategory(id int64) int {
	for i, c := range d.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// FindCategoryByName looks a category up by name, ignoring case.
func (d *Diary) FindCategoryByName(name string) int {
	for i, c := range d.Categories {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return -1
}

// FindEntry returns the index of the entry with the given id or -1.
func (d *Diary) FindEntry(id int64) int {
	for i, e := range d.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// EntriesInCategory returns the entries filed under categoryID, in document order.
func (d *Diary) EntriesInCategory(categoryID int64) []Entry {
	entries := make([]Entry, 0)
	for _, e := range d.Entries {
		if e.CategoryID == categoryID {
			entries = append(entries, e)
		}
	}
	return entries
}
