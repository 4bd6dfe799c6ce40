package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of publication dates.
const DateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Tutorial struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       Level  `json:"level"`
	Duration    string `json:"duration"`
	Author      string `json:"author"`
	Date        Date   `json:"date"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
}

func (t Tutorial) Facets() Facets {
	return Facets{Title: t.Title, Description: t.Description, Category: t.Category, Level: t.Level}
}

func (t Tutorial) InBucket(b Bucket) bool {
	switch b {
	case BucketAll:
		return true
	case BucketFeatured:
		return t.Featured
	}
	return false
}

type TutorialListResponse struct {
	Tutorials  []Tutorial     `json:"tutorials"`
	Total      int            `json:"total"`
	Categories []string       `json:"categories"`
	Levels     []Level        `json:"levels"`
	Filters    FilterResponse `json:"filters"`
}
