package entity

import (
	"fmt"
	"strings"
)

const DefaultNewsCount = 3

// Headlines is the fixed vocabulary synthetic news items draw from.
var Headlines = []string{
	"Market rises",
	"Market falls",
	"AI breakthrough",
	"Tech trend",
}

type Topic string

func NewTopic(s string) (Topic, error) {
	t := Topic(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Topic) Validate() error {
	if strings.TrimSpace(string(t)) == "" {
		return ErrInvalidTopic
	}
	return nil
}

func (t Topic) String() string {
	return string(t)
}

type NewsItem struct {
	Topic    Topic
	Index    int
	Headline string
}

func (n NewsItem) String() string {
	return fmt.Sprintf("%s news update #%d: %s", n.Topic, n.Index, n.Headline)
}

// NewsBatch keeps items in generation order.
type NewsBatch []NewsItem

func (b NewsBatch) Lines() []string {
	lines := make([]string, 0, len(b))
	for _, item := range b {
		lines = append(lines, item.String())
	}
	return lines
}

func (b NewsBatch) Render() RawNewsText {
	return RawNewsText(strings.Join(b.Lines(), "\n"))
}

type RawNewsText string

type NewsletterIntro string
