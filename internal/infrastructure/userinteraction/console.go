package userinteraction

import (
	"context"
	"fmt"
	"io"
	"strings"

	"newsletter-agent/internal/application/port/output"
	"newsletter-agent/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.PresenterPort = (*ConsolePresenter)(nil)

type ConsolePresenter struct {
	out io.Writer
}

// NewConsolePresenter writes to out, or to color.Output when out is nil.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	if out == nil {
		out = color.Output
	}
	return &ConsolePresenter{out: out}
}

func (p *ConsolePresenter) ShowTopic(ctx context.Context, topic entity.Topic) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(p.out, "=== Topic: %s ===\n\n", topic)
}

func (p *ConsolePresenter) ShowRawNews(ctx context.Context, raw entity.RawNewsText) {
	p.section("[Reporter Output]", string(raw))
}

func (p *ConsolePresenter) ShowNewsletter(ctx context.Context, intro entity.NewsletterIntro) {
	p.section("[Editorial Output]", string(intro))
}

func (p *ConsolePresenter) ShowError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(p.out, "[Error] ")
	fmt.Fprintln(p.out, err.Error())
}

func (p *ConsolePresenter) section(title, body string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintln(p.out, title)
	fmt.Fprintf(p.out, "%s\n\n", strings.TrimRight(body, "\n"))
}
