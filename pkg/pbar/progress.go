package pbar

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Container struct {
	p     *mpb.Progress
	out   io.Writer
	quiet bool
}

func NewContainer(out io.Writer, quiet bool) *Container {
	return &Container{
		out:   out,
		quiet: quiet,
	}
}

func (c *Container) ensureProgress() {
	if c.p == nil {
		c.p = mpb.New(mpb.WithOutput(c.out))
	}
}

// NewBar adds a counting bar. A total of 0 makes an open-ended bar that
// completes when Done is called.
func (c *Container) NewBar(total int64, name string) Bar {
	if c.quiet {
		return &noopBar{}
	}
	c.ensureProgress()
	options := []mpb.BarOption{
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.Counters(0, "%d / %d"),
		),
		mpb.BarRemoveOnComplete(),
	}
	if total > 0 {
		options = append(options,
			mpb.AppendDecorators(decor.Percentage(decor.WC{W: 5, C: decor.DidentRight}), decor.Elapsed(decor.ET_STYLE_GO)),
		)
	} else {
		options = append(options,
			mpb.AppendDecorators(decor.Elapsed(decor.ET_STYLE_GO)),
		)
	}
	b := c.p.New(total,
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
		options...,
	)
	b.EnableTriggerComplete()
	return &bar{b: b, total: total}
}

func (c *Container) Wait() {
	if c.p == nil {
		return
	}
	c.p.Wait()
	c.p = nil
}
