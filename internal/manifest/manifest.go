// Package manifest renders the outcome of startup registration as an HCL
// document, one `registered` block per key:
//
//	registered "mymod:redwidget" {
//	  registrar = "widgets.Widgets"
//	  member    = "RedWidget"
//	  kind      = "*widgets.Widget"
//	}
package manifest

import (
	"context"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/meta"
)

// Entry describes one registered pair.
type Entry struct {
	Key       string
	Registrar string
	Member    string
	Kind      string
}

// Recorder collects entries from member registration events.
type Recorder struct {
	entries []Entry
}

// MemberRegistered is a hooks.MemberFunc.
func (r *Recorder) MemberRegistered(_ context.Context, e hooks.MemberEvent) error {
	r.entries = append(r.entries, Entry{
		Key:       e.Key,
		Registrar: meta.TypeName(e.Registrar),
		Member:    e.Member.Name,
		Kind:      meta.TypeName(e.Kind),
	})
	return nil
}

// Entries returns the recorded entries in registration order.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Render builds the manifest document.
func Render(entries []Entry) *hclwrite.File {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, e := range entries {
		if i > 0 {
			body.AppendNewline()
		}
		blk := body.AppendNewBlock("registered", []string{e.Key}).Body()
		blk.SetAttributeValue("registrar", cty.StringVal(e.Registrar))
		blk.SetAttributeValue("member", cty.StringVal(e.Member))
		blk.SetAttributeValue("kind", cty.StringVal(e.Kind))
	}
	return f
}

// Write renders entries to w.
func Write(w io.Writer, entries []Entry) error {
	_, err := Render(entries).WriteTo(w)
	return err
}
