package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-container/cli"
	"gopkg.in/yaml.v3"
)

const bannerWidth = 40

// Run builds the report for cfg and writes it to out in cfg.Format.
func Run(ctx context.Context, cfg Config, out io.Writer, opts ...Option) error {
	rpt, err := Build(ctx, cfg, opts...)
	if err != nil {
		return err
	}

	return Render(out, rpt, cfg.Format)
}

// Render writes rpt to out.
func Render(out io.Writer, rpt *Report, format Format) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(out, renderText(rpt))

		return err
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		return enc.Encode(rpt)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2) //nolint:mnd

		if err := enc.Encode(rpt); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(rpt *Report) string {
	var sb strings.Builder

	sb.WriteString(cli.Banner(fmt.Sprintf("Container of %s", rpt.Type), bannerWidth, cli.AlignCenter))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Size of container: %d\n", rpt.Size)
	writeSections(&sb, "", rpt.Views)

	if rm := rpt.Removal; rm != nil {
		if !rm.Found {
			fmt.Fprintf(&sb, "%s not found, size of container: %d\n", rm.Value, rm.Size)
		} else {
			fmt.Fprintf(&sb, "After removing %s, size of container: %d\n", rm.Value, rm.Size)
			writeSections(&sb, "Updated ", rm.Views)
		}
	}

	return sb.String()
}

func writeSections(sb *strings.Builder, prefix string, views []Section) {
	for _, sec := range views {
		sb.WriteString(prefix)
		sb.WriteString(titleOf(sec.order))
		sb.WriteString(": ")

		for _, elem := range sec.Elements {
			sb.WriteString(elem)
			sb.WriteByte(' ')
		}

		sb.WriteByte('\n')
	}
}
