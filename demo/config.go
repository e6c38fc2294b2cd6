package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/envutil"
	commonerrors "github.com/amp-labs/amp-container/errors"
)

var (
	ErrUnknownType   = errors.New("unknown element type")
	ErrUnknownFormat = errors.New("unknown output format")
)

// ElementType selects how element strings are parsed and ordered.
type ElementType string

const (
	TypeInt     ElementType = "int"
	TypeString  ElementType = "string"
	TypeNatural ElementType = "natural"
)

// Format selects how the report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Config keys.
const (
	KeyConfigFile  = "ORDERDEMO_CONFIG"
	KeyElements    = "ORDERDEMO_ELEMENTS"
	KeyType        = "ORDERDEMO_TYPE"
	KeyRemove      = "ORDERDEMO_REMOVE"
	KeyOrders      = "ORDERDEMO_ORDERS"
	KeyFormat      = "ORDERDEMO_FORMAT"
	KeyInteractive = "ORDERDEMO_INTERACTIVE"
)

var (
	defaultElements = []string{"7", "15", "6", "1", "2"} //nolint:gochecknoglobals
	defaultRemove   = "6"                                //nolint:gochecknoglobals
)

// Config describes one demo run.
type Config struct {
	Elements []string
	Type     ElementType
	// Remove is the value removed after the first set of views is printed.
	// Empty means nothing is removed.
	Remove      string
	Orders      []container.Order
	Format      Format
	Interactive bool
}

// DefaultConfig reproduces the classic walkthrough: five integers, all six
// orders, then removal of 6.
func DefaultConfig() Config {
	return Config{
		Elements: append([]string(nil), defaultElements...),
		Type:     TypeInt,
		Remove:   defaultRemove,
		Orders:   container.Orders(),
		Format:   FormatText,
	}
}

// ConfigSource layers the env file named by ORDERDEMO_CONFIG (if any) under src.
// Keys set in src win over keys in the file.
func ConfigSource(src envutil.Source) (envutil.Source, error) {
	path := envutil.String(src, KeyConfigFile).ValueOrElse("")
	if path == "" {
		return src, nil
	}

	file, err := envutil.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", KeyConfigFile, err)
	}

	return envutil.Layered(src, file), nil
}

// LoadConfig reads a Config from src. Non-empty args replace the configured
// elements; each arg may itself be a comma-separated list. Every invalid
// setting is reported, not just the first one.
func LoadConfig(src envutil.Source, args []string) (Config, error) {
	var errs commonerrors.Collection

	cfg := DefaultConfig()

	elements := envutil.List(src, KeyElements)
	customElements := len(args) > 0 || elements.HasValue()

	switch {
	case len(args) > 0:
		cfg.Elements = envutil.SplitList(strings.Join(args, ","))
	case elements.HasValue():
		cfg.Elements = elements.ValueOrElse(nil)
	}

	if customElements {
		cfg.Remove = ""
	}

	cfg.Remove = envutil.String(src, KeyRemove).ValueOrElse(cfg.Remove)

	elemType, err := envutil.Map(envutil.String(src, KeyType, envutil.Default(string(TypeInt))), parseType).Value()
	errs.Add(err)

	cfg.Type = elemType

	format, err := envutil.Map(envutil.String(src, KeyFormat, envutil.Default(string(FormatText))), parseFormat).Value()
	errs.Add(err)

	cfg.Format = format

	interactive, err := envutil.Bool(src, KeyInteractive, envutil.Default(false)).Value()
	errs.Add(err)

	cfg.Interactive = interactive

	if names := envutil.List(src, KeyOrders); names.HasValue() {
		var orders []container.Order

		for _, name := range names.ValueOrElse(nil) {
			order, err := container.ParseOrder(name)
			if err != nil {
				errs.Addf("%s: %w", KeyOrders, err)

				continue
			}

			orders = append(orders, order)
		}

		if len(orders) > 0 {
			cfg.Orders = orders
		}
	}

	if err := errs.GetError(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseType(s string) (ElementType, error) {
	switch t := ElementType(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeInt, TypeString, TypeNatural:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

func parseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
