package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pthm/hxlink"
)

// scriptEvent is one entry of a YAML event script.
type scriptEvent struct {
	Type        string `yaml:"type"`
	KeyCode     int    `yaml:"key_code,omitempty"`
	Key         string `yaml:"key,omitempty"`
	PointerType string `yaml:"pointer_type,omitempty"`
}

var knownEvents = map[hxlink.EventType]bool{
	hxlink.EventPointerDown: true,
	hxlink.EventPointerUp:   true,
	hxlink.EventMouseDown:   true,
	hxlink.EventMouseUp:     true,
	hxlink.EventKeyDown:     true,
	hxlink.EventKeyUp:       true,
	hxlink.EventTouchStart:  true,
	hxlink.EventClick:       true,
}

func (s scriptEvent) event() (*hxlink.Event, error) {
	typ := hxlink.EventType(strings.ToLower(strings.TrimSpace(s.Type)))
	if !knownEvents[typ] {
		return nil, fmt.Errorf("unknown event type %q", s.Type)
	}
	return &hxlink.Event{Type: typ, KeyCode: s.KeyCode, Key: s.Key, PointerType: s.PointerType}, nil
}

// parseEventList parses "mousedown,keydown:13,pointerdown:touch". The part
// after the colon is a key code when numeric, a pointer type for pointer
// events, and a key value otherwise.
func parseEventList(list string) ([]scriptEvent, error) {
	var out []scriptEvent
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		typ, arg, _ := strings.Cut(item, ":")
		ev := scriptEvent{Type: typ}
		switch {
		case arg == "":
		case strings.HasPrefix(typ, "pointer"):
			ev.PointerType = arg
		default:
			if code, err := strconv.Atoi(arg); err == nil {
				ev.KeyCode = code
			} else {
				ev.Key = arg
			}
		}
		out = append(out, ev)
	}
	if len(out) == 0 {
		return nil, errors.New("no events given")
	}
	return out, nil
}

func loadScript(path string) ([]scriptEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	var events []scriptEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return events, nil
}

type simulateOptions struct {
	events string
	script string
	bind   bool
}

func newSimulateCmd(rootFlags *rootFlags) *cobra.Command {
	pf := &propsFlags{}
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate [fixture]",
		Short: "Feed input events to an element and trace its state",
		Example: `  hxlink simulate button --events mousedown,mouseup,keydown:32,keyup:32,click
  hxlink simulate --role tab --script events.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, rootFlags)
			if err != nil {
				return err
			}
			props, err := resolveProps(cmd, e, args, pf)
			if err != nil {
				return err
			}

			var script []scriptEvent
			switch {
			case opts.script != "":
				script, err = loadScript(opts.script)
			case opts.events != "":
				script, err = parseEventList(opts.events)
			default:
				err = errors.New("provide --events or --script")
			}
			if err != nil {
				return err
			}

			return runSimulate(cmd.Context(), cmd.OutOrStdout(), e.link, props, script, opts.bind)
		},
	}

	pf.register(cmd)
	cmd.Flags().StringVar(&opts.events, "events", "", "Comma-separated events, e.g. mousedown,keydown:13")
	cmd.Flags().StringVar(&opts.script, "script", "", "YAML file listing events")
	cmd.Flags().BoolVar(&opts.bind, "bind", false, "Bind a click callback that reports invocations")

	return cmd
}

func runSimulate(ctx context.Context, w io.Writer, link *hxlink.Hyperlink, props hxlink.Props, script []scriptEvent, bind bool) error {
	var elOpts []hxlink.ElementOption
	if bind {
		elOpts = append(elOpts, hxlink.WithAnchorCallback(func(ctx context.Context, el *hxlink.Element, ev *hxlink.Event) error {
			fmt.Fprintln(w, "  callback invoked")
			return nil
		}))
	}

	el, err := link.NewElement(props, elOpts...)
	if err != nil {
		return err
	}

	for _, s := range script {
		ev, err := s.event()
		if err != nil {
			return err
		}

		dispatchErr := el.Dispatch(ctx, ev)

		pressed := "-"
		if v, ok := anchorAttr(el, hxlink.AttrAriaPressed); ok {
			pressed = v
		}
		line := fmt.Sprintf("%-16s aria-pressed=%-5s touching=%t", label(s), pressed, el.Touching())
		if ev.DefaultPrevented() {
			line += " prevented"
		}
		if dispatchErr != nil {
			line += " error=" + strconv.Quote(dispatchErr.Error())
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func label(s scriptEvent) string {
	switch {
	case s.KeyCode != 0:
		return s.Type + ":" + strconv.Itoa(s.KeyCode)
	case s.Key != "":
		return s.Type + ":" + s.Key
	case s.PointerType != "":
		return s.Type + ":" + s.PointerType
	}
	return s.Type
}

func anchorAttr(el *hxlink.Element, name string) (string, bool) {
	a := el.Anchor()
	if a == nil {
		return "", false
	}
	for _, at := range a.Attr {
		if at.Namespace == "" && at.Key == name {
			return at.Val, true
		}
	}
	return "", false
}
