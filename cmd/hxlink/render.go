package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pthm/hxlink"
)

type propsFlags struct {
	href        string
	role        string
	target      string
	rel         string
	download    bool
	inline      bool
	darkTheme   bool
	tabIsActive string
	label       string
}

func (f *propsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.href, "href", "", "Navigation target")
	cmd.Flags().StringVar(&f.role, "role", "", "Interactive role: button or tab")
	cmd.Flags().StringVar(&f.target, "target", "", "Browsing context, _blank adds the external icon")
	cmd.Flags().StringVar(&f.rel, "rel", "", "Link relationship, ignored for _blank")
	cmd.Flags().BoolVar(&f.download, "download", false, "Mark the link as a download")
	cmd.Flags().BoolVar(&f.inline, "inline", false, "Inline rather than block context")
	cmd.Flags().BoolVar(&f.darkTheme, "darktheme", false, "Use the dark theme")
	cmd.Flags().StringVar(&f.tabIsActive, "tabisactive", "", "Tab selection: true or false")
	cmd.Flags().StringVar(&f.label, "label", "", "Anchor text")
}

// apply overlays the flags the user actually set onto props.
func (f *propsFlags) apply(cmd *cobra.Command, props *hxlink.Props) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }

	if set("href") {
		props.Href = f.href
	}
	if set("role") {
		props.Role = hxlink.Role(f.role)
	}
	if set("target") {
		props.Target = f.target
	}
	if set("rel") {
		props.Rel = f.rel
	}
	if set("download") {
		props.Download = f.download
	}
	if set("inline") {
		props.Inline = f.inline
	}
	if set("darktheme") {
		props.DarkTheme = f.darkTheme
	}
	if set("tabisactive") {
		props.TabActive = hxlink.ParseTabState(f.tabIsActive)
	}
	if set("label") {
		props.Label = f.label
	}
}

// resolveProps starts from the named fixture, if any, and applies flags.
func resolveProps(cmd *cobra.Command, e *env, args []string, f *propsFlags) (hxlink.Props, error) {
	var props hxlink.Props
	if len(args) == 1 {
		fixture, ok := e.cfg.Fixture(args[0])
		if !ok {
			return props, fmt.Errorf("unknown fixture %q", args[0])
		}
		props = fixture.Props()
	}
	f.apply(cmd, &props)
	return props, nil
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	pf := &propsFlags{}
	var contentOnly, explain bool

	cmd := &cobra.Command{
		Use:   "render [fixture]",
		Short: "Render an element to HTML",
		Long:  "Render an ods-hyperlink from a configured fixture and/or attribute flags and print the HTML.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, rootFlags)
			if err != nil {
				return err
			}
			props, err := resolveProps(cmd, e, args, pf)
			if err != nil {
				return err
			}
			if err := e.link.Hydrate(cmd.Context(), &props); err != nil {
				return err
			}

			out := e.link.Render(cmd.Context(), props)
			if contentOnly {
				out = e.link.Content(props, hxlink.Released)
			}
			if err := out.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout())

			if explain {
				el, err := e.link.NewElement(props)
				if err != nil {
					return err
				}
				return writeStyle(cmd.OutOrStdout(), el.AnchorStyle())
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&contentOnly, "content", false, "Print only the element content, without the host tag")
	cmd.Flags().BoolVar(&explain, "explain", false, "Also print the style declarations reaching the anchor")

	return cmd
}

// writeStyle prints style as one CSS block for the anchor, properties sorted.
func writeStyle(w io.Writer, style map[string]string) error {
	if _, err := fmt.Fprintln(w, "a {"); err != nil {
		return err
	}
	for _, prop := range slices.Sorted(maps.Keys(style)) {
		if _, err := fmt.Fprintf(w, "  %s: %s;\n", prop, style[prop]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
