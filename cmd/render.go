package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vacefron/vacefron-go/pkg/vacefron"
)

// newRenderCmd builds the subcommand for one image endpoint from its
// parameter list
func newRenderCmd(a *app, e vacefron.Endpoint) *cobra.Command {
	var (
		output string
		capt   captionFlags
	)
	strs := map[string]*string{}
	ints := map[string]*int{}
	bools := map[string]*bool{}

	cmd := &cobra.Command{
		Use:     e.Name,
		Short:   e.Summary,
		Args:    cobra.NoArgs,
		Example: exampleFor(e),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := vacefron.Args{}
			for name, v := range strs {
				if *v != "" {
					args[name] = *v
				}
			}
			for name, v := range ints {
				if cmd.Flags().Changed(name) {
					args[name] = strconv.Itoa(*v)
				}
			}
			for name, v := range bools {
				args[name] = strconv.FormatBool(*v)
			}

			if e.Text && capt.prompt != "" && args["text"] == "" {
				text, err := capt.caption(cmd.Context(), a.cfg, e.Name)
				if err != nil {
					return err
				}
				slog.Info("Generated caption", "provider", capt.provider, "caption", text)
				args["text"] = text
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			img, err := client.Render(cmd.Context(), e.Name, args)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), img.URL())
				return nil
			}
			if err := img.Save(cmd.Context(), output); err != nil {
				return err
			}
			slog.Info("Saved image", "endpoint", e.Name, "path", output)
			return nil
		},
	}

	flags := cmd.Flags()
	for _, p := range e.Params {
		switch p.Type {
		case vacefron.ParamInt:
			ints[p.Name] = flags.Int(p.Name, 0, p.Usage)
		case vacefron.ParamBool:
			bools[p.Name] = flags.Bool(p.Name, false, p.Usage)
		default:
			strs[p.Name] = flags.String(p.Name, "", p.Usage)
		}
		// text can come from a caption provider instead
		if p.Required && !(e.Text && p.Name == "text") {
			_ = cmd.MarkFlagRequired(p.Name)
		}
	}
	flags.StringVarP(&output, "output", "o", "", "Save the image to this path instead of printing its URL")
	if e.Text {
		capt.register(cmd)
	}

	return cmd
}

func exampleFor(e vacefron.Endpoint) string {
	ex := "  vacefron " + e.Name
	for _, p := range e.Params {
		if !p.Required {
			continue
		}
		switch p.Type {
		case vacefron.ParamInt:
			ex += fmt.Sprintf(" --%s 1", p.Name)
		default:
			ex += fmt.Sprintf(" --%s %q", p.Name, "...")
		}
	}
	return ex + " -o " + e.Name + ".png"
}
