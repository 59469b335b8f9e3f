// SPDX-License-Identifier: MIT
//
// File: settings.go
// Role: the settings subcommand: list named settings with current values.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molfrag/settings"
)

type settingView struct {
	Name        string      `yaml:"name"`
	DisplayName string      `yaml:"displayName"`
	Kind        string      `yaml:"kind"`
	Value       interface{} `yaml:"value"`
	Choices     []string    `yaml:"choices,omitempty"`
	Tooltip     string      `yaml:"tooltip"`
}

func newSettingsCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List fragmentation settings with their effective values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.cfg.Settings()
			if err != nil {
				return err
			}
			rows := settingViews(s)
			w := cmd.OutOrStdout()

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(w)
				defer enc.Close()
				return enc.Encode(rows)
			case "table":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tKIND\tVALUE\tDESCRIPTION")
				for _, r := range rows {
					kind := r.Kind
					if len(r.Choices) > 0 {
						kind += "(" + strings.Join(r.Choices, "|") + ")"
					}
					fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", r.Name, kind, r.Value, r.Tooltip)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format (table, yaml)")

	return cmd
}

func settingViews(s settings.Settings) []settingView {
	ds := settings.Descriptors()
	out := make([]settingView, len(ds))
	for i, d := range ds {
		v, _ := s.Get(d.Name)
		out[i] = settingView{
			Name:        d.Name,
			DisplayName: d.DisplayName,
			Kind:        d.Kind.String(),
			Value:       v,
			Choices:     d.Choices,
			Tooltip:     d.Tooltip,
		}
	}

	return out
}
