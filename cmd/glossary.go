/*
Copyright © 2026 Viktor Kozar <vkozar.dev@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Inspect provider glossaries",
	Long: `Inspect the glossaries registered with the provider.

A glossary is directional: an entry for DE→EN is not used for EN→DE.
"redraft translate --glossary NAME" picks the entry matching the hop's
language direction, if one exists.`,
}

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List glossaries with id, name, and direction",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		glossaries, err := client.ListGlossaries(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list glossaries: %w", err)
		}

		if len(glossaries) == 0 {
			fmt.Println("No glossaries registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSOURCE\tTARGET")
		for _, g := range glossaries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", g.ID, g.Name, g.SourceLang, g.TargetLang)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	glossaryCmd.AddCommand(glossaryListCmd)
}
