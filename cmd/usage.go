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

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the account's character quota usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		u, err := client.Usage(context.Background())
		if err != nil {
			return fmt.Errorf("failed to query usage: %w", err)
		}

		fmt.Printf("Characters used: %d / %d", u.CharacterCount, u.CharacterLimit)
		if u.CharacterLimit > 0 {
			fmt.Printf(" (%.1f%%)", float64(u.CharacterCount)/float64(u.CharacterLimit)*100)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
