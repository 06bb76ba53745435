/*
Copyright © 2025 fluentloop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentloop/smartvocab/internal/app"
	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete stored progress for a learner and language",
	Long: `Deletes the persisted learning snapshot. The next practice session
starts from a freshly initialized pool; there is no partial reset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer cleanup()

		cfg := container.Config
		lang := entity.Language(entity.ParseLanguage(cfg.Language).CodeOrDefault())
		key := repository.SnapshotKey{Learner: cfg.Learner, Language: lang}

		if err := container.Snapshots.Delete(cmd.Context(), key); err != nil {
			return fmt.Errorf("delete snapshot: %w", err)
		}
		fmt.Printf("Progress for %q in %s deleted.\n", key.Learner, lang.CodeOrDefault())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
