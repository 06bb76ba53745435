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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluentloop/smartvocab/internal/app"
	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress for a learner and language",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer cleanup()

		cfg := container.Config
		lang := entity.Language(entity.ParseLanguage(cfg.Language).CodeOrDefault())
		key := repository.SnapshotKey{Learner: cfg.Learner, Language: lang}

		st, err := container.Snapshots.Load(cmd.Context(), key)
		if errors.Is(err, entity.ErrSnapshotNotFound) {
			fmt.Printf("No progress yet for %q in %s - run `smartvocab practice` first.\n",
				key.Learner, lang.CodeOrDefault())
			return nil
		}
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		stats := container.Learning.Stats(st)
		fmt.Printf("Learner %q, language %s (since %s)\n",
			key.Learner, lang.CodeOrDefault(), st.SessionStarted.Format("2006-01-02"))
		fmt.Printf("  tracked:   %d (of %d ever introduced)\n", stats.Total, st.TotalWordsIntroduced)
		fmt.Printf("  learning:  %d\n", stats.Learning)
		fmt.Printf("  practiced: %d\n", stats.Practiced)
		fmt.Printf("  mastered:  %d\n", stats.Mastered)
		fmt.Printf("  accuracy:  %.1f%%\n", stats.OverallAccuracy*100)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
