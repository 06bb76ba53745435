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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fluentloop/smartvocab/internal/app"
	"github.com/fluentloop/smartvocab/internal/entity"
	"github.com/fluentloop/smartvocab/internal/repository"
)

// practiceCmd represents the practice command
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("init app: %w", err)
		}
		defer cleanup()

		return runPractice(cmd.Context(), container, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}

func runPractice(ctx context.Context, container *app.Container, in io.Reader, out io.Writer) error {
	cfg := container.Config
	logger := container.Logger
	lang := entity.Language(entity.ParseLanguage(cfg.Language).CodeOrDefault())
	key := repository.SnapshotKey{Learner: cfg.Learner, Language: lang}

	vocab, err := container.Vocabulary.Load(ctx, lang)
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	st, err := container.Snapshots.Load(ctx, key)
	switch {
	case errors.Is(err, entity.ErrSnapshotNotFound):
		st = container.Learning.Initialize(vocab, cfg.Learning.PoolSize)
		if err := container.Snapshots.Save(ctx, key, st); err != nil {
			return fmt.Errorf("save initial state: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"learner":  key.Learner,
			"language": key.Language,
			"pool":     st.Tracked(),
		}).Info("initialized learning state")
	case err != nil:
		return fmt.Errorf("load state: %w", err)
	}

	// Expansion ceiling: the whole vocabulary unless configured lower.
	maxPool := cfg.Learning.MaxPool
	if maxPool <= 0 {
		maxPool = len(vocab)
	}

	fmt.Fprintf(out, "Practicing %s as %q - fill in the blank, empty line or 'quit' to stop.\n",
		lang.CodeOrDefault(), key.Learner)

	scanner := bufio.NewScanner(in)
	for {
		word, ok := container.Learning.SelectNext(st, vocab)
		if !ok {
			fmt.Fprintln(out, "No words available to practice - import a vocabulary first.")
			return nil
		}

		fmt.Fprintf(out, "\n%s\n", prompt(word))
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" || answer == "quit" || answer == "exit" {
			break
		}

		correct := entity.NormalizeWordToken(answer) == entity.NormalizeWordToken(word.Term)
		if correct {
			fmt.Fprintln(out, "correct!")
		} else {
			fmt.Fprintf(out, "not quite - the word was %q\n", word.Term)
		}

		st = container.Learning.RecordOutcome(st, word.Key(), correct)
		if err := container.Snapshots.Save(ctx, key, st); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		if container.Learning.ShouldExpand(st, vocab) {
			grown := container.Learning.Expand(st, vocab, maxPool)
			if added := grown.Tracked() - st.Tracked(); added > 0 {
				st = grown
				if err := container.Snapshots.Save(ctx, key, st); err != nil {
					return fmt.Errorf("save expanded state: %w", err)
				}
				fmt.Fprintf(out, "(%d new words joined your pool, now %d)\n", added, st.Tracked())
				logger.WithFields(logrus.Fields{
					"learner": key.Learner,
					"added":   added,
					"pool":    st.Tracked(),
				}).Debug("expanded active pool")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answer: %w", err)
	}

	stats := container.Learning.Stats(st)
	fmt.Fprintf(out, "\nSession saved: %d words tracked, %d mastered, overall accuracy %.0f%%\n",
		stats.Total, stats.Mastered, stats.OverallAccuracy*100)
	return nil
}

// prompt renders the question for a word: the cloze sentence when an example
// exists, otherwise the definition or translation.
func prompt(w entity.Word) string {
	var b strings.Builder
	if w.Example != "" {
		b.WriteString(w.Cloze())
	} else if w.Definition != "" {
		fmt.Fprintf(&b, "Which word means: %s", w.Definition)
	} else {
		fmt.Fprintf(&b, "Translate: %s", w.Translation)
	}
	if w.Example != "" && w.Definition != "" {
		fmt.Fprintf(&b, "\n  hint: %s", w.Definition)
	}
	return b.String()
}
