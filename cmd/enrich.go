package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	"github.com/ziadkadry99/portfoliai/internal/editor"
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
	"github.com/ziadkadry99/portfoliai/internal/progress"
)

var (
	enrichOnly   []string
	enrichOutput string
)

// enrichSteps are the values accepted by --only.
var enrichSteps = []string{"bio", "skills", "keywords", "stories", "descriptions"}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run AI drafting over the whole portfolio",
	Long: `Enhances the bio, suggests skills and brand keywords, and generates a
story for every project, then writes the enriched document as YAML.
Project stories run concurrently up to max_concurrency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := parseEnrichSteps(enrichOnly)
		if err != nil {
			return err
		}

		sess, err := openSession(activity.ActorCLI, true, editor.WithCallerCancellation())
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results, runErr := runEnrichment(ctx, sess.ctrl, steps, sess.cfg.MaxConcurrency, progress.NewReporter(os.Stderr))

		out := os.Stdout
		if enrichOutput != "" && enrichOutput != "-" {
			f, err := os.Create(enrichOutput)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := portfolio.EncodeYAML(out, sess.ctrl.Document()); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}

		if runErr != nil {
			return fmt.Errorf("enrichment interrupted after %d operations: %w", len(results), runErr)
		}

		var failed []string
		for _, res := range results {
			if res.Outcome == editor.OutcomeFailed {
				failed = append(failed, fmt.Sprintf("%s (%s)", res.Key, res.Error))
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d operations failed: %s", len(failed), len(results), strings.Join(failed, "; "))
		}
		return nil
	},
}

func parseEnrichSteps(only []string) (map[string]bool, error) {
	steps := make(map[string]bool)
	if len(only) == 0 {
		for _, s := range enrichSteps {
			steps[s] = true
		}
		return steps, nil
	}
	for _, s := range only {
		s = strings.ToLower(strings.TrimSpace(s))
		known := false
		for _, k := range enrichSteps {
			if s == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown enrichment step %q (want one of %s)", s, strings.Join(enrichSteps, ", "))
		}
		steps[s] = true
	}
	return steps, nil
}

// runEnrichment runs the selected operations with at most limit in flight.
// A failed operation does not stop the others. Cancelling ctx stops queued
// operations from starting; the results gathered so far are returned with
// the context error.
func runEnrichment(ctx context.Context, ctrl *editor.Controller, steps map[string]bool, limit int, reporter progress.Reporter) ([]editor.Result, error) {
	var tasks []func(context.Context) (editor.Result, error)
	if steps["bio"] {
		tasks = append(tasks, wrapProfileOp(ctrl.EnhanceBio))
	}
	if steps["skills"] {
		tasks = append(tasks, wrapProfileOp(ctrl.SuggestSkills))
	}
	if steps["keywords"] {
		tasks = append(tasks, wrapProfileOp(ctrl.SuggestBrandKeywords))
	}
	for _, p := range ctrl.Document().Projects {
		id := p.ID
		if steps["stories"] {
			tasks = append(tasks, func(ctx context.Context) (editor.Result, error) {
				return ctrl.GenerateProjectStory(ctx, id)
			})
		}
		if steps["descriptions"] {
			tasks = append(tasks, func(ctx context.Context) (editor.Result, error) {
				return ctrl.EnhanceProjectDescription(ctx, id)
			})
		}
	}

	if limit <= 0 {
		limit = 1
	}
	reporter.Start(len(tasks))
	defer reporter.Finish()

	var (
		mu      sync.Mutex
		results []editor.Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, task := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := task(gctx)
			if err != nil {
				// Only a project removed mid-run lands here.
				reporter.Step(err.Error())
				return nil
			}
			reporter.Step(fmt.Sprintf("%s: %s", res.Key, res.Outcome))
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func wrapProfileOp(op func(context.Context) editor.Result) func(context.Context) (editor.Result, error) {
	return func(ctx context.Context) (editor.Result, error) {
		return op(ctx), nil
	}
}

func init() {
	enrichCmd.Flags().StringSliceVar(&enrichOnly, "only", nil, "steps to run: "+strings.Join(enrichSteps, ", ")+" (default all)")
	enrichCmd.Flags().StringVarP(&enrichOutput, "output", "o", "-", `output YAML file ("-" for stdout)`)
	rootCmd.AddCommand(enrichCmd)
}
