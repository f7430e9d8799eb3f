package main

import (
	"bufio"
	"fmt"
	"io"
	"os/signal"
	"phishguard/internal/config"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/registry"
	"strings"
	"syscall"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// assessment is the outcome of one URL of a batch.
type assessment struct {
	url string
	res *domain.RiskAssessment
	err error
}

func (a assessment) encode(e *jx.Encoder) {
	if a.err == nil {
		a.res.Encode(e)

		return
	}

	e.ObjStart()
	e.FieldStart("url_analyzed")
	e.Str(a.url)
	e.FieldStart("error")
	e.Str(a.err.Error())
	e.ObjEnd()
}

// readURLs returns args, or the non-empty lines of r when args is empty.
func readURLs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var urls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read urls: %w", err)
	}

	return urls, nil
}

// assessCommand scores URLs from the command line (or stdin) and prints one
// JSON document per line, in input order.
func assessCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assess [url...]",
		Short: "Assesses URLs and prints one JSON result per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			concurrency, _ := cmd.Flags().GetInt("concurrency")
			offline, _ := cmd.Flags().GetBool("offline")

			urls, err := readURLs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			reg := registry.Offline
			if !offline {
				deps, err := buildRegistry(ctx, cfg, false)
				if err != nil {
					return err
				}
				defer deps.close()
				reg = deps.registry
			}

			runtime, err := buildAssessor(ctx, cfg, reg)
			if err != nil {
				return err
			}

			results := make([]assessment, len(urls))
			g, gctx := errgroup.WithContext(ctx)
			g.SetLimit(max(concurrency, 1))
			for i, u := range urls {
				g.Go(func() error {
					res, err := runtime.Assess(gctx, strings.TrimSpace(u))
					if err != nil {
						logger.Warn(gctx, "could not assess url", zap.String("url", u), zap.Error(err))
					}
					results[i] = assessment{url: u, res: res, err: err}

					return nil
				})
			}
			_ = g.Wait()

			return writeAssessments(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().Int("concurrency", 4, "Number of URLs assessed in parallel")
	cmd.Flags().Bool("offline", false, "Skip registration lookups")

	return cmd
}

func writeAssessments(w io.Writer, results []assessment) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	for _, r := range results {
		e.Reset()
		r.encode(e)
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return fmt.Errorf("could not write result: %w", err)
		}
	}

	return nil
}
