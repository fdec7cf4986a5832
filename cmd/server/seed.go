package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/seed"
	"github.com/pmafa/internal/service"
)

var seedOpts struct {
	file  string
	pages []string
	reset bool
}

// seedCmd 写入示例内容
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write sample content into the page documents",
	Long: `Write sample content into the page documents.

Without --file the embedded sample fixture is used. With --reset the selected
pages are restored to their built-in defaults instead.`,
	RunE: runSeed,
}

func init() {
	flags := seedCmd.Flags()
	flags.StringVar(&seedOpts.file, "file", "", "YAML fixture file")
	flags.StringSliceVar(&seedOpts.pages, "page", nil, "limit to these page kinds (repeatable)")
	flags.BoolVar(&seedOpts.reset, "reset", false, "reset pages to defaults instead of applying fixtures")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	only := make([]content.Kind, 0, len(seedOpts.pages))
	for _, raw := range seedOpts.pages {
		kind, err := content.ParseKind(raw)
		if err != nil {
			return err
		}
		only = append(only, kind)
	}

	ctx := cmd.Context()
	rt, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close(ctx)
	pages := service.NewPageService(rt.docs, rt.logger)

	if seedOpts.reset {
		kinds := only
		if len(kinds) == 0 {
			kinds = content.AllKinds()
		}
		for _, kind := range kinds {
			if err := pages.Reset(ctx, kind); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reset %d page(s)\n", len(kinds))
		return nil
	}

	fixtures, err := loadFixtures(seedOpts.file)
	if err != nil {
		return err
	}
	applied, err := seed.Apply(ctx, pages, fixtures, only...)
	if err != nil {
		return err
	}
	rt.logger.Info("seeded page documents", zap.Int("count", len(applied)))
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %d page(s)\n", len(applied))
	return nil
}

func loadFixtures(path string) (seed.Fixtures, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}
