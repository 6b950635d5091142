package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoahotran/planmoni-site/adapters/event"
	"github.com/khoahotran/planmoni-site/adapters/persistence"
	"github.com/khoahotran/planmoni-site/internal/application/datamanager"
	activityUC "github.com/khoahotran/planmoni-site/internal/application/usecase/activity"
	blogUC "github.com/khoahotran/planmoni-site/internal/application/usecase/blog"
	careerUC "github.com/khoahotran/planmoni-site/internal/application/usecase/career"
	faqUC "github.com/khoahotran/planmoni-site/internal/application/usecase/faq"
	"github.com/khoahotran/planmoni-site/internal/config"
	"github.com/khoahotran/planmoni-site/internal/domain/activity"
	"github.com/khoahotran/planmoni-site/pkg/logger"
)

// app is the console's view of the content managers, opened once per
// command against the configured store.
type app struct {
	cfg        config.Config
	log        logger.Logger
	closeStore func()
	publisher  activity.Publisher

	blog    *blogUC.BlogUseCase
	careers *careerUC.CareersUseCase
	faqs    *faqUC.FAQUseCase
}

func (a *app) open(ctx context.Context, configDir string, verbose bool) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	a.log = logger.NewNopLogger()
	if verbose {
		a.log = logger.NewZapLogger("development")
	}

	store, closeStore, err := persistence.OpenStore(ctx, cfg, a.log)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	a.closeStore = closeStore

	m, err := datamanager.Open(ctx, store, a.log, nil)
	if err != nil {
		closeStore()
		return fmt.Errorf("loading content: %w", err)
	}

	if len(cfg.Kafka.Brokers) > 0 {
		a.publisher, err = event.NewKafkaPublisher(cfg, a.log)
		if err != nil {
			closeStore()
			return err
		}
	} else {
		a.publisher = event.NewLocalPublisher(activityUC.NewActivityUseCase(m.Activity, activityUC.Sources{}, a.log))
	}
	a.publisher = event.NewInlinePublisher(a.publisher)

	a.blog = blogUC.NewBlogUseCase(m.Blog, a.publisher, a.log)
	a.careers = careerUC.NewCareersUseCase(m.Careers, a.publisher, a.log)
	a.faqs = faqUC.NewFAQUseCase(m.FAQs, a.publisher, a.log)
	return nil
}

func (a *app) close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.closeStore != nil {
		a.closeStore()
	}
}

func newRootCmd() *cobra.Command {
	var (
		configDir string
		verbose   bool
		a         = &app{}
	)

	root := &cobra.Command{
		Use:   "planmoni-admin",
		Short: "Manage Planmoni site content from the terminal",
		Long: `planmoni-admin edits the same documents as the admin panel, directly
against the configured store. A running API server keeps its own copy in
memory and will not see these edits until it restarts.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml and .env")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log store activity")

	openApp := func(cmd *cobra.Command, _ []string) error {
		return a.open(cmd.Context(), configDir, verbose)
	}
	closeApp := func(*cobra.Command, []string) { a.close() }

	for _, c := range []*cobra.Command{
		entityCommand(a, postsEntity),
		entityCommand(a, positionsEntity),
		entityCommand(a, faqsEntity),
	} {
		c.PersistentPreRunE = openApp
		c.PersistentPostRun = closeApp
		root.AddCommand(c)
	}
	root.AddCommand(newHashPasswordCmd(), newMigrateCmd(&configDir))
	return root
}
