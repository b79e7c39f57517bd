package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"msgsource/internal/adapters/discord"
	"msgsource/internal/application"
	"msgsource/internal/config"
	"msgsource/internal/domain"
	"msgsource/internal/domain/catalog"
	"msgsource/internal/domain/entities"
	"msgsource/internal/infrastructure/database"
	"msgsource/internal/infrastructure/i18n"
	"msgsource/internal/infrastructure/logging"
	"msgsource/internal/ports/output"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "msgsource",
		Short:         "Resolve localized messages from the message catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(
		a.resolveCmd(),
		a.chainCmd(),
		a.localesCmd(),
		a.putCmd(),
		a.migrateCmd(),
		a.botCmd(),
	)
	return root
}

func (a *app) resolveCmd() *cobra.Command {
	var (
		args           []string
		codes          []string
		defaultMessage string
		locale         string
	)
	cmd := &cobra.Command{
		Use:   "resolve CODE",
		Short: "Print the message for CODE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, positional []string) error {
			tag, err := parseLocale(locale)
			if err != nil {
				return err
			}
			resolver, err := a.resolver(cmd.Context())
			if err != nil {
				return err
			}

			req := entities.Request{Codes: append(positional[:1:1], codes...), Locale: tag}
			for _, v := range args {
				req.Args = append(req.Args, v)
			}
			if cmd.Flags().Changed("default") {
				req.DefaultMessage = &defaultMessage
			}

			text, err := resolver.ResolveRequest(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&args, "arg", nil, "positional argument, repeatable ({0}, {1}, ...)")
	cmd.Flags().StringArrayVar(&codes, "code", nil, "fallback code tried after CODE, repeatable")
	cmd.Flags().StringVar(&defaultMessage, "default", "", "message returned verbatim when no code matches")
	cmd.Flags().StringVar(&locale, "locale", "", "language tag (default: DEFAULT_LOCALE)")
	return cmd
}

func (a *app) chainCmd() *cobra.Command {
	var locale string
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Print the locale fallback chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := parseLocale(locale)
			if err != nil {
				return err
			}
			resolver := application.NewResolver(catalog.NewBuilder().Build(), a.options())
			for _, t := range resolver.Chain(tag) {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "language tag (default: DEFAULT_LOCALE)")
	return cmd
}

func (a *app) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the localized catalog partitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolver, err := a.resolver(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range resolver.Locales() {
				fmt.Fprintln(cmd.OutOrStdout(), t.String())
			}
			return nil
		},
	}
}

func (a *app) putCmd() *cobra.Command {
	var (
		locale string
		remove bool
	)
	cmd := &cobra.Command{
		Use:   "put CODE [TEMPLATE]",
		Short: "Store or remove a message override in the database",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, positional []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			if !remove && len(positional) != 2 {
				return fmt.Errorf("put: TEMPLATE is required unless --delete is set")
			}
			tag := catalog.Base
			if locale != "" {
				parsed, err := parseLocale(locale)
				if err != nil {
					return err
				}
				tag = *parsed
			}

			pool, err := database.NewPool(cmd.Context(), a.cfg.DatabaseURL, a.logger)
			if err != nil {
				return err
			}
			defer pool.Close()
			repo := database.NewMessageRepository(pool)

			message := entities.Message{Locale: tag, Code: positional[0]}
			if remove {
				return repo.Delete(cmd.Context(), message)
			}
			message.Template = positional[1]
			return repo.Put(cmd.Context(), message)
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "language tag (default: base catalog)")
	cmd.Flags().BoolVar(&remove, "delete", false, "remove the override instead of storing it")
	return cmd
}

func (a *app) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			return database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, a.logger)
		},
	}
}

func (a *app) botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireBot(); err != nil {
				return err
			}
			resolver, err := a.resolver(cmd.Context())
			if err != nil {
				return err
			}
			bot, err := discord.NewBot(a.cfg, resolver, a.logger)
			if err != nil {
				return err
			}
			return bot.Start(cmd.Context())
		},
	}
}

func (a *app) options() application.Options {
	return application.Options{
		DefaultLocale:           a.cfg.Locale(),
		UseCodeAsDefaultMessage: a.cfg.UseCodeAsDefaultMessage,
		FallbackToSystemLocale:  a.cfg.FallbackToSystemLocale,
		AlwaysUseMessageFormat:  a.cfg.AlwaysUseMessageFormat,
	}
}

// resolver loads the catalog once: embedded bundles, then MESSAGES_DIR, then
// database overrides.
func (a *app) resolver(ctx context.Context) (*application.Resolver, error) {
	sources := []output.MessageSource{
		i18n.NewBundleSource(i18n.EmbeddedFS(), a.cfg.Basenames, a.logger),
	}
	if a.cfg.MessagesDir != "" {
		sources = append(sources, i18n.NewBundleSource(os.DirFS(a.cfg.MessagesDir), a.cfg.Basenames, a.logger))
	}
	if a.cfg.DatabaseURL != "" {
		pool, err := database.NewPool(ctx, a.cfg.DatabaseURL, a.logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		sources = append(sources, database.NewMessageRepository(pool))
	}

	c, err := application.LoadCatalog(ctx, sources...)
	if err != nil {
		return nil, err
	}
	a.logger.Info("✅ message catalog loaded",
		zap.Int("entries", c.Len()), zap.Stringer("default_locale", a.cfg.Locale()))
	return application.NewResolver(c, a.options()), nil
}

func parseLocale(raw string) (*language.Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", raw, domain.ErrInvalidLocale)
	}
	return &tag, nil
}
