package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voice-training/voice-training-service/internal/app"
	"github.com/voice-training/voice-training-service/internal/domain/modules"
	"github.com/voice-training/voice-training-service/internal/infrastructure/persistence"
	"github.com/voice-training/voice-training-service/internal/pkg/logger"
)

// ModuleCommandHandler manages training modules in the configured database.
type ModuleCommandHandler struct {
	logger logger.Logger
}

// NewModuleCommandHandler initializes a ModuleCommandHandler.
func NewModuleCommandHandler() (*ModuleCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ModuleCommandHandler{logger: loggerInstance}, nil
}

// withModuleService opens the database and runs fn with a module service on top of it.
func (h *ModuleCommandHandler) withModuleService(cmd *cobra.Command, fn func(modules.ModuleService) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			h.logger.Error("Failed to close database", "error", err)
		}
	}()

	repo, err := persistence.NewGormModuleRepository(db, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create module repository: %w", err)
	}

	service, err := app.NewModuleService(repo, h.logger)
	if err != nil {
		return fmt.Errorf("failed to create module service: %w", err)
	}

	return fn(service)
}

// SeedCmd inserts the default modules when none exist.
func (h *ModuleCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	return h.withModuleService(cmd, func(service modules.ModuleService) error {
		seeded, err := service.SeedDefaults(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to seed modules: %w", err)
		}

		if seeded == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Modules already present, nothing seeded")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d modules\n", seeded)
		return nil
	})
}

// ListCmd prints all modules as a table.
func (h *ModuleCommandHandler) ListCmd(cmd *cobra.Command, _ []string) error {
	return h.withModuleService(cmd, func(service modules.ModuleService) error {
		list, err := service.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list modules: %w", err)
		}

		rows := make([][]string, 0, len(list))
		for _, m := range list {
			rows = append(rows, []string{
				strconv.FormatUint(uint64(m.ID), 10),
				m.Title,
				m.Level,
				strconv.Itoa(len(m.Steps)),
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), renderTable(
			[]string{"ID", "Title", "Level", "Steps"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
		))
		return nil
	})
}

// InitModuleCommands registers the modules command group.
func InitModuleCommands(rootCmd *cobra.Command) {
	var handler *ModuleCommandHandler
	setup := func(*cobra.Command, []string) error {
		var err error
		handler, err = NewModuleCommandHandler()
		return err
	}

	var modulesCmd = &cobra.Command{
		Use:   "modules",
		Short: "Manage training modules",
	}

	var seedCmd = &cobra.Command{
		Use:     "seed",
		Short:   "Insert the default training modules into an empty database",
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.SeedCmd(cmd, args)
		},
	}

	var listCmd = &cobra.Command{
		Use:     "list",
		Short:   "List training modules",
		Args:    cobra.NoArgs,
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handler.ListCmd(cmd, args)
		},
	}

	modulesCmd.AddCommand(seedCmd, listCmd)
	rootCmd.AddCommand(modulesCmd)
}
