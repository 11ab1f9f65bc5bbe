// Comando build_data: genera <centro>/Articulos.csv para cada centro a partir de los
// extractos del ERP (catálogo, stock por almacén y proveedores).
//
// Uso:
//
//	go run ./cmd/build_data [--verbose] [--pdf]
//
// Configuración por entorno (.env opcional): DATA_ROOT, INCOMING_DIR, OUTPUT_ROOT, OVERRIDES_DIR, ...
// Salida: 0 si todo fue bien, 2 si falta alguna fuente obligatoria, 1 ante cualquier otro error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/articulos-centros/internal/application/dto"
	"github.com/jhoicas/articulos-centros/internal/application/export"
	"github.com/jhoicas/articulos-centros/internal/domain"
	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/infrastructure/files"
	infrapdf "github.com/jhoicas/articulos-centros/internal/infrastructure/pdf"
	"github.com/jhoicas/articulos-centros/pkg/config"
	"github.com/jhoicas/articulos-centros/pkg/logger"
)

// Códigos de salida.
const (
	exitOK            = 0
	exitFailure       = 1
	exitSourceMissing = 2
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		if errors.Is(err, domain.ErrSourceMissing) {
			return exitSourceMissing
		}
		return exitFailure
	}
	return exitOK
}

type buildFlags struct {
	verbose bool
	pdf     bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags buildFlags
	cmd := &cobra.Command{
		Use:           "build_data",
		Short:         "Genera Articulos.csv por centro",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log detallado (equivale a LOG_LEVEL=debug)")
	cmd.Flags().BoolVar(&flags.pdf, "pdf", false, "genera también Articulos.pdf por centro (equivale a EXPORT_PDF=true)")
	return cmd
}

func run(cmd *cobra.Command, flags buildFlags, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	level := cfg.App.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: stderr})

	var listing export.ListingGenerator
	if cfg.Export.PDF || flags.pdf {
		listing = infrapdf.NewMarotoListingGenerator()
	}

	uc := export.NewBuildCentersUseCase(
		files.NewSourceLoader(),
		files.NewCenterWriter(cfg.Export.OutputRoot, cfg.Export.FileName),
		files.NewOverrideStore(cfg.Export.OverridesDir),
		listing,
		entity.DefaultWarehouses(),
		log,
	)

	out := cmd.OutOrStdout()
	summary, err := uc.Run(cmd.Context(), dto.BuildRequest{
		CatalogPath:   cfg.Data.CatalogPath(),
		StockPath:     cfg.Data.StockPath(),
		SuppliersPath: cfg.Data.SuppliersPath(),
		OnCenterWritten: func(r dto.CenterExportResult) {
			fmt.Fprintf(out, "[%s] %s: %d artículos -> %s\n", r.Center, r.Label, r.Rows, r.Path)
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "OK: %d centros generados (%d artículos)\n", len(summary.Centers), summary.Articles)
	return nil
}
