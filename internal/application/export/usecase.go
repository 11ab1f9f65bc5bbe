package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/articulos-centros/internal/application/dto"
	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/domain/inventory"
	"github.com/jhoicas/articulos-centros/internal/domain/repository"
	"github.com/jhoicas/articulos-centros/internal/domain/table"
	"github.com/jhoicas/articulos-centros/pkg/logger"
)

// BuildCentersUseCase genera el Articulos.csv de cada centro a partir de catálogo, stock y proveedores.
// Proceso por lotes secuencial: si falla la escritura de un centro, los anteriores quedan escritos.
type BuildCentersUseCase struct {
	sources    repository.SourceRepository
	exports    repository.CenterExportRepository
	overrides  repository.OverrideRepository // opcional
	listing    ListingGenerator              // opcional
	warehouses entity.WarehouseMap
	log        *logger.Logger
	now        func() time.Time
}

// NewBuildCentersUseCase construye el caso de uso. overrides y listing pueden ser nil.
func NewBuildCentersUseCase(
	sources repository.SourceRepository,
	exports repository.CenterExportRepository,
	overrides repository.OverrideRepository,
	listing ListingGenerator,
	warehouses entity.WarehouseMap,
	log *logger.Logger,
) *BuildCentersUseCase {
	if warehouses == nil {
		warehouses = entity.DefaultWarehouses()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BuildCentersUseCase{
		sources:    sources,
		exports:    exports,
		overrides:  overrides,
		listing:    listing,
		warehouses: warehouses,
		log:        log,
		now:        time.Now,
	}
}

// Run ejecuta el lote completo. Una fuente ausente devuelve un error que envuelve
// domain.ErrSourceMissing antes de leer nada.
func (uc *BuildCentersUseCase) Run(ctx context.Context, req dto.BuildRequest) (*dto.BuildSummary, error) {
	summary := &dto.BuildSummary{
		RunID:            uuid.NewString(),
		DefaultedColumns: map[string][]string{},
	}
	log := uc.log.WithStr("run_id", summary.RunID)

	if err := uc.sources.Require(req.CatalogPath, req.StockPath, req.SuppliersPath); err != nil {
		return summary, err
	}

	catalogTable, err := uc.load(log, summary, "catalogo", req.CatalogPath, inventory.CatalogAliases)
	if err != nil {
		return summary, err
	}
	stockTable, err := uc.load(log, summary, "stock", req.StockPath, inventory.StockAliases)
	if err != nil {
		return summary, err
	}
	supplierTable, err := uc.load(log, summary, "proveedores", req.SuppliersPath, inventory.SupplierAliases)
	if err != nil {
		return summary, err
	}

	// Stock
	stockRows, issues := inventory.StockRowsFromTable(stockTable)
	summary.StockRows = len(stockRows)
	summary.CoercionIssues += len(issues)
	logIssues(log, "stock", issues)

	stock, stockStats := inventory.AggregateStock(stockRows, uc.warehouses)
	summary.Stock = stockStats
	if stockStats.DroppedRows > 0 {
		log.Warn().
			Int("filas", stockStats.DroppedRows).
			Int64("unidades", stockStats.DroppedQuantity).
			Interface("almacenes", stockStats.UnknownWarehouses).
			Msg("filas de stock con almacén desconocido descartadas")
	}

	// Catálogo + proveedores
	articles := inventory.ArticlesFromTable(catalogTable)
	suppliers := inventory.SuppliersFromTable(supplierTable)
	summary.Articles = len(articles)
	summary.Suppliers = len(suppliers)

	catalog, mergeStats := inventory.MergeCatalog(articles, suppliers)
	summary.Merge = mergeStats
	summary.CoercionIssues += mergeStats.UnknownPrices
	if mergeStats.UnknownPrices > 0 {
		log.Warn().Int("articulos", mergeStats.UnknownPrices).Msg("artículos sin precio legible, se exportan con precio vacío")
	}
	if mergeStats.UnmatchedSuppliers > 0 || mergeStats.DuplicateSuppliers > 0 {
		log.Info().
			Int("sin_proveedor", mergeStats.UnmatchedSuppliers).
			Int("proveedores_duplicados", mergeStats.DuplicateSuppliers).
			Msg("unión con proveedores")
	}
	log.Info().
		Int("articulos", len(catalog)).
		Int("filas_stock", stockStats.Kept).
		Int("articulos_con_stock", stockStats.Articles).
		Msg("catálogo preparado")

	// Export por centro, en orden de almacén
	generatedAt := uc.now()
	for _, center := range uc.warehouses.Centers() {
		result, err := uc.exportCenter(ctx, log, center, catalog, stock, generatedAt)
		if err != nil {
			return summary, err
		}
		summary.Centers = append(summary.Centers, result)
		if req.OnCenterWritten != nil {
			req.OnCenterWritten(result)
		}
	}

	log.Info().Int("centros", len(summary.Centers)).Msg("exportación completada")
	return summary, nil
}

func (uc *BuildCentersUseCase) load(
	log *logger.Logger,
	summary *dto.BuildSummary,
	name, path string,
	aliases table.AliasTable,
) (*table.Table, error) {
	raw, err := uc.sources.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cargar %s: %w", name, err)
	}
	prepared, defaulted := inventory.Prepare(raw, aliases)
	if len(defaulted) > 0 {
		summary.DefaultedColumns[name] = defaulted
		log.Info().Str("fuente", name).Strs("campos", defaulted).Msg("columnas ausentes, se rellenan vacías")
	}
	log.Debug().Str("fuente", name).Str("ruta", path).Int("filas", raw.Len()).Strs("cabecera", raw.Columns).Msg("fuente cargada")
	return prepared, nil
}

func (uc *BuildCentersUseCase) exportCenter(
	ctx context.Context,
	log *logger.Logger,
	center entity.CenterID,
	catalog []entity.CatalogEntry,
	stock inventory.AggregatedStock,
	generatedAt time.Time,
) (dto.CenterExportResult, error) {
	var overrides entity.CenterOverrides
	if uc.overrides != nil {
		ov, err := uc.overrides.ForCenter(center)
		if err != nil {
			log.Warn().Err(err).Str("centro", string(center)).Msg("overrides ilegibles, se ignoran")
		}
		overrides = ov
	}

	rows := inventory.BuildCenterRows(catalog, stock, center, overrides)
	path, err := uc.exports.Write(center, rows)
	if err != nil {
		return dto.CenterExportResult{}, fmt.Errorf("exportar %s: %w", center, err)
	}

	result := dto.CenterExportResult{
		Center: center,
		Label:  center.Label(),
		Path:   path,
		Rows:   len(rows),
	}
	for _, r := range rows {
		result.Units += r.Stock
	}

	if uc.listing != nil {
		result.ListingPath = uc.writeListing(ctx, log, center, rows, generatedAt)
	}

	log.Info().
		Str("centro", string(center)).
		Str("ruta", path).
		Int("filas", result.Rows).
		Int64("unidades", result.Units).
		Int("overrides_ean", len(overrides.EAN)).
		Int("overrides_imagen", len(overrides.Images)).
		Msg("export escrito")
	return result, nil
}

// writeListing genera el PDF del centro. Un fallo aquí no invalida el CSV ya escrito.
func (uc *BuildCentersUseCase) writeListing(
	ctx context.Context,
	log *logger.Logger,
	center entity.CenterID,
	rows []entity.CenterExportRow,
	generatedAt time.Time,
) string {
	data, err := uc.listing.GenerateListing(ctx, center, rows, generatedAt)
	if err != nil {
		log.Warn().Err(err).Str("centro", string(center)).Msg("no se pudo generar el listado PDF")
		return ""
	}
	path, err := uc.exports.WriteAttachment(center, ListingFileName, data)
	if err != nil {
		log.Warn().Err(err).Str("centro", string(center)).Msg("no se pudo guardar el listado PDF")
		return ""
	}
	return path
}

func logIssues(log *logger.Logger, source string, issues []inventory.CoercionIssue) {
	if len(issues) == 0 {
		return
	}
	log.Warn().Str("fuente", source).Int("celdas", len(issues)).Msg("celdas numéricas ilegibles sustituidas por 0")
	for _, is := range issues {
		log.Debug().Str("fuente", source).Int("linea", is.Line).Str("campo", is.Field).Str("valor", is.Raw).Msg("celda coercionada")
	}
}
