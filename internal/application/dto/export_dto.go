package dto

import (
	"github.com/jhoicas/articulos-centros/internal/domain/entity"
	"github.com/jhoicas/articulos-centros/internal/domain/inventory"
)

// BuildRequest entrada del proceso de generación de exports.
type BuildRequest struct {
	CatalogPath   string
	StockPath     string
	SuppliersPath string
	// OnCenterWritten se invoca tras escribir cada centro (opcional).
	OnCenterWritten func(CenterExportResult)
}

// CenterExportResult resultado de un centro.
type CenterExportResult struct {
	Center      entity.CenterID
	Label       string
	Path        string
	ListingPath string // vacío si no se generó PDF
	Rows        int
	Units       int64
}

// BuildSummary resumen de una ejecución completa.
type BuildSummary struct {
	RunID            string
	Articles         int
	Suppliers        int
	StockRows        int
	CoercionIssues   int
	DefaultedColumns map[string][]string // fuente → campos añadidos vacíos
	Stock            inventory.AggregateStats
	Merge            inventory.MergeStats
	Centers          []CenterExportResult
}
