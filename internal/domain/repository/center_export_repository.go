package repository

import "github.com/jhoicas/articulos-centros/internal/domain/entity"

// CenterExportRepository define el puerto de escritura del export por centro.
// Cada escritura reemplaza por completo el fichero anterior del centro.
type CenterExportRepository interface {
	Write(center entity.CenterID, rows []entity.CenterExportRow) (string, error)
	WriteAttachment(center entity.CenterID, name string, data []byte) (string, error)
}
