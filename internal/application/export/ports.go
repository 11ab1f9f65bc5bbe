package export

import (
	"context"
	"time"

	"github.com/jhoicas/articulos-centros/internal/domain/entity"
)

// ListingGenerator genera el listado imprimible de un centro (PDF).
type ListingGenerator interface {
	GenerateListing(ctx context.Context, center entity.CenterID, rows []entity.CenterExportRow, generatedAt time.Time) ([]byte, error)
}

// ListingFileName nombre del listado junto al CSV de cada centro.
const ListingFileName = "Articulos.pdf"
