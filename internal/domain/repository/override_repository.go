package repository

import "github.com/jhoicas/articulos-centros/internal/domain/entity"

// OverrideRepository define el puerto para los valores capturados a mano por centro.
// Un centro sin ficheros de overrides devuelve mapas vacíos y error nil.
type OverrideRepository interface {
	ForCenter(center entity.CenterID) (entity.CenterOverrides, error)
}
