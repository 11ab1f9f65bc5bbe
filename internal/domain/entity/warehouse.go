package entity

import "sort"

// CenterID identifica un centro de venta; también es el nombre de su carpeta de export.
type CenterID string

// Centros conocidos.
const (
	CenterColl     CenterID = "coll"
	CenterCalvia   CenterID = "calvia"
	CenterAlcudia  CenterID = "alcudia"
	CenterSantanyi CenterID = "santanyi"
)

var centerLabels = map[CenterID]string{
	CenterColl:     "Coll",
	CenterCalvia:   "Calvià",
	CenterAlcudia:  "Alcudia",
	CenterSantanyi: "Santanyí",
}

// Label devuelve el nombre legible del centro (o el ID si no se conoce).
func (c CenterID) Label() string {
	if l, ok := centerLabels[c]; ok {
		return l
	}
	return string(c)
}

// WarehouseMap asocia cada código de almacén con el centro al que abastece.
// Varios almacenes pueden apuntar al mismo centro; un almacén nunca abastece dos centros.
type WarehouseMap map[int]CenterID

// DefaultWarehouses es el mapa fijo almacén → centro (1..4).
func DefaultWarehouses() WarehouseMap {
	return WarehouseMap{
		1: CenterColl,
		2: CenterCalvia,
		3: CenterAlcudia,
		4: CenterSantanyi,
	}
}

// CenterFor devuelve el centro del almacén; false si el código no es válido.
func (m WarehouseMap) CenterFor(code int) (CenterID, bool) {
	c, ok := m[code]
	return c, ok
}

// Centers devuelve los centros sin repetir, ordenados por el menor código de almacén que los abastece.
func (m WarehouseMap) Centers() []CenterID {
	codes := make([]int, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	seen := make(map[CenterID]bool, len(m))
	out := make([]CenterID, 0, len(m))
	for _, code := range codes {
		c := m[code]
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
