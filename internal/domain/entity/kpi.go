package entity

import "time"

// KPIPoint foto agregada (sintética) de stock y demanda para un día.
// No está ligada a ningún producto ni bodega y nunca se persiste.
type KPIPoint struct {
	Date   time.Time
	Stock  int
	Demand int
}
