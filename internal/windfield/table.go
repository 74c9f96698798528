package windfield

import "fmt"

// Table is the column-oriented result of a reconstruction pass. All slices
// have equal length, one element per retained (PolicyReorder) or per input
// (PolicyStrict) window.
type Table struct {
	Time      []int64
	Shear     []float64
	Veer      []float64
	StatusUpr []float64
	StatusLwr []float64
	SpeedUpr  []float64
	SpeedLwr  []float64
	DirUpr    []float64
	DirLwr    []float64
	XUpr      []float64
	YUpr      []float64
	XLwr      []float64
	YLwr      []float64
	HeightUpr []float64
	HeightLwr []float64
}

// ColumnNames lists the numeric columns of a Table in canonical order,
// excluding time.
var ColumnNames = []string{
	"shear", "veer",
	"status_upr", "status_lwr",
	"speed_upr", "speed_lwr",
	"dir_upr", "dir_lwr",
	"x_upr", "y_upr", "x_lwr", "y_lwr",
	"height_upr", "height_lwr",
}

func newTable() *Table { return &Table{} }

// append flattens one windfield descriptor onto the table, all columns in
// a single pass.
func (t *Table) append(d WindfieldDesc) {
	t.Time = append(t.Time, d.Time)
	t.Shear = append(t.Shear, d.Shear)
	t.Veer = append(t.Veer, d.Veer)
	t.StatusUpr = append(t.StatusUpr, d.Upper.Status)
	t.StatusLwr = append(t.StatusLwr, d.Lower.Status)
	t.SpeedUpr = append(t.SpeedUpr, d.Upper.Spd)
	t.SpeedLwr = append(t.SpeedLwr, d.Lower.Spd)
	t.DirUpr = append(t.DirUpr, d.Upper.Dir)
	t.DirLwr = append(t.DirLwr, d.Lower.Dir)
	t.XUpr = append(t.XUpr, d.Upper.X)
	t.YUpr = append(t.YUpr, d.Upper.Y)
	t.XLwr = append(t.XLwr, d.Lower.X)
	t.YLwr = append(t.YLwr, d.Lower.Y)
	t.HeightUpr = append(t.HeightUpr, d.Upper.Hgt)
	t.HeightLwr = append(t.HeightLwr, d.Lower.Hgt)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Time) }

// Column returns the named numeric column. Time is not addressable here
// because it is integer-typed; use the Time field directly.
func (t *Table) Column(name string) ([]float64, error) {
	switch name {
	case "shear":
		return t.Shear, nil
	case "veer":
		return t.Veer, nil
	case "status_upr":
		return t.StatusUpr, nil
	case "status_lwr":
		return t.StatusLwr, nil
	case "speed_upr":
		return t.SpeedUpr, nil
	case "speed_lwr":
		return t.SpeedLwr, nil
	case "dir_upr":
		return t.DirUpr, nil
	case "dir_lwr":
		return t.DirLwr, nil
	case "x_upr":
		return t.XUpr, nil
	case "y_upr":
		return t.YUpr, nil
	case "x_lwr":
		return t.XLwr, nil
	case "y_lwr":
		return t.YLwr, nil
	case "height_upr":
		return t.HeightUpr, nil
	case "height_lwr":
		return t.HeightLwr, nil
	}
	return nil, fmt.Errorf("unknown column %q", name)
}

// HubWind extrapolates every row to hub height using the lower plane as
// reference, returning speed and direction series. Rows with NaN shear or
// veer extrapolate to NaN.
func (t *Table) HubWind(hubHgt float64) (speed, dir []float64) {
	speed = make([]float64, t.Len())
	dir = make([]float64, t.Len())
	for i := range t.Time {
		speed[i] = ExtrapolateSpeed(hubHgt, t.Shear[i], t.SpeedLwr[i], t.HeightLwr[i])
		dir[i] = ExtrapolateDirection(hubHgt, t.Veer[i], t.DirLwr[i], t.HeightLwr[i])
	}
	return speed, dir
}
