package db

// Struct mimicking the `air_temperature` table
type AirTemperature struct {
	StationID  int32
	MeasuredAt string
	QN9        int32
	TTTU       float64
	RFTU       float64
}

func (o *AirTemperature) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN9, o.TTTU, o.RFTU}
}

// Struct mimicking the `cloudiness` table
type Cloudiness struct {
	StationID  int32
	MeasuredAt string
	QN8        int32
	// Index of how the measurement was taken, kept as text
	VNI string
	VN  float64
}

func (o *Cloudiness) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN8, o.VNI, o.VN}
}

// Struct mimicking the `precipitation` table
type Precipitation struct {
	StationID  int32
	MeasuredAt string
	QN8        int32
	R1         float64
	RSInd      int32
	WRTR       int32
}

func (o *Precipitation) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN8, o.R1, o.RSInd, o.WRTR}
}

// Struct mimicking the `pressure` table
type Pressure struct {
	StationID  int32
	MeasuredAt string
	QN8        int32
	P          float64
	P0         float64
}

func (o *Pressure) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN8, o.P, o.P0}
}

// Struct mimicking the `soil_temperature` table
type SoilTemperature struct {
	StationID  int32
	MeasuredAt string
	QN2        int32
	// Soil temperature at 2, 5, 10, 20, 50 and 100 cm depth
	VTE002 float64
	VTE005 float64
	VTE010 float64
	VTE020 float64
	VTE050 float64
	VTE100 float64
}

func (o *SoilTemperature) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN2, o.VTE002, o.VTE005, o.VTE010, o.VTE020, o.VTE050, o.VTE100}
}

// Struct mimicking the `solar` table
type Solar struct {
	StationID int32
	// Start of the interval
	MeasuredStartedAt string
	// End of the interval, in local true solar time
	MeasuredEndedAt string
	QN592           int32
	AtmoLberg       float64
	FDLberg         float64
	FGLberg         float64
	SDLberg         float64
	Zenit           float64
}

func (o *Solar) ToRow() []any {
	return []any{
		o.StationID, o.MeasuredStartedAt, o.MeasuredEndedAt, o.QN592,
		o.AtmoLberg, o.FDLberg, o.FGLberg, o.SDLberg, o.Zenit,
	}
}

// Struct mimicking the `sun` table
type Sun struct {
	StationID  int32
	MeasuredAt string
	QN7        int32
	SDSO       float64
}

func (o *Sun) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN7, o.SDSO}
}

// Struct mimicking the `wind` table
type Wind struct {
	StationID  int32
	MeasuredAt string
	QN3        int32
	F          float64
	D          int32
}

func (o *Wind) ToRow() []any {
	return []any{o.StationID, o.MeasuredAt, o.QN3, o.F, o.D}
}
