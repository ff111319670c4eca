package db

// STATIONS_ID;MESS_DATUM;QN_9;TT_TU;RF_TU;eor
//
//	3987;1893010101;    5; -12.3;  84.0;eor
func parseAirTemperature(fields []string) (Record, error) {
	r := newFieldReader(fields, 5)
	obs := &AirTemperature{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN9:        r.int(2),
		TTTU:       r.float(3),
		RFTU:       r.float(4),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_8;V_N_I; V_N;eor
//
//	1260;1949010103;    1;   P;   8;eor
func parseCloudiness(fields []string) (Record, error) {
	r := newFieldReader(fields, 5)
	obs := &Cloudiness{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN8:        r.int(2),
		VNI:        r.str(3),
		VN:         r.float(4),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_8;  R1;RS_IND;WRTR;eor
//
//	1219;1995090100;    1;   0.0;   0;-999;eor
func parsePrecipitation(fields []string) (Record, error) {
	r := newFieldReader(fields, 6)
	obs := &Precipitation{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN8:        r.int(2),
		R1:         r.float(3),
		RSInd:      r.int(4),
		WRTR:       r.int(5),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_8;   P;  P0;eor
//
//	1260;1949010103;    1;  901.3;-999;eor
func parsePressure(fields []string) (Record, error) {
	r := newFieldReader(fields, 5)
	obs := &Pressure{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN8:        r.int(2),
		P:          r.float(3),
		P0:         r.float(4),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_2;V_TE002;V_TE005;V_TE010;V_TE020;V_TE050;V_TE100;eor
//
//	3404;1949010107;    5;   1.4;   0.4;  -0.2;   0.1;   1.6;-999;eor
func parseSoilTemperature(fields []string) (Record, error) {
	r := newFieldReader(fields, 9)
	obs := &SoilTemperature{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN2:        r.int(2),
		VTE002:     r.float(3),
		VTE005:     r.float(4),
		VTE010:     r.float(5),
		VTE020:     r.float(6),
		VTE050:     r.float(7),
		VTE100:     r.float(8),
	}
	return obs, r.err
}

// The end of the interval is the second to last column, but it is stored right after the start.
//
// STATIONS_ID;MESS_DATUM;QN_592;ATMO_LBERG;FD_LBERG;FG_LBERG;SD_LBERG;ZENIT;MESS_DATUM_WOZ;eor
//
//	5419;1949010100:18;    1;   -999;    0.0;    0.0;   0;   151.47;1949010101:00;eor
func parseSolar(fields []string) (Record, error) {
	r := newFieldReader(fields, 9)
	obs := &Solar{
		StationID:         r.int(0),
		MeasuredStartedAt: r.minuteTimestamp(1),
		MeasuredEndedAt:   r.minuteTimestamp(8),
		QN592:             r.int(2),
		AtmoLberg:         r.float(3),
		FDLberg:           r.float(4),
		FGLberg:           r.float(5),
		SDLberg:           r.float(6),
		Zenit:             r.float(7),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_7;SD_SO;eor
//
//	1580;1890010103;    5;  0.00;eor
func parseSun(fields []string) (Record, error) {
	r := newFieldReader(fields, 4)
	obs := &Sun{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN7:        r.int(2),
		SDSO:       r.float(3),
	}
	return obs, r.err
}

// STATIONS_ID;MESS_DATUM;QN_3;   F;   D;eor
//
//	3987;1893010100;    5;   5.4;-999;eor
func parseWind(fields []string) (Record, error) {
	r := newFieldReader(fields, 5)
	obs := &Wind{
		StationID:  r.int(0),
		MeasuredAt: r.timestamp(1),
		QN3:        r.int(2),
		F:          r.float(3),
		D:          r.int(4),
	}
	return obs, r.err
}
