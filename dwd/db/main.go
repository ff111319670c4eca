package db

import (
	"slices"
)

// Categories available on the DWD open data server (climate/hourly), in import order.
//
// Column meaning, as documented in the DESCRIPTION_obsgermany_climate_hourly_*.pdf files:
//
//	air_temperature   QN_9: quality level, TT_TU: 2m air temperature in °C, RF_TU: 2m relative humidity in %
//	cloudiness        QN_8: quality level, V_N_I: how the value was measured (P = person, I = instrument),
//	                  V_N: total cloud cover (-1 = not determined, 1-8 / 8)
//	precipitation     QN_8: quality level, R1: hourly precipitation in mm, RS_IND: 0 = no precipitation,
//	                  1 = precipitation has fallen, WRTR: form of precipitation (WR-code)
//	pressure          QN_8: quality level, P: mean sea level pressure in hPa, P0: pressure at station height in hPa
//	soil_temperature  QN_2: quality level, V_TE002..V_TE100: soil temperature at 2, 5, 10, 20, 50, 100 cm in °C
//	solar             QN_592: quality level, ATMO_LBERG: longwave downward radiation in J/cm^2,
//	                  FD_LBERG: diffuse solar radiation in J/cm^2, FG_LBERG: solar incoming radiation in J/cm^2,
//	                  SD_LBERG: sunshine duration in minutes, ZENIT: solar zenith angle at mid of interval,
//	                  MESS_DATUM_WOZ: end of interval in local true solar time
//	sun               QN_7: quality level, SD_SO: hourly sunshine duration in minutes
//	wind              QN_3: quality level, F: mean wind speed in m/s, D: mean wind direction in degrees
//
// Missing values are encoded as -999 and are imported as is.
func Categories() []*Category {
	return []*Category{
		NewCategory("air_temperature", "data/air_temperature/historical/produkt_tu_stunde_*.txt", parseAirTemperature,
			"station_id", "measured_at", "qn_9", "tt_tu", "rf_tu"),
		NewCategory("cloudiness", "data/cloudiness/historical/produkt_n_stunde_*.txt", parseCloudiness,
			"station_id", "measured_at", "qn_8", "v_n_i", "v_n"),
		NewCategory("precipitation", "data/precipitation/historical/produkt_rr_stunde_*.txt", parsePrecipitation,
			"station_id", "measured_at", "qn_8", "r1", "rs_ind", "wrtr"),
		NewCategory("pressure", "data/pressure/historical/produkt_p0_stunde_*.txt", parsePressure,
			"station_id", "measured_at", "qn_8", "p", "p0"),
		NewCategory("soil_temperature", "data/soil_temperature/historical/produkt_eb_stunde_*.txt", parseSoilTemperature,
			"station_id", "measured_at", "qn_2", "v_te002", "v_te005", "v_te010", "v_te020", "v_te050", "v_te100"),
		// NOTE: solar files are not split into historical/recent on the server
		NewCategory("solar", "data/solar/produkt_st_stunde_*.txt", parseSolar,
			"station_id", "measured_started_at", "measured_ended_at", "qn_592",
			"atmo_lberg", "fd_lberg", "fg_lberg", "sd_lberg", "zenit"),
		NewCategory("sun", "data/sun/historical/produkt_sd_stunde_*.txt", parseSun,
			"station_id", "measured_at", "qn_7", "sd_so"),
		NewCategory("wind", "data/wind/historical/produkt_ff_stunde_*.txt", parseWind,
			"station_id", "measured_at", "qn_3", "f", "d"),
	}
}

// Returns the names of all the available categories
func CategoryNames() []string {
	var names []string
	for _, c := range Categories() {
		names = append(names, c.Name)
	}
	return names
}

// Returns the category with the given name, or nil if it does not exist
func FindCategory(name string) *Category {
	categories := Categories()
	i := slices.IndexFunc(categories, func(c *Category) bool { return c.Name == name })
	if i < 0 {
		return nil
	}
	return categories[i]
}
