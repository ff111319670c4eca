package db

// Every DWD hourly product ships as one zip per station, containing a
// `produkt_<code>_stunde_<from>_<to>_<stnr>.txt` file with the observations:
//
//	STATIONS_ID;MESS_DATUM;QN_3;   F;   D;eor
//	       3987;1893010100;    5;   5.4;-999;eor
//
// The first line is a header, columns are semicolon separated and padded with
// whitespace, and every row is terminated by a literal `eor` column.
// Each product (category) is imported into its own table, with one column per
// file column, in the same order.

// Record is a single parsed observation row, ready for insertion
type Record interface {
	// Values in the same order as the Category Fields
	ToRow() []any
}

// Function used to convert the split fields of a file row into a Record
type ParseFunc func(fields []string) (Record, error)

// This struct contains the metadata needed to import a DWD category
type Category struct {
	Name      string    // Name of the category, as used on the command line
	TableName string    // Name of the destination table
	Pattern   string    // Glob pattern of the product files, relative to the base directory
	Fields    []string  // Destination columns, in the same order as the Record values
	Parse     ParseFunc // Converts a file row into a Record
}

// Creates a Category whose destination table is named after the category
func NewCategory(name, pattern string, parse ParseFunc, fields ...string) *Category {
	return &Category{
		Name:      name,
		TableName: name,
		Pattern:   pattern,
		Fields:    fields,
		Parse:     parse,
	}
}

// Parses a row and converts it to the values that will be inserted
func (c *Category) ParseRow(fields []string) ([]any, error) {
	record, err := c.Parse(fields)
	if err != nil {
		return nil, err
	}

	row := record.ToRow()
	if len(row) != len(c.Fields) {
		return nil, &ShapeError{Table: c.TableName, Got: len(row), Want: len(c.Fields)}
	}
	return row, nil
}
