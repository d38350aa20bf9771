package schema

// Custom string types for type safety.
type (
	// Category represents a named grouping of metrics.
	Category string

	// Grade represents a letter classification derived from the overall score.
	Grade string

	// Status represents the coarse three-bucket classification.
	Status string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All metric categories, in scoring order.
const (
	ContentCategory   Category = "content"
	TechnicalCategory Category = "technical"
	UXCategory        Category = "ux"
)

// All letter grades supported.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// All status buckets supported.
const (
	GoodStatus   Status = "Good"
	MediumStatus Status = "Medium"
	BadStatus    Status = "Bad"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet" // batch only
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllCategories lists every category in reporting order.
var AllCategories = []Category{ContentCategory, TechnicalCategory, UXCategory}

// ValidCategories lists all valid categories.
var ValidCategories = map[Category]struct{}{
	ContentCategory:   {},
	TechnicalCategory: {},
	UXCategory:        {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
