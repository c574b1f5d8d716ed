package dataset

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/filzarahma/commerce-insights/internal/logger"
	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

// Supported encodings for the raw CSV export.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
)

// LoadCSV reads the flat order-item table from a CSV file. The encoding
// parameter covers legacy Windows-1252 exports; pass EncodingUTF8 (or "")
// for plain files.
func LoadCSV(path, encoding string, appLogger *logger.Logger) (*Dataset, error) {
	const component = "DatasetLoader"

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %v", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8:
	case EncodingWindows1252:
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	default:
		return nil, fmt.Errorf("unsupported dataset encoding %q", encoding)
	}

	df := dataframe.ReadCSV(reader,
		dataframe.WithDelimiter(','),
		dataframe.WithLazyQuotes(true),
		dataframe.WithTypes(ColumnTypes()),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("failed to decode dataset file %s: %v", path, df.Error())
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataset file %s contains no rows", path)
	}

	ds, err := New(df)
	if err != nil {
		return nil, err
	}

	minDate, maxDate := ds.Bounds()
	appLogger.Info(component, "Dataset loaded: path=%s rows=%d minDate=%s maxDate=%s",
		path, ds.Rows(), minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))

	return ds, nil
}
