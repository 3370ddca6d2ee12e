package export

import (
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"

	"github.com/waozixyz/volcanomap/dataset"
)

// FeatureCollection converts records to GeoJSON Point features, [lon, lat].
// Records failing keep are left out; a nil keep keeps everything.
func FeatureCollection(records []dataset.Record, keep func(dataset.Record) bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, rec := range records {
		if keep != nil && !keep(rec) {
			continue
		}
		f := geojson.NewPointFeature([]float64{rec.Longitude, rec.Latitude})
		f.SetProperty("name", rec.Name)
		f.SetProperty("type", rec.Type)
		if rec.HasElevation {
			f.SetProperty("elevation", rec.Elevation)
		}
		fc.AddFeature(f)
	}
	return fc
}

// WriteGeoJSON encodes the collection to w followed by a newline.
func WriteGeoJSON(w io.Writer, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
