package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Volcano Name,Country,Latitude,Longitude,Elevation (m),Type
Etna,Italy,37.75,15.0,3357,Stratovolcano
Krakatau,Indonesia,-6.102,105.423,155,Caldera
,Chile,-38.692,-71.729,3125,Stratovolcano
Kilauea,United States,19.421,-155.287,1222,Shield volcano
`

func TestRead(t *testing.T) {
	table, rep, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Rows)
	assert.Empty(t, rep.Skipped)
	require.Equal(t, 4, table.Len())

	etna := table.At(0)
	assert.Equal(t, "Etna", etna.Name)
	assert.Equal(t, 37.75, etna.Latitude)
	assert.Equal(t, 15.0, etna.Longitude)
	assert.Equal(t, "Stratovolcano", etna.Type)
	assert.Equal(t, 3357.0, etna.Elevation)
	assert.True(t, etna.HasElevation)

	assert.Equal(t, UnknownName, table.At(2).Name)
	assert.Equal(t, []string{"Stratovolcano", "Caldera", "Shield volcano"}, table.Types())
}

func TestRead_SkipsBadCoordinates(t *testing.T) {
	in := `Volcano Name,Latitude,Longitude,Type,Elevation (m)
Good,10,20,Caldera,100
NoLat,,20,Caldera,100
TextLon,10,east,Caldera,100
TooFarNorth,91,20,Caldera,100
TooFarWest,10,-180.5,Caldera,100
NaNLat,NaN,20,Caldera,100
`
	table, rep, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 6, rep.Rows)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Good", table.At(0).Name)

	require.Len(t, rep.Skipped, 5)
	assert.Equal(t, 2, rep.Skipped[0].Row)
	assert.Equal(t, ColLatitude, rep.Skipped[0].Column)
	assert.ErrorIs(t, rep.Skipped[0], errEmptyNumber)
	assert.Equal(t, ColLongitude, rep.Skipped[1].Column)
	assert.ErrorIs(t, rep.Skipped[1], errNotNumeric)
	assert.ErrorIs(t, rep.Skipped[2], errOutOfRange)
	assert.ErrorIs(t, rep.Skipped[3], errOutOfRange)
	assert.ErrorIs(t, rep.Skipped[4], errNotNumeric)
}

func TestRead_BoundaryCoordinatesAccepted(t *testing.T) {
	in := "Latitude,Longitude,Type\n90,180,A\n-90,-180,B\n"
	table, rep, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rep.Skipped)
	assert.Equal(t, 2, table.Len())
}

func TestRead_ElevationOptional(t *testing.T) {
	in := `Volcano Name,Latitude,Longitude,Type,Elevation (m)
A,1,2,Caldera,
B,1,2,Caldera,unknown
C,1,2,Caldera,-5.5
`
	table, _, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.False(t, table.At(0).HasElevation)
	assert.False(t, table.At(1).HasElevation)
	assert.True(t, table.At(2).HasElevation)
	assert.Equal(t, -5.5, table.At(2).Elevation)
}

func TestRead_NoNameOrElevationColumns(t *testing.T) {
	table, _, err := Read(strings.NewReader("Latitude,Longitude,Type\n1,2,Maar\n"))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, UnknownName, table.At(0).Name)
	assert.False(t, table.At(0).HasElevation)
}

func TestRead_HeaderNormalization(t *testing.T) {
	in := "\ufeffVolcano Name , Latitude,Longitude ,Type\nFuji,35.36,138.73,Stratovolcano\n"
	table, _, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Fuji", table.At(0).Name)
}

func TestRead_RaggedAndBlankRows(t *testing.T) {
	in := "Volcano Name,Latitude,Longitude,Type,Elevation (m)\nShort,1,2,Maar\n,,,,\n\nLong,3,4,Maar,10,extra\n"
	table, rep, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Rows)
	require.Equal(t, 2, table.Len())
	assert.False(t, table.At(0).HasElevation)
	assert.Equal(t, 10.0, table.At(1).Elevation)
}

func TestRead_MissingColumns(t *testing.T) {
	_, _, err := Read(strings.NewReader("Volcano Name,Latitude\nEtna,37\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), ColLongitude)
	assert.Contains(t, err.Error(), ColType)

	_, _, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volcanoes.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	table, rep, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, 4, rep.Rows)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewTable_CopiesInput(t *testing.T) {
	in := []Record{{Name: "A", Type: "x"}}
	table := NewTable(in)
	in[0].Name = "changed"
	assert.Equal(t, "A", table.At(0).Name)

	types := table.Types()
	types[0] = "mutated"
	assert.Equal(t, []string{"x"}, table.Types())
}

func TestLoad_SampleData(t *testing.T) {
	table, rep, err := Load(filepath.Join("..", "examples", "volcanoes.csv"))
	require.NoError(t, err)

	assert.Equal(t, 17, rep.Rows)
	require.Len(t, rep.Skipped, 1)
	assert.Equal(t, ColLatitude, rep.Skipped[0].Column)
	assert.Equal(t, 16, table.Len())
	assert.Equal(t, "Öræfajökull", table.At(9).Name)
	assert.Equal(t, -185.0, table.At(15).Elevation)
}
