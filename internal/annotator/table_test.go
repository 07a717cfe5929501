package annotator

import (
	"strings"
	"testing"

	"seed-geocoder/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestNewTable(t *testing.T) {
	tests := []struct {
		name        string
		locs        []models.Location
		expectedErr error
	}{
		{
			name: "valid entries",
			locs: []models.Location{kadikoy, konak},
		},
		{
			name:        "duplicate key",
			locs:        []models.Location{kadikoy, kadikoy},
			expectedErr: ErrDuplicateKey,
		},
		{
			name:        "empty district",
			locs:        []models.Location{{City: "Ankara", Latitude: "39.9", Longitude: "32.8"}},
			expectedErr: ErrInvalidLocation,
		},
		{
			name:        "latitude out of range",
			locs:        []models.Location{{City: "Ankara", District: "Mamak", Latitude: "91", Longitude: "32.9167"}},
			expectedErr: ErrInvalidLocation,
		},
		{
			name:        "longitude not a number",
			locs:        []models.Location{{City: "Ankara", District: "Mamak", Latitude: "39.9208", Longitude: "east"}},
			expectedErr: ErrInvalidLocation,
		},
		{
			name:        "quote in district",
			locs:        []models.Location{{City: "Ankara", District: `Ma"mak`, Latitude: "39.9208", Longitude: "32.9167"}},
			expectedErr: ErrInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.locs)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.locs, table.Locations())
		})
	}
}

func TestTable_IsImmutable(t *testing.T) {
	locs := []models.Location{kadikoy}
	table := testTable(t, locs...)

	locs[0].Latitude = "0"
	got := table.Locations()
	got[0].Longitude = "0"

	assert.Equal(t, []models.Location{kadikoy}, table.Locations())
}

func TestTable_Lookup(t *testing.T) {
	table := DefaultTable()

	loc, ok := table.Lookup("İzmir", "Konak")
	assert.True(t, ok)
	assert.Equal(t, konak, loc)

	loc, ok = table.Lookup("", "Kadıköy")
	assert.True(t, ok)
	assert.Equal(t, kadikoy, loc)

	_, ok = table.Lookup("Ankara", "Konak")
	assert.False(t, ok)

	var empty *Table
	_, ok = empty.Lookup("", "Konak")
	assert.False(t, ok)
	assert.Zero(t, empty.Len())
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, 24, table.Len())

	// Every default district is usable in both modes.
	for _, mode := range []Mode{ModeCityDistrict, ModeDistrictImages} {
		assert.NoError(t, table.validateFor(mode))
	}
}

func TestParseCSV(t *testing.T) {
	input := "\ufeffdistrict,city,latitude,longitude\n" +
		"Kadıköy,İstanbul,40.9873,29.0251\n" +
		" Konak , İzmir ,38.4189, 27.1287\n"

	locs, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Location{kadikoy, konak}, locs)
}

func TestParseCSV_MissingColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("city,district,latitude\nAnkara,Mamak,39.9\n"))
	assert.ErrorContains(t, err, `"longitude"`)
}

func TestParseYAML_NormalizesNames(t *testing.T) {
	decomposed := norm.NFD.String("Kadıköy")
	require.NotEqual(t, "Kadıköy", decomposed)

	input := "locations:\n" +
		"  - city: İstanbul\n" +
		"    district: " + decomposed + "\n" +
		"    latitude: \"40.9873\"\n" +
		"    longitude: \"29.0251\"\n"

	locs, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Location{kadikoy}, locs)
}

func TestLoadTableFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tables/izmir.yaml", []byte(
		"locations:\n"+
			"  - {city: İzmir, district: Konak, latitude: \"38.4189\", longitude: \"27.1287\"}\n"+
			"  - {city: İzmir, district: Buca, latitude: \"38.3833\", longitude: \"27.1833\"}\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tables/bad.csv", []byte(
		"city,district,latitude,longitude\nİzmir,Konak,38.4189,27.1287\nİzmir,Konak,38.4189,27.1287\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tables/table.json", []byte("{}"), 0o644))

	table, err := LoadTableFile(fs, "/tables/izmir.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	loc, ok := table.Lookup("İzmir", "Buca")
	assert.True(t, ok)
	assert.Equal(t, "27.1833", loc.Longitude)

	_, err = LoadTableFile(fs, "/tables/bad.csv")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = LoadTableFile(fs, "/tables/table.json")
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadTableFile(fs, "/tables/missing.csv")
	assert.Error(t, err)
}
