package service

import (
	"context"
	"testing"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationLister is a mock implementation of the LocationLister interface
type MockLocationLister struct {
	mock.Mock
}

// ListLocations implements LocationLister.
func (m *MockLocationLister) ListLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Location), args.Error(1)
}

func TestRepositorySource_Table(t *testing.T) {
	tests := []struct {
		name          string
		mockLocations []models.Location
		mockError     error
		expectedLen   int
		expectError   bool
	}{
		{
			name: "stored locations",
			mockLocations: []models.Location{
				{ID: 1, City: "Ankara", District: "Sincan", Latitude: "39.9667", Longitude: "32.5833"},
				{ID: 2, City: "İzmir", District: "Urla", Latitude: "38.3228", Longitude: "26.7686"},
			},
			expectedLen: 2,
		},
		{
			name:          "empty table",
			mockLocations: []models.Location{},
			expectedLen:   0,
		},
		{
			name: "invalid stored row",
			mockLocations: []models.Location{
				{ID: 1, City: "Ankara", District: "Sincan", Latitude: "north", Longitude: "32.5833"},
			},
			expectError: true,
		},
		{
			name:          "repository error",
			mockLocations: nil,
			mockError:     assert.AnError,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLocationLister)
			mockRepo.On("ListLocations", mock.Anything).Return(tt.mockLocations, tt.mockError)

			table, err := NewRepositorySource(mockRepo).Table(context.Background())
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLen, table.Len())
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestFileSource_Table(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tables/tr.csv", []byte("city,district,latitude,longitude\nİzmir,Buca,38.3833,27.1833\n"), 0o644))

	table, err := NewFileSource(fs, "/tables/tr.csv").Table(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	_, err = NewFileSource(fs, "/tables/none.csv").Table(context.Background())
	assert.Error(t, err)
}

func TestTableFinder_FindLocation(t *testing.T) {
	finder := NewTableFinder(NewStaticSource(annotator.DefaultTable()))

	loc, err := finder.FindLocation(context.Background(), "Ankara", "Keçiören")
	require.NoError(t, err)
	assert.Equal(t, "39.9808", loc.Latitude)

	_, err = finder.FindLocation(context.Background(), "İzmir", "Keçiören")
	assert.ErrorIs(t, err, models.ErrLocationNotFound)
}
