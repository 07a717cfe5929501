package service

import (
	"context"
	"testing"

	"seed-geocoder/internal/annotator"
	"seed-geocoder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTableSource is a mock implementation of the TableSource interface
type MockTableSource struct {
	mock.Mock
}

// Table implements TableSource.
func (m *MockTableSource) Table(ctx context.Context) (*annotator.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(*annotator.Table), args.Error(1)
}

func TestReverseGeoCodeService_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		mockError   error
		expected    string
		expectNil   bool
		expectError bool
	}{
		{
			name:        "invalid latitude",
			lat:         95,
			lon:         29,
			expectError: true,
		},
		{
			name:        "invalid longitude",
			lat:         41,
			lon:         -200,
			expectError: true,
		},
		{
			name:     "exact district centre",
			lat:      38.4189,
			lon:      27.1287,
			expected: "Konak",
		},
		{
			name:     "near Kadıköy",
			lat:      40.99,
			lon:      29.03,
			expected: "Kadıköy",
		},
		{
			name:      "too far from any district",
			lat:       35.681236,
			lon:       139.767125,
			expectNil: true,
		},
		{
			name:        "table source error",
			lat:         41,
			lon:         29,
			mockError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSource := new(MockTableSource)
			service := NewReverseGeoCodeService(mockSource, 0)

			validInput := tt.lat >= -90 && tt.lat <= 90 && tt.lon >= -180 && tt.lon <= 180
			if validInput {
				var table *annotator.Table
				if tt.mockError == nil {
					table = annotator.DefaultTable()
				}
				mockSource.On("Table", mock.Anything).Return(table, tt.mockError)
			}

			// Execute
			result, err := service.ReverseGeocode(context.Background(), tt.lat, tt.lon)

			// Assert
			switch {
			case tt.expectError:
				assert.Error(t, err)
			case tt.expectNil:
				assert.NoError(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.expected, result.District)
			}

			if validInput {
				mockSource.AssertExpectations(t)
			}
		})
	}
}

func TestReverseGeoCodeService_EmptyTable(t *testing.T) {
	table, err := annotator.NewTable([]models.Location{})
	require.NoError(t, err)

	service := NewReverseGeoCodeService(NewStaticSource(table), 10)
	result, err := service.ReverseGeocode(context.Background(), 41, 29)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestHaversineKm(t *testing.T) {
	// Konak to Karşıyaka across the bay is about 5 km.
	d := haversineKm(38.4189, 27.1287, 38.4598, 27.1049)
	assert.InDelta(t, 5.0, d, 0.5)
	assert.Zero(t, haversineKm(41, 29, 41, 29))
}
