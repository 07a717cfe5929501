package annotator

import "seed-geocoder/internal/models"

// DefaultLocations returns the built-in districts of İstanbul, Ankara and İzmir.
// A fresh slice is returned on every call.
func DefaultLocations() []models.Location {
	return []models.Location{
		// İstanbul
		{City: "İstanbul", District: "Kadıköy", Latitude: "40.9873", Longitude: "29.0251"},
		{City: "İstanbul", District: "Beşiktaş", Latitude: "41.0422", Longitude: "29.0074"},
		{City: "İstanbul", District: "Sarıyer", Latitude: "41.1686", Longitude: "29.0544"},
		{City: "İstanbul", District: "Şişli", Latitude: "41.0602", Longitude: "28.9875"},
		{City: "İstanbul", District: "Üsküdar", Latitude: "41.0224", Longitude: "29.0149"},
		{City: "İstanbul", District: "Bakırköy", Latitude: "40.9833", Longitude: "28.8597"},
		{City: "İstanbul", District: "Maltepe", Latitude: "40.9336", Longitude: "29.1272"},
		{City: "İstanbul", District: "Ataşehir", Latitude: "40.9827", Longitude: "29.1237"},
		{City: "İstanbul", District: "Pendik", Latitude: "40.8783", Longitude: "29.2333"},
		// Ankara
		{City: "Ankara", District: "Çankaya", Latitude: "39.9180", Longitude: "32.8628"},
		{City: "Ankara", District: "Keçiören", Latitude: "39.9808", Longitude: "32.8625"},
		{City: "Ankara", District: "Etimesgut", Latitude: "39.9478", Longitude: "32.6750"},
		{City: "Ankara", District: "Yenimahalle", Latitude: "39.9847", Longitude: "32.7594"},
		{City: "Ankara", District: "Mamak", Latitude: "39.9208", Longitude: "32.9167"},
		{City: "Ankara", District: "Sincan", Latitude: "39.9667", Longitude: "32.5833"},
		// İzmir
		{City: "İzmir", District: "Konak", Latitude: "38.4189", Longitude: "27.1287"},
		{City: "İzmir", District: "Karşıyaka", Latitude: "38.4598", Longitude: "27.1049"},
		{City: "İzmir", District: "Bornova", Latitude: "38.4697", Longitude: "27.2142"},
		{City: "İzmir", District: "Çeşme", Latitude: "38.3231", Longitude: "26.3025"},
		{City: "İzmir", District: "Urla", Latitude: "38.3228", Longitude: "26.7686"},
		{City: "İzmir", District: "Bayraklı", Latitude: "38.4622", Longitude: "27.1586"},
		{City: "İzmir", District: "Gaziemir", Latitude: "38.3250", Longitude: "27.1333"},
		{City: "İzmir", District: "Narlıdere", Latitude: "38.4025", Longitude: "27.0283"},
		{City: "İzmir", District: "Buca", Latitude: "38.3833", Longitude: "27.1833"},
	}
}

// DefaultTable builds a table from DefaultLocations.
func DefaultTable() *Table {
	t, err := NewTable(DefaultLocations())
	if err != nil {
		panic(err)
	}
	return t
}
