package memory

import (
	"time"

	"tracking/internal/entities"
)

// SampleLocations совпадает с данными миграции 00002_seed_reference_data.
func SampleLocations() []entities.Location {
	return []entities.Location{
		{Code: "USCHI", Name: "Chicago"},
		{Code: "USDAL", Name: "Dallas"},
		{Code: "DEHAM", Name: "Hamburg"},
		{Code: "CNHGH", Name: "Hangzhou"},
		{Code: "CNHKG", Name: "Hongkong"},
		{Code: "FIHEL", Name: "Helsinki"},
		{Code: "SESTO", Name: "Stockholm"},
		{Code: "AUMEL", Name: "Melbourne"},
		{Code: "NLRTM", Name: "Rotterdam"},
		{Code: "CNSHA", Name: "Shanghai"},
		{Code: "JNTKO", Name: "Tokyo"},
		{Code: "USNYC", Name: "New York"},
		{Code: "SEGOT", Name: "Gothenburg"},
	}
}

func SampleVoyages() []entities.Voyage {
	return []entities.Voyage{
		voyage("V100",
			movement("CNHKG", "JNTKO", "2009-03-03", "2009-03-05"),
			movement("JNTKO", "USNYC", "2009-03-06", "2009-03-09"),
		),
		voyage("V200",
			movement("USNYC", "USCHI", "2009-03-10", "2009-03-11"),
			movement("USCHI", "SESTO", "2009-03-12", "2009-03-15"),
		),
		voyage("V300",
			movement("JNTKO", "DEHAM", "2009-03-08", "2009-03-12"),
			movement("DEHAM", "NLRTM", "2009-03-13", "2009-03-14"),
		),
		voyage("V400",
			movement("DEHAM", "SESTO", "2009-03-14", "2009-03-17"),
			movement("SESTO", "FIHEL", "2009-03-18", "2009-03-19"),
		),
		voyage("V500",
			movement("CNSHA", "CNHKG", "2009-03-01", "2009-03-02"),
			movement("CNHKG", "AUMEL", "2009-03-04", "2009-03-10"),
		),
		voyage("V600",
			movement("NLRTM", "SEGOT", "2009-03-15", "2009-03-17"),
			movement("SEGOT", "SESTO", "2009-03-17", "2009-03-18"),
		),
	}
}

func voyage(number entities.VoyageNumber, movements ...entities.CarrierMovement) entities.Voyage {
	return entities.Voyage{
		Number:   number,
		Schedule: entities.Schedule{CarrierMovements: movements},
	}
}

func movement(from, to entities.UnLocode, departure, arrival string) entities.CarrierMovement {
	return entities.CarrierMovement{
		DepartureLocation: from,
		ArrivalLocation:   to,
		DepartureTime:     mustDate(departure),
		ArrivalTime:       mustDate(arrival),
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
