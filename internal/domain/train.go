package domain

// Train is immutable reference data loaded at seeding time.
type Train struct {
	ID          int64  `json:"TrainID"`
	EnglishName string `json:"English_name"`
	ArabicName  string `json:"Arabic_name"`
}

type Station struct {
	ID   int64  `json:"StationID"`
	Name string `json:"name"`
}

// ScheduleStop is one ordinal stop of a train's route. For a fixed train the
// stop sequences are distinct and increase along the physical route; a segment
// from A to B is bookable only when Sequence(A) < Sequence(B).
type ScheduleStop struct {
	TrainID       int64  `json:"TrainID"`
	StationID     int64  `json:"StationID"`
	StopSequence  int    `json:"Stop_Sequence"`
	DepartureTime string `json:"Departure_Time"`
}
