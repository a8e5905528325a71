package timescale

// TTMinusTAI is the fixed offset TT−TAI in seconds.
const TTMinusTAI = 32.184

// Scale converts between UTC and TT using an injected leap-second table.
// The zero value uses DefaultLeapSeconds.
type Scale struct {
	Table *LeapSecondTable
}

// Default returns a Scale backed by the built-in leap-second table.
func Default() Scale {
	return Scale{Table: DefaultLeapSeconds()}
}

func (s Scale) table() *LeapSecondTable {
	if s.Table == nil {
		return defaultTable
	}
	return s.Table
}

// LeapSecondOffset returns TAI−UTC in seconds on the given UTC date.
func (s Scale) LeapSecondOffset(year, month, day int) float64 {
	return s.table().Offset(year, month, day)
}

// TTMinusUTC returns TT−UTC in seconds at the given UTC Julian Date.
func (s Scale) TTMinusUTC(jdUTC float64) float64 {
	return s.table().OffsetAt(jdUTC) + TTMinusTAI
}

// ToTT converts a UTC Julian Date to TT.
func (s Scale) ToTT(jdUTC float64) float64 {
	return jdUTC + s.TTMinusUTC(jdUTC)/SecondsPerDay
}

// ToUTC converts a TT Julian Date to UTC. It inverts ToTT to within
// 1e-9 days everywhere except inside an inserted leap second.
func (s Scale) ToUTC(jdTT float64) float64 {
	utc := jdTT - s.TTMinusUTC(jdTT)/SecondsPerDay
	return jdTT - s.TTMinusUTC(utc)/SecondsPerDay
}

// TT returns the TT Julian Date of i as a two-part value, keeping the day
// fraction separate from the midnight epoch.
func (s Scale) TT(i Instant) (jd1, jd2 float64) {
	jd1, jd2 = i.Split()
	return jd1, jd2 + s.TTMinusUTC(i.JulianDate())/SecondsPerDay
}

// TTJulianDate returns the TT Julian Date of i.
func (s Scale) TTJulianDate(i Instant) float64 {
	jd1, jd2 := s.TT(i)
	return jd1 + jd2
}
